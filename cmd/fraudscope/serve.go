package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fraudscope/fraudscope/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scorer over HTTP",
		Long: `Run an HTTP server exposing the scoring service.

Endpoints:
  POST /api/v1/score        score a single JSON record
  POST /api/v1/score/batch  score an uploaded CSV (multipart "file" field)
  GET  /healthz             liveness check`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Int64("max-body-bytes", server.DefaultMaxBodyBytes, "maximum upload size in bytes")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.max_body_bytes", cmd.Flags().Lookup("max-body-bytes"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	scorer, err := createScorer(cmd.Context())
	if err != nil {
		return err
	}

	srv := server.New(scorer, server.Config{
		Addr:         viper.GetString("server.addr"),
		MaxBodyBytes: viper.GetInt64("server.max_body_bytes"),
	})
	return srv.Run()
}
