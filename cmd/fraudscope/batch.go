package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fraudscope/fraudscope/internal/assemble"
	"github.com/fraudscope/fraudscope/internal/cli"
	"github.com/fraudscope/fraudscope/internal/common"
	"github.com/fraudscope/fraudscope/internal/csvio"
	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/sheets"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <input.csv>",
		Short: "Score a CSV of transactions",
		Long: `Score every transaction in a CSV file and write the results to a new
CSV with prediction and fraud_probability columns appended.

The input must carry the 16 required feature columns; extra columns
pass through to the output untouched. A file missing required columns
is rejected before any scoring happens.

Examples:
  fraudscope batch transactions.csv
  fraudscope batch transactions.csv --output scored.csv --preview
  fraudscope batch transactions.csv --sheets   # also export to Google Sheets`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().StringP("output", "o", "fraud_predictions.csv", "output CSV path")
	cmd.Flags().Bool("preview", false, "print the first rows of the scored batch")
	cmd.Flags().Bool("sheets", false, "also export the scored batch to Google Sheets")

	_ = viper.BindPFlag("batch.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("batch.preview", cmd.Flags().Lookup("preview"))
	_ = viper.BindPFlag("batch.sheets", cmd.Flags().Lookup("sheets"))

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inputPath := args[0]
	outputPath := viper.GetString("batch.output")

	scorer, err := createScorer(ctx)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("could not open %s", inputPath), err)
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			slog.Warn("Failed to close input file", "error", closeErr)
		}
	}()

	batch, err := csvio.ReadBatch(ctx, in)
	if err != nil {
		return err
	}

	// The bar counts one unit per scored row; rows tick off as they are
	// written back out, since the model call itself is all-or-nothing.
	bar := progressbar.NewOptions(batch.Len(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("Scoring %d transactions...", batch.Len())),
	)
	if renderErr := bar.RenderBlank(); renderErr != nil {
		slog.Warn("Failed to render progress bar", "error", renderErr)
	}

	augmented, err := scorer.ScoreBatch(ctx, batch)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	writeErr := csvio.WriteBatchTo(out, augmented, func() {
		if addErr := bar.Add(1); addErr != nil {
			slog.Warn("Failed to advance progress bar", "error", addErr)
		}
	})
	if closeErr := out.Close(); closeErr != nil && writeErr == nil {
		writeErr = fmt.Errorf("failed to write output: %w", closeErr)
	}
	if finishErr := bar.Finish(); finishErr != nil {
		slog.Warn("Failed to finish progress bar", "error", finishErr)
	}
	if writeErr != nil {
		return writeErr
	}

	slog.Info("Wrote scored batch", "path", outputPath, "rows", augmented.Len())

	if viper.GetBool("batch.preview") {
		preview := assemble.Preview(augmented)
		var sb strings.Builder
		sb.WriteString(strings.Join(preview.Columns, ", "))
		for _, row := range preview.Rows {
			sb.WriteString("\n")
			sb.WriteString(strings.Join(row, ", "))
		}
		if preview.Len() < augmented.Len() {
			sb.WriteString(cli.SubtleStyle.Render(
				fmt.Sprintf("\n... %d more rows in %s", augmented.Len()-preview.Len(), outputPath)))
		}
		fmt.Println(cli.RenderBox("Scored Transactions", sb.String()))
	}

	if viper.GetBool("batch.sheets") {
		if err := exportToSheets(ctx, augmented); err != nil {
			return err
		}
	}
	return nil
}

func exportToSheets(ctx context.Context, batch *model.Batch) error {
	cfg := sheets.DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return fmt.Errorf("sheets export not configured: %w", err)
	}

	writer, err := sheets.NewWriter(ctx, cfg, slog.Default())
	if err != nil {
		return err
	}
	return writer.Write(ctx, batch)
}
