package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudscope/fraudscope/internal/assemble"
	"github.com/fraudscope/fraudscope/internal/cli"
	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/schema"
)

func scoreCmd() *cobra.Command {
	var (
		amt       float64
		category  string
		gender    string
		state     string
		cityPop   float64
		job       string
		lat       float64
		long      float64
		merchLat  float64
		merchLong float64
		transTime string
		hour      int
		dayOfWeek int
		month     int
		amtBin    string
		distance  float64
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single transaction",
		Long: `Score one manually-entered transaction and print its classification
and fraud probability.

Example:
  fraudscope score --amt 120 --category food --gender M --state CA \
    --city-pop 100000 --job Engineer --lat 34.0522 --long -118.2437 \
    --merch-lat 34.0522 --merch-long -118.2437 \
    --time "2023-10-26 12:00:00" --hour 12 --day-of-week 3 --month 10 \
    --amt-bin 50-200 --distance 0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec := model.Record{
				"amt":                   amt,
				"category":              category,
				"gender":                gender,
				"state":                 state,
				"city_pop":              cityPop,
				"job":                   job,
				"lat":                   lat,
				"long":                  long,
				"merch_lat":             merchLat,
				"merch_long":            merchLong,
				"trans_date_trans_time": transTime,
				"hour":                  hour,
				"day_of_week":           dayOfWeek,
				"month":                 month,
				"amt_bin":               amtBin,
				"distance":              distance,
			}

			// The CLI is the entry surface, so it enforces the full
			// feature domains the way the form widgets would.
			s := schema.Default()
			for _, f := range s.Features() {
				if err := f.Validate(coerceForValidation(f, rec[f.Name])); err != nil {
					return err
				}
			}

			scorer, err := createScorer(cmd.Context())
			if err != nil {
				return err
			}

			res, err := scorer.ScoreRecord(cmd.Context(), rec)
			if err != nil {
				return err
			}

			label, percent := assemble.FormatResult(res)
			content := fmt.Sprintf("Prediction: %s\nFraud probability: %s",
				cli.RenderVerdict(label, res.Label == model.LabelFraudulent),
				percent)
			fmt.Println(cli.RenderBox("Transaction Score", content))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amt, "amt", 120.0, "transaction amount")
	cmd.Flags().StringVar(&category, "category", "food", "merchant category (food, electronics, clothing, other)")
	cmd.Flags().StringVar(&gender, "gender", "M", "cardholder gender (M, F)")
	cmd.Flags().StringVar(&state, "state", "CA", "cardholder state")
	cmd.Flags().Float64Var(&cityPop, "city-pop", 100000, "city population")
	cmd.Flags().StringVar(&job, "job", "Engineer", "cardholder job")
	cmd.Flags().Float64Var(&lat, "lat", 34.0522, "cardholder latitude")
	cmd.Flags().Float64Var(&long, "long", -118.2437, "cardholder longitude")
	cmd.Flags().Float64Var(&merchLat, "merch-lat", 34.0522, "merchant latitude")
	cmd.Flags().Float64Var(&merchLong, "merch-long", -118.2437, "merchant longitude")
	cmd.Flags().StringVar(&transTime, "time", "2023-10-26 12:00:00", "transaction date and time")
	cmd.Flags().IntVar(&hour, "hour", 12, "hour of transaction (0-23)")
	cmd.Flags().IntVar(&dayOfWeek, "day-of-week", 3, "day of week (0-6)")
	cmd.Flags().IntVar(&month, "month", 10, "month (1-12)")
	cmd.Flags().StringVar(&amtBin, "amt-bin", "50-200", "amount bin (0-50, 50-200, 200-500, 500-1000, 1000+)")
	cmd.Flags().Float64Var(&distance, "distance", 0.0, "distance between cardholder and merchant")

	return cmd
}

// coerceForValidation maps flag-typed values onto the schema's expected
// Go types so the domain predicates apply cleanly.
func coerceForValidation(f schema.Feature, v any) any {
	if f.Kind == schema.KindNumeric {
		if iv, ok := v.(int); ok {
			return float64(iv)
		}
	}
	return v
}
