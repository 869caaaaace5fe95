// Package assemble merges model predictions back onto the caller's
// input: a formatted verdict for single records, and an augmented copy
// of the batch with prediction and probability columns for export.
package assemble

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fraudscope/fraudscope/internal/csvio"
	"github.com/fraudscope/fraudscope/internal/model"
)

// Columns appended to a scored batch.
const (
	PredictionColumn  = "prediction"
	ProbabilityColumn = "fraud_probability"
)

// PreviewLimit caps the number of rows returned by Preview.
const PreviewLimit = 50

// FormatResult renders a single scoring result as a human-readable
// label and a two-decimal percentage.
func FormatResult(res model.ScoringResult) (label, percent string) {
	return string(res.Label), fmt.Sprintf("%.2f%%", res.Probability*100)
}

// AugmentBatch returns a copy of the batch with the prediction and
// fraud_probability columns appended, original column order and row
// order preserved. The input batch is never mutated. Probabilities are
// formatted with the shortest exact representation so the exported CSV
// round-trips to identical values.
func AugmentBatch(b *model.Batch, results []model.ScoringResult) (*model.Batch, error) {
	if len(results) != b.Len() {
		return nil, fmt.Errorf("got %d results for %d rows", len(results), b.Len())
	}

	out := b.Clone()
	out.Columns = append(out.Columns, PredictionColumn, ProbabilityColumn)
	for i, res := range results {
		out.Rows[i] = append(out.Rows[i],
			res.Label.CSVValue(),
			strconv.FormatFloat(res.Probability, 'g', -1, 64))
	}
	return out, nil
}

// Preview returns a copy of the batch truncated to the first
// PreviewLimit rows.
func Preview(b *model.Batch) *model.Batch {
	out := b.Clone()
	if len(out.Rows) > PreviewLimit {
		out.Rows = out.Rows[:PreviewLimit]
	}
	return out
}

// ExportCSV serializes the batch to UTF-8 CSV bytes for download.
func ExportCSV(b *model.Batch) ([]byte, error) {
	var buf bytes.Buffer
	if err := csvio.WriteBatch(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
