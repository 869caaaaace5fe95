// Package csvio reads transaction batches from CSV and writes scored
// batches back out. Input is UTF-8, comma-delimited, with a header row;
// extra columns beyond the required schema pass through untouched.
package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/fraudscope/fraudscope/internal/model"
)

// ReadBatch parses a CSV stream into a batch, preserving header order
// and row order. Cells are kept as raw text; typing happens later in
// the normalizer.
func ReadBatch(ctx context.Context, r io.Reader) (*model.Batch, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	batch := &model.Batch{Columns: header}
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(batch.Rows)+2, readErr)
		}
		batch.Rows = append(batch.Rows, row)
	}

	slog.Info("Parsed CSV batch",
		"rows", len(batch.Rows),
		"columns", len(batch.Columns))
	return batch, nil
}

// WriteBatch serializes a batch as UTF-8 CSV: header first, then rows
// in order. Cells are written verbatim, so a batch read back with
// ReadBatch reproduces this one exactly.
func WriteBatch(w io.Writer, b *model.Batch) error {
	return WriteBatchTo(w, b, nil)
}

// WriteBatchTo streams the batch to w like WriteBatch, invoking onRow
// after each data row. The CLI uses the hook to advance its progress
// bar; a nil hook writes silently.
func WriteBatchTo(w io.Writer, b *model.Batch, onRow func()) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(b.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, row := range b.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
		if onRow != nil {
			onRow()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}
