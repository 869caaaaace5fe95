// Package normalize coerces raw user and CSV input into the exact
// typed shape the trained pipeline expects. It enforces types only:
// range and unseen-category policy belong to the entry surface and the
// pipeline's own encoder, not to this layer.
package normalize

import (
	"fmt"
	"math"

	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/schema"
)

// Record returns a typed copy of a single validated record. Scalar
// values arriving from JSON or flags are coerced to the schema's types
// (JSON numbers decode as float64 even for integer fields); string
// values are parsed via the feature's canonicalization. Non-schema keys
// are copied through untouched.
func Record(rec model.Record, s *schema.Schema) (model.Record, error) {
	out := make(model.Record, len(rec))
	for k, v := range rec {
		f, ok := s.Lookup(k)
		if !ok {
			out[k] = v
			continue
		}
		tv, err := coerce(f, v)
		if err != nil {
			return nil, err
		}
		out[k] = tv
	}
	return out, nil
}

// Batch converts a validated batch's rows into typed records, row order
// preserved. Schema columns are canonicalized per their domain;
// passthrough columns keep their raw text.
func Batch(b *model.Batch, s *schema.Schema) ([]model.Record, error) {
	records := make([]model.Record, len(b.Rows))
	for i, row := range b.Rows {
		rec := make(model.Record, len(b.Columns))
		for j, col := range b.Columns {
			if j >= len(row) {
				return nil, fmt.Errorf("row %d: %d cells for %d columns", i, len(row), len(b.Columns))
			}
			f, ok := s.Lookup(col)
			if !ok {
				rec[col] = row[j]
				continue
			}
			v, err := f.Canonicalize(row[j])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rec[col] = v
		}
		records[i] = rec
	}
	return records, nil
}

func coerce(f schema.Feature, v any) (any, error) {
	switch f.Kind {
	case schema.KindNumeric:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case string:
			return f.Canonicalize(n)
		}
	case schema.KindBoundedInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("feature %s: %v is not an integer", f.Name, n)
			}
			return int(n), nil
		case string:
			return f.Canonicalize(n)
		}
	case schema.KindEnum, schema.KindText, schema.KindTimestamp:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("feature %s: unsupported value type %T", f.Name, v)
}
