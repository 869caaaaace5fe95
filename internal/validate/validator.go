// Package validate checks incoming records and batches against the
// feature schema before any model invocation is attempted.
package validate

import (
	"fmt"
	"strings"

	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/schema"
)

// MissingFieldError reports a single record missing required features.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record is missing required fields: %s", strings.Join(e.Fields, ", "))
}

// SchemaMismatchError reports a batch whose header lacks required
// columns. The batch must not be scored, even partially.
type SchemaMismatchError struct {
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("batch is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Record confirms that every required feature is present on a single
// record. Values are assumed pre-typed by the entry surface; this is a
// pure presence check with no coercion.
func Record(rec model.Record, s *schema.Schema) error {
	var missing []string
	for _, name := range s.Names() {
		if _, ok := rec[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}

// Batch confirms that the batch header contains every required column.
// Column order in the source is irrelevant; only presence matters.
// Extra columns are permitted and ignored here.
func Batch(b *model.Batch, s *schema.Schema) error {
	present := make(map[string]struct{}, len(b.Columns))
	for _, c := range b.Columns {
		present[c] = struct{}{}
	}

	var missing []string
	for _, name := range s.Names() {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &SchemaMismatchError{Missing: missing}
	}
	return nil
}
