package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/schema"
)

func fullRecord() model.Record {
	return model.Record{
		"amt":                   120.0,
		"category":              "food",
		"gender":                "M",
		"state":                 "CA",
		"city_pop":              100000.0,
		"job":                   "Engineer",
		"lat":                   34.0522,
		"long":                  -118.2437,
		"merch_lat":             34.0522,
		"merch_long":            -118.2437,
		"trans_date_trans_time": "2023-10-26 12:00:00",
		"hour":                  12,
		"day_of_week":           3,
		"month":                 10,
		"amt_bin":               "50-200",
		"distance":              0.0,
	}
}

func TestRecordComplete(t *testing.T) {
	assert.NoError(t, Record(fullRecord(), schema.Default()))
}

func TestRecordMissingFields(t *testing.T) {
	rec := fullRecord()
	delete(rec, "job")
	delete(rec, "amt_bin")

	err := Record(rec, schema.Default())
	require.Error(t, err)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"job", "amt_bin"}, missing.Fields)
}

func TestBatchAllColumnsPresent(t *testing.T) {
	s := schema.Default()
	b := &model.Batch{Columns: s.Names()}
	assert.NoError(t, Batch(b, s))
}

func TestBatchColumnOrderIrrelevant(t *testing.T) {
	s := schema.Default()
	names := s.Names()
	// Reverse the header; presence is all that matters.
	reversed := make([]string, len(names))
	for i, n := range names {
		reversed[len(names)-1-i] = n
	}
	b := &model.Batch{Columns: reversed}
	assert.NoError(t, Batch(b, s))
}

func TestBatchExtraColumnsPermitted(t *testing.T) {
	s := schema.Default()
	b := &model.Batch{Columns: append(s.Names(), "cc_num", "merchant")}
	assert.NoError(t, Batch(b, s))
}

func TestBatchMissingColumns(t *testing.T) {
	s := schema.Default()
	var cols []string
	for _, n := range s.Names() {
		if n != "state" {
			cols = append(cols, n)
		}
	}
	b := &model.Batch{
		Columns: cols,
		Rows:    [][]string{make([]string, len(cols)), make([]string, len(cols)), make([]string, len(cols))},
	}

	err := Batch(b, s)
	require.Error(t, err)

	var mismatch *SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, []string{"state"}, mismatch.Missing)
	assert.Contains(t, err.Error(), "state")
}
