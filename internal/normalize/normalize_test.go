package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/schema"
)

func TestRecordCoercesJSONNumbers(t *testing.T) {
	s := schema.Default()
	// JSON decoding produces float64 for every number, including the
	// bounded integer fields.
	rec := model.Record{
		"amt":                   float64(120),
		"category":              "food",
		"gender":                "M",
		"state":                 "CA",
		"city_pop":              float64(100000),
		"job":                   "Engineer",
		"lat":                   34.0522,
		"long":                  -118.2437,
		"merch_lat":             34.0522,
		"merch_long":            -118.2437,
		"trans_date_trans_time": "2023-10-26 12:00:00",
		"hour":                  float64(12),
		"day_of_week":           float64(3),
		"month":                 float64(10),
		"amt_bin":               "50-200",
		"distance":              float64(0),
	}

	out, err := Record(rec, s)
	require.NoError(t, err)

	assert.Equal(t, 120.0, out["amt"])
	assert.Equal(t, 12, out["hour"])
	assert.Equal(t, 3, out["day_of_week"])
	assert.Equal(t, 10, out["month"])
	assert.Equal(t, "2023-10-26 12:00:00", out["trans_date_trans_time"])
}

func TestRecordRejectsFractionalInt(t *testing.T) {
	s := schema.Default()
	rec := model.Record{"hour": 12.5}

	_, err := Record(rec, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour")
}

func TestRecordPassesThroughUnknownKeys(t *testing.T) {
	s := schema.Default()
	rec := model.Record{"cc_num": "4111111111111111"}

	out, err := Record(rec, s)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", out["cc_num"])
}

func TestBatchTypesSchemaColumns(t *testing.T) {
	s := schema.Default()
	b := &model.Batch{
		Columns: []string{"amt", "hour", "category", "merchant"},
		Rows: [][]string{
			{"120.5", "12", "food", "ACME"},
			{"-3", "23", "weird_category", "ZENITH"},
		},
	}

	rows, err := Batch(b, s)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 120.5, rows[0]["amt"])
	assert.Equal(t, 12, rows[0]["hour"])
	assert.Equal(t, "food", rows[0]["category"])
	// Passthrough column keeps raw text.
	assert.Equal(t, "ACME", rows[0]["merchant"])

	// Batch mode is deliberately permissive on ranges and categories.
	assert.Equal(t, -3.0, rows[1]["amt"])
	assert.Equal(t, "weird_category", rows[1]["category"])
}

func TestBatchRejectsNonNumericCell(t *testing.T) {
	s := schema.Default()
	b := &model.Batch{
		Columns: []string{"amt"},
		Rows:    [][]string{{"not-a-number"}},
	}

	_, err := Batch(b, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amt")
	assert.Contains(t, err.Error(), "row 0")
}

func TestBatchRejectsRaggedRow(t *testing.T) {
	s := schema.Default()
	b := &model.Batch{
		Columns: []string{"amt", "hour"},
		Rows:    [][]string{{"120.5"}},
	}

	_, err := Batch(b, s)
	require.Error(t, err)
}
