package csvio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudscope/fraudscope/internal/model"
)

func TestReadBatch(t *testing.T) {
	input := "amt,category,merchant\n120.5,food,ACME\n3.99,other,ZENITH\n"

	batch, err := ReadBatch(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"amt", "category", "merchant"}, batch.Columns)
	require.Equal(t, 2, batch.Len())
	assert.Equal(t, []string{"120.5", "food", "ACME"}, batch.Rows[0])
	assert.Equal(t, []string{"3.99", "other", "ZENITH"}, batch.Rows[1])
}

func TestReadBatchEmpty(t *testing.T) {
	_, err := ReadBatch(context.Background(), strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadBatchRaggedRow(t *testing.T) {
	input := "amt,category\n120.5\n"
	_, err := ReadBatch(context.Background(), strings.NewReader(input))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	batch := &model.Batch{
		Columns: []string{"amt", "job", "fraud_probability"},
		Rows: [][]string{
			{"120.5", "Engineer, Civil", "0.03178945512264419"},
			{"900", "Nurse", "0.9472193918837261"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, batch))

	parsed, err := ReadBatch(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, batch.Columns, parsed.Columns)
	assert.Equal(t, batch.Rows, parsed.Rows)
}

func TestWriteBatchQuoting(t *testing.T) {
	batch := &model.Batch{
		Columns: []string{"job"},
		Rows:    [][]string{{`Analyst, "Risk"`}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, batch))

	parsed, err := ReadBatch(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `Analyst, "Risk"`, parsed.Rows[0][0])
}

func TestWriteBatchToRowHook(t *testing.T) {
	batch := &model.Batch{
		Columns: []string{"amt"},
		Rows:    [][]string{{"10"}, {"20"}, {"30"}},
	}

	var buf bytes.Buffer
	ticks := 0
	require.NoError(t, WriteBatchTo(&buf, batch, func() { ticks++ }))

	// One tick per data row, none for the header.
	assert.Equal(t, 3, ticks)

	parsed, err := ReadBatch(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, batch.Rows, parsed.Rows)
}
