package model

// Batch is an ordered tabular collection of transactions sharing one
// header. Cells are kept as the raw text parsed from the source so that
// passthrough columns and export round-trip exactly; typed views for
// the model are produced by the normalizer.
type Batch struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows in the batch.
func (b *Batch) Len() int {
	return len(b.Rows)
}

// ColumnIndex returns the position of a column in the header, or -1 if
// the batch has no such column.
func (b *Batch) ColumnIndex(name string) int {
	for i, c := range b.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the batch header contains the named column.
func (b *Batch) HasColumn(name string) bool {
	return b.ColumnIndex(name) >= 0
}

// Clone returns a deep copy of the batch. Augmentation always works on
// a clone so the caller's input is never mutated.
func (b *Batch) Clone() *Batch {
	clone := &Batch{
		Columns: make([]string, len(b.Columns)),
		Rows:    make([][]string, len(b.Rows)),
	}
	copy(clone.Columns, b.Columns)
	for i, row := range b.Rows {
		clone.Rows[i] = make([]string, len(row))
		copy(clone.Rows[i], row)
	}
	return clone
}
