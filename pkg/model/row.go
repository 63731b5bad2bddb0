package model

// NAValue is the placeholder for cells without a value.
const NAValue = "n/a"

// Fields represents the rendered cell values of a row.
type Fields []string

// Clone returns a copy of the fields.
func (f Fields) Clone() Fields {
	ff := make(Fields, len(f))
	copy(ff, f)
	return ff
}

// Row represents a collection of columns keyed by a stable row ID.
type Row struct {
	ID     string
	Fields Fields
}

// NewRow returns a row with the given number of empty fields.
func NewRow(size int) Row {
	return Row{Fields: make(Fields, size)}
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	return Row{
		ID:     r.ID,
		Fields: r.Fields.Clone(),
	}
}

// Rows represents a collection of rows.
type Rows []Row

// Clone returns a deep copy of the rows.
func (r Rows) Clone() Rows {
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = row.Clone()
	}
	return out
}
