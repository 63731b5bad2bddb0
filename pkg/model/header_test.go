package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testHeader() Header {
	return Header{
		{Name: "NAME"},
		{Name: "STATE"},
		{Name: "AGE", Attrs: Attrs{Time: true}},
		{Name: "AMI", Attrs: Attrs{Wide: true}},
	}
}

func TestHeaderIndexOf(t *testing.T) {
	uu := map[string]struct {
		col  string
		wide bool
		e    int
		ok   bool
	}{
		"first":             {col: "NAME", e: 0, ok: true},
		"time_column":       {col: "AGE", e: 2, ok: true},
		"missing":           {col: "BOZO", e: -1},
		"wide_hidden":       {col: "AMI", e: -1},
		"wide_included":     {col: "AMI", wide: true, e: 3, ok: true},
		"case_sensitive":    {col: "name", e: -1},
		"empty_not_matched": {col: "", e: -1},
	}

	h := testHeader()
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			idx, ok := h.IndexOf(u.col, u.wide)
			assert.Equal(t, u.e, idx)
			assert.Equal(t, u.ok, ok)
		})
	}
}

func TestHeaderColumnNames(t *testing.T) {
	h := testHeader()

	assert.Equal(t, []string{"NAME", "STATE", "AGE"}, h.ColumnNames(false))
	assert.Equal(t, []string{"NAME", "STATE", "AGE", "AMI"}, h.ColumnNames(true))
	assert.Nil(t, Header{}.ColumnNames(true))
}

func TestHeaderClone(t *testing.T) {
	h := testHeader()
	c := h.Clone()

	c[0].Name = "ID"
	assert.Equal(t, "NAME", h[0].Name)
	assert.Equal(t, "ID", c[0].Name)
	assert.Len(t, c, len(h))
}

func TestRowClone(t *testing.T) {
	r := testRow("i-1", "host-1", "running")
	c := r.Clone()

	c.Fields[0] = "mutated"
	assert.Equal(t, "host-1", r.Fields[0])
	assert.Equal(t, "i-1", c.ID)
}

func TestRowsClone(t *testing.T) {
	rr := testRows()
	cc := rr.Clone()

	cc[1].Fields[1] = "mutated"
	assert.Equal(t, "stopped", rr[1].Fields[1])
}

func TestNewRow(t *testing.T) {
	r := NewRow(4)

	assert.Len(t, r.Fields, 4)
	assert.Empty(t, r.ID)
}
