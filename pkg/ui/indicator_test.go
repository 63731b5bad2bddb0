package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tably/tably/pkg/sorting"
)

func TestArrowIndicators(t *testing.T) {
	uu := map[string]struct {
		state sorting.SortState
		e     string
	}{
		"not_sortable": {state: sorting.NotSortable, e: ""},
		"sortable":     {state: sorting.Sortable, e: " ⇅"},
		"asc":          {state: sorting.SortedAsc, e: " ▲"},
		"desc":         {state: sorting.SortedDesc, e: " ▼"},
	}

	var p ArrowIndicators
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, p.Indicator(u.state))
		})
	}
}

func TestPlainIndicators(t *testing.T) {
	uu := map[string]struct {
		state sorting.SortState
		e     string
	}{
		"not_sortable": {state: sorting.NotSortable, e: ""},
		"sortable":     {state: sorting.Sortable, e: ""},
		"asc":          {state: sorting.SortedAsc, e: " ^"},
		"desc":         {state: sorting.SortedDesc, e: " v"},
	}

	var p PlainIndicators
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, p.Indicator(u.state))
		})
	}
}

func TestIndicatorsFor(t *testing.T) {
	assert.IsType(t, ArrowIndicators{}, IndicatorsFor("arrows"))
	assert.IsType(t, ArrowIndicators{}, IndicatorsFor(""))
	assert.IsType(t, PlainIndicators{}, IndicatorsFor("plain"))
}

func TestSortIndicator(t *testing.T) {
	s := NewSortIndicator()
	assert.Contains(t, s.GetText(true), "sort off")

	s.SetSort("NAME", sorting.SortedAsc)
	assert.Contains(t, s.GetText(true), "sort NAME ascending")

	s.SetSort("AGE", sorting.SortedDesc)
	assert.Contains(t, s.GetText(true), "sort AGE descending")

	s.Reset()
	assert.Contains(t, s.GetText(true), "sort off")
}
