// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tably

package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/tably/tably/pkg/sorting"
)

// IndicatorProvider renders a header suffix for a column sort state.
type IndicatorProvider interface {
	// Indicator returns the glyph appended to a column header.
	Indicator(state sorting.SortState) string
}

// ArrowIndicators renders unicode sort glyphs.
type ArrowIndicators struct{}

// Indicator returns the glyph appended to a column header.
func (ArrowIndicators) Indicator(state sorting.SortState) string {
	switch state {
	case sorting.Sortable:
		return " ⇅"
	case sorting.SortedAsc:
		return " ▲"
	case sorting.SortedDesc:
		return " ▼"
	default:
		return ""
	}
}

// PlainIndicators renders ascii sort markers for terminals without
// unicode glyph support.
type PlainIndicators struct{}

// Indicator returns the marker appended to a column header.
func (PlainIndicators) Indicator(state sorting.SortState) string {
	switch state {
	case sorting.SortedAsc:
		return " ^"
	case sorting.SortedDesc:
		return " v"
	default:
		return ""
	}
}

// IndicatorsFor maps a config name to an indicator provider, defaulting
// to arrows.
func IndicatorsFor(name string) IndicatorProvider {
	if name == "plain" {
		return PlainIndicators{}
	}
	return ArrowIndicators{}
}

// SortIndicator displays the active sort column and direction.
type SortIndicator struct {
	*tview.TextView

	col   string
	state sorting.SortState
}

// NewSortIndicator returns a new sort indicator.
func NewSortIndicator() *SortIndicator {
	s := &SortIndicator{
		TextView: tview.NewTextView(),
	}
	s.SetDynamicColors(true)
	s.SetBackgroundColor(tcell.ColorDefault)
	s.SetTextColor(tcell.ColorWhite)
	s.refresh()

	return s
}

// SetSort updates the displayed sort column and direction.
func (s *SortIndicator) SetSort(col string, state sorting.SortState) {
	s.col, s.state = col, state
	s.refresh()
}

// Reset clears the indicator.
func (s *SortIndicator) Reset() {
	s.col, s.state = "", sorting.NotSortable
	s.refresh()
}

func (s *SortIndicator) refresh() {
	if s.col == "" {
		s.SetText("[gray::d]sort[-::-] off")
		return
	}
	s.SetText(fmt.Sprintf("[yellow::b]sort[-::-] %s %s", s.col, s.state))
}
