package model

import "fmt"

// Attrs represents column attributes.
type Attrs struct {
	Align    int  // tview alignment constant
	Wide     bool // only shown in wide mode
	Time     bool // cells hold compact durations
	Number   bool // cells hold numeric values
	Capacity bool // cells hold binary-suffix quantities
}

// HeaderColumn represents a table header column.
type HeaderColumn struct {
	Name string

	Attrs
}

func (h HeaderColumn) String() string {
	return fmt.Sprintf("%s [%d::%t::%t::%t]", h.Name, h.Align, h.Wide, h.Time, h.Number)
}

// Header represents a table header as an ordered column collection.
type Header []HeaderColumn

// Clone returns a copy of the header.
func (h Header) Clone() Header {
	he := make(Header, len(h))
	copy(he, h)
	return he
}

// IndexOf returns the index of the named column or false if not found.
// Wide columns only match when includeWide is set.
func (h Header) IndexOf(colName string, includeWide bool) (int, bool) {
	for i, c := range h {
		if c.Wide && !includeWide {
			continue
		}
		if c.Name == colName {
			return i, true
		}
	}

	return -1, false
}

// ColumnNames returns the header names, skipping wide columns unless wide
// is set.
func (h Header) ColumnNames(wide bool) []string {
	if len(h) == 0 {
		return nil
	}
	cc := make([]string, 0, len(h))
	for _, c := range h {
		if !wide && c.Wide {
			continue
		}
		cc = append(cc, c.Name)
	}

	return cc
}
