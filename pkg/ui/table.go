// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tably

package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/tably/tably/pkg/model"
	"github.com/tably/tably/pkg/sorting"
)

const (
	// TitleFmt formats the table title with view name and row count.
	TitleFmt = " <%s>[%d] "
)

// SortChangedFn notifies about a new active sort column and direction.
type SortChangedFn func(col string, state sorting.SortState)

// SortableTable renders an adapter backed row collection with clickable,
// sortable column headers.
type SortableTable struct {
	*tview.Table

	name          string
	adapter       *model.Adapter
	ctl           *sorting.Controller[model.Row]
	header        model.Header
	states        []sorting.SortState
	provider      IndicatorProvider
	actions       *KeyActions
	sortChangedFn SortChangedFn
	isUpdating    bool
	mx            sync.RWMutex
}

// NewSortableTable returns a new table wired to the given adapter. The
// table registers the sort controller ahead of itself so external data
// changes are re-sorted before they are drawn.
func NewSortableTable(name string, header model.Header, adapter *model.Adapter) *SortableTable {
	t := &SortableTable{
		Table:    tview.NewTable(),
		name:     name,
		adapter:  adapter,
		header:   header.Clone(),
		states:   make([]sorting.SortState, len(header)),
		provider: ArrowIndicators{},
		actions:  NewKeyActions(),
	}
	t.ctl = sorting.NewController[model.Row](adapter, t)
	adapter.AddObserver(t.ctl.Observer())
	adapter.AddObserver(t)

	return t
}

// Init initializes the table component.
func (t *SortableTable) Init(ctx context.Context) error {
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetBorderColor(tcell.ColorWhite)
	t.Select(1, 0)

	t.SetInputCapture(t.keyboard)
	t.bindKeys()
	t.Refresh()

	return nil
}

// Name returns the view name.
func (t *SortableTable) Name() string { return t.name }

// Start starts the component.
func (t *SortableTable) Start() {}

// Stop terminates the component.
func (t *SortableTable) Stop() {}

// Actions returns the key actions.
func (t *SortableTable) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *SortableTable) Hints() MenuHints {
	return t.actions.Hints()
}

// Header returns a copy of the table header.
func (t *SortableTable) Header() model.Header {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.header.Clone()
}

// SetColumnComparator registers a comparator for a column. A nil
// comparator unregisters the column.
func (t *SortableTable) SetColumnComparator(col int, cmp sorting.Comparator[model.Row]) {
	t.ctl.SetComparator(col, cmp)
}

// GetColumnComparator returns the comparator registered for a column.
func (t *SortableTable) GetColumnComparator(col int) sorting.Comparator[model.Row] {
	return t.ctl.GetComparator(col)
}

// Sort sorts a column as if its header was clicked, toggling direction
// on repeats.
func (t *SortableTable) Sort(col int) {
	t.ctl.HeaderClicked(col)
}

// SortBy sorts a column in a fixed direction.
func (t *SortableTable) SortBy(col int, ascending bool) {
	t.ctl.Sort(col, ascending)
}

// SortFunc sorts the rows with an ad hoc comparator, bypassing the
// column sort protocol.
func (t *SortableTable) SortFunc(cmp sorting.Comparator[model.Row]) {
	t.ctl.SortFunc(cmp)
}

// GetSortedColumnIndex returns the sorted column index or -1 when no
// column sort is active.
func (t *SortableTable) GetSortedColumnIndex() int {
	return t.ctl.GetSortedColumnIndex()
}

// IsSortedAscending returns the current sort direction.
func (t *SortableTable) IsSortedAscending() bool {
	return t.ctl.IsSortedAscending()
}

// SetIndicatorProvider swaps the header sort glyph provider. A nil
// provider resets to arrows.
func (t *SortableTable) SetIndicatorProvider(p IndicatorProvider) {
	t.mx.Lock()
	if p == nil {
		p = ArrowIndicators{}
	}
	t.provider = p
	t.mx.Unlock()

	t.renderHeader()
}

// GetIndicatorProvider returns the active header sort glyph provider.
func (t *SortableTable) GetIndicatorProvider() IndicatorProvider {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.provider
}

// SetSortChangedFn registers a callback fired when the active sort
// column or direction changes.
func (t *SortableTable) SetSortChangedFn(fn SortChangedFn) {
	t.mx.Lock()
	defer t.mx.Unlock()

	t.sortChangedFn = fn
}

// SetSortState records the sort state of a column and refreshes the
// header row. Implements sorting.HeaderView.
func (t *SortableTable) SetSortState(col int, state sorting.SortState) {
	t.mx.Lock()
	if col < 0 || col >= len(t.states) {
		t.mx.Unlock()
		return
	}
	t.states[col] = state
	fn := t.sortChangedFn
	colName := t.header[col].Name
	t.mx.Unlock()

	if fn != nil {
		switch state {
		case sorting.SortedAsc, sorting.SortedDesc:
			fn(colName, state)
		case sorting.NotSortable:
			if t.ctl.GetSortedColumnIndex() < 0 {
				fn("", sorting.NotSortable)
			}
		}
	}
	t.renderHeader()
}

// ResetSortStates downgrades sorted columns back to sortable.
// Implements sorting.HeaderView.
func (t *SortableTable) ResetSortStates() {
	t.mx.Lock()
	for i, s := range t.states {
		if s == sorting.SortedAsc || s == sorting.SortedDesc {
			t.states[i] = sorting.Sortable
		}
	}
	t.mx.Unlock()

	t.renderHeader()
}

// DataChanged re-renders the table on adapter change notifications.
// Implements model.Observer.
func (t *SortableTable) DataChanged() {
	t.mx.Lock()
	if t.isUpdating {
		t.mx.Unlock()
		return
	}
	t.isUpdating = true
	t.mx.Unlock()

	defer func() {
		t.mx.Lock()
		t.isUpdating = false
		t.mx.Unlock()
	}()

	t.render()
}

// Refresh redraws the header and all rows from the adapter.
func (t *SortableTable) Refresh() {
	t.render()
}

// keyboard handles table keyboard input.
func (t *SortableTable) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := evt.Key()

	row, col := t.GetSelection()
	rowCount := t.GetRowCount()

	if key == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			if row < rowCount-1 {
				t.Select(row+1, col)
			}
			return nil
		case 'k':
			if row > 1 {
				t.Select(row-1, col)
			}
			return nil
		case 'g':
			if rowCount > 1 {
				t.Select(1, col)
			}
			return nil
		case 'G':
			if rowCount > 1 {
				t.Select(rowCount-1, col)
			}
			return nil
		}
	}

	switch key {
	case tcell.KeyDown:
		if row < rowCount-1 {
			t.Select(row+1, col)
		}
		return nil
	case tcell.KeyUp:
		if row > 1 {
			t.Select(row-1, col)
		}
		return nil
	case tcell.KeyHome:
		if rowCount > 1 {
			t.Select(1, col)
		}
		return nil
	case tcell.KeyEnd:
		if rowCount > 1 {
			t.Select(rowCount-1, col)
		}
		return nil
	}

	actionKey := key
	if key == tcell.KeyRune {
		actionKey = tcell.Key(evt.Rune())
	}
	if action, ok := t.actions.Get(actionKey); ok {
		return action.Action(evt)
	}

	return evt
}

// bindKeys sets up common table key bindings.
func (t *SortableTable) bindKeys() {
	t.actions.Bulk(KeyMap{
		tcell.KeyCtrlS: NewKeyAction("Sort Next Column", t.cycleSortHandler, true),
		KeyR:           NewKeyAction("Reverse Sort", t.reverseSortHandler, true),
	})
}

// cycleSortHandler advances the column sort to the next sortable column.
func (t *SortableTable) cycleSortHandler(evt *tcell.EventKey) *tcell.EventKey {
	cols := t.sortableCols()
	if len(cols) == 0 {
		return nil
	}

	next := cols[0]
	cur := t.ctl.GetSortedColumnIndex()
	for i, c := range cols {
		if c == cur {
			next = cols[(i+1)%len(cols)]
			break
		}
	}
	t.ctl.HeaderClicked(next)

	return nil
}

// reverseSortHandler flips the direction of the active column sort.
func (t *SortableTable) reverseSortHandler(evt *tcell.EventKey) *tcell.EventKey {
	if col := t.ctl.GetSortedColumnIndex(); col >= 0 {
		t.ctl.HeaderClicked(col)
	}

	return nil
}

// sortableCols returns the indexes of columns with a registered
// comparator.
func (t *SortableTable) sortableCols() []int {
	t.mx.RLock()
	defer t.mx.RUnlock()

	cc := make([]int, 0, len(t.states))
	for i, s := range t.states {
		if s != sorting.NotSortable {
			cc = append(cc, i)
		}
	}

	return cc
}

// render rebuilds the whole table from the adapter.
func (t *SortableTable) render() {
	rows := t.adapter.Data()
	if len(rows) == 0 {
		t.showNoData("No rows found")
		t.updateTitle(0)
		return
	}

	selID := t.selectedRowID()
	t.Clear()
	t.renderHeader()
	for i, row := range rows {
		t.buildRow(row, i+1)
	}
	t.updateTitle(len(rows))
	t.restoreSelection(selID)
}

// selectedRowID returns the reference ID of the selected row, if any.
func (t *SortableTable) selectedRowID() string {
	row, _ := t.GetSelection()
	if row < 1 || row >= t.GetRowCount() {
		return ""
	}
	if c := t.GetCell(row, 0); c != nil {
		if id, ok := c.GetReference().(string); ok {
			return id
		}
	}

	return ""
}

// restoreSelection re-selects the row carrying the given ID so the
// selection follows its row across reorders. Falls back to the nearest
// valid row when the ID is gone.
func (t *SortableTable) restoreSelection(id string) {
	if id != "" {
		for row := 1; row < t.GetRowCount(); row++ {
			if c := t.GetCell(row, 0); c != nil && c.GetReference() == id {
				t.Select(row, 0)
				return
			}
		}
	}

	row, _ := t.GetSelection()
	if row < 1 || row >= t.GetRowCount() {
		row = 1
	}
	t.Select(row, 0)
}

// renderHeader rebuilds the header row with sort glyphs and click
// handlers.
func (t *SortableTable) renderHeader() {
	t.mx.RLock()
	header, provider := t.header, t.provider
	states := make([]sorting.SortState, len(t.states))
	copy(states, t.states)
	t.mx.RUnlock()

	for col, h := range header {
		cell := tview.NewTableCell(h.Name + provider.Indicator(states[col]))
		cell.SetTextColor(tcell.ColorYellow)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(h.Align)
		cell.SetExpansion(1)
		cell.SetSelectable(false)
		if states[col] == sorting.SortedAsc || states[col] == sorting.SortedDesc {
			cell.SetAttributes(tcell.AttrBold)
		}
		cell.SetClickedFunc(func() bool {
			t.ctl.HeaderClicked(col)
			return true
		})
		t.SetCell(0, col, cell)
	}
}

// buildRow builds a single data row.
func (t *SortableTable) buildRow(row model.Row, rowIdx int) {
	t.mx.RLock()
	header := t.header
	t.mx.RUnlock()

	for col, field := range row.Fields {
		if col >= len(header) {
			break
		}

		cell := tview.NewTableCell(field)
		cell.SetTextColor(tcell.ColorWhite)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(header[col].Align)
		cell.SetExpansion(1)
		if col == 0 {
			cell.SetReference(row.ID)
		}
		t.SetCell(rowIdx, col, cell)
	}
}

// showNoData displays a message when there is no data.
func (t *SortableTable) showNoData(msg string) {
	t.Clear()
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	t.SetCell(0, 0, cell)
}

// updateTitle updates the table title with the row count.
func (t *SortableTable) updateTitle(count int) {
	t.SetTitle(fmt.Sprintf(TitleFmt, t.name, count))
}
