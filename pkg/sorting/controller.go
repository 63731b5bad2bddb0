package sorting

import (
	"slices"

	"github.com/tably/tably/pkg/tablog"
)

// Controller tracks which column is sorted in which direction and applies
// the click toggle protocol: the first click on a column sorts ascending,
// a second consecutive click descending, and switching to another column
// resets to ascending.
type Controller[T any] struct {
	adapter     Adapter[T]
	header      HeaderView
	comparators map[int]Comparator[T]
	sortedCol   int
	ascending   bool
	active      Comparator[T]
	guard       notifyGuard
	observer    *RecapObserver[T]
}

// NewController returns a controller bound to the given collaborators.
// Initially no column is sorted and the direction defaults to ascending.
func NewController[T any](adapter Adapter[T], header HeaderView) *Controller[T] {
	c := &Controller[T]{
		adapter:     adapter,
		header:      header,
		comparators: make(map[int]Comparator[T]),
		sortedCol:   -1,
		ascending:   true,
	}
	c.observer = &RecapObserver[T]{ctl: c}

	return c
}

// SetComparator registers or removes the comparator of a column. A nil
// comparator removes the column from the registry and marks it not
// sortable; removing the active column also clears the active sort.
func (c *Controller[T]) SetComparator(col int, cmp Comparator[T]) {
	if cmp == nil {
		delete(c.comparators, col)
		if col == c.sortedCol {
			c.sortedCol = -1
			c.active = nil
			c.ascending = true
		}
		// Cleared before the header callback so it observes the new state.
		c.header.SetSortState(col, NotSortable)
		return
	}

	c.comparators[col] = cmp
	c.header.SetSortState(col, Sortable)
}

// GetComparator returns the raw registered comparator of a column, nil
// when the column is not sortable. The toggle direction is not applied.
func (c *Controller[T]) GetComparator(col int) Comparator[T] {
	return c.comparators[col]
}

// HeaderClicked implements HeaderClickListener. It resolves the effective
// comparator for the clicked column, sorts the adapter data in place and
// updates the header indicators. Clicks on columns without a comparator
// are ignored.
func (c *Controller[T]) HeaderClicked(col int) {
	if _, ok := c.comparators[col]; !ok {
		tablog.Zero.Info().Int("column", col).Msg("unable to sort column, no comparator registered")
		return
	}

	c.active = c.effective(col)
	c.sortData(c.active)
	c.sortedCol = col
	c.markSorted(col)
}

// Sort sorts the given column in the requested direction. It has the same
// net effect as header clicks: the column becomes the active sorted column
// and the indicator reflects the direction. Columns without a comparator
// are ignored without touching any state.
func (c *Controller[T]) Sort(col int, ascending bool) {
	if _, ok := c.comparators[col]; !ok {
		tablog.Zero.Info().Int("column", col).Msg("unable to sort column, no comparator registered")
		return
	}

	// Prime the toggle so the click path lands on the requested direction.
	c.ascending = !ascending
	c.sortedCol = col
	c.HeaderClicked(col)
}

// SortFunc sorts the adapter data with an ad-hoc comparator, bypassing
// the column protocol: the sorted column, the direction and the header
// indicators are left untouched.
func (c *Controller[T]) SortFunc(cmp Comparator[T]) {
	c.sortData(cmp)
}

// GetSortedColumnIndex returns the index of the active sorted column,
// or -1 when no column is sorted.
func (c *Controller[T]) GetSortedColumnIndex() int {
	return c.sortedCol
}

// IsSortedAscending returns false if the active column is sorted
// descending, true if it is sorted ascending or no column is sorted.
func (c *Controller[T]) IsSortedAscending() bool {
	return c.ascending
}

// Observer returns the change observer that re-applies the active sort
// after external data mutations. Register it with the adapter.
func (c *Controller[T]) Observer() *RecapObserver[T] {
	return c.observer
}

// effective resolves the toggle rule for a clicked column: re-clicking
// the active column reverses the last direction, any other column starts
// ascending.
func (c *Controller[T]) effective(col int) Comparator[T] {
	cmp := c.comparators[col]
	if col == c.sortedCol {
		if c.ascending {
			cmp = Reverse(cmp)
		}
		c.ascending = !c.ascending
		return cmp
	}

	c.ascending = true
	return cmp
}

// markSorted flips the clicked column's indicator to the direction just
// applied, clearing every other column first.
func (c *Controller[T]) markSorted(col int) {
	c.header.ResetSortStates()
	if c.ascending {
		c.header.SetSortState(col, SortedAsc)
	} else {
		c.header.SetSortState(col, SortedDesc)
	}
}

// recap re-applies the active comparator after an external change. With
// no active sort this is a no-op.
func (c *Controller[T]) recap() {
	c.sortData(c.active)
}

// sortData stable-sorts the adapter rows in place and notifies. The guard
// is raised just before notifying so the observer can tell this
// notification from an external one. A nil comparator skips the sort and
// the notification entirely.
func (c *Controller[T]) sortData(cmp Comparator[T]) {
	if cmp == nil {
		return
	}

	rows := c.adapter.Data()
	slices.SortStableFunc(rows, cmp)
	c.guard.raise()
	c.adapter.NotifyChanged()
}
