// Package sorting implements the column sort protocol for tabular views:
// a comparator registry keyed by column index, a click-driven toggle
// between ascending and descending order, and re-application of the
// active sort when the underlying collection changes externally.
//
// All operations are synchronous and run on a single goroutine, typically
// the UI event loop. Callers serialize any cross-thread mutation of the
// row collection.
package sorting

// SortState is the indicator state of a single header column.
type SortState int

const (
	// NotSortable marks a column without a comparator. Clicks are ignored.
	NotSortable SortState = iota

	// Sortable marks a sortable column with no active sort.
	Sortable

	// SortedAsc marks the active column, sorted ascending.
	SortedAsc

	// SortedDesc marks the active column, sorted descending.
	SortedDesc
)

// String implements fmt.Stringer.
func (s SortState) String() string {
	switch s {
	case Sortable:
		return "sortable"
	case SortedAsc:
		return "ascending"
	case SortedDesc:
		return "descending"
	default:
		return "not sortable"
	}
}

// Adapter is the data collaborator. It owns the ordered row collection
// the controller sorts in place and broadcasts change notifications to
// its observers.
type Adapter[T any] interface {
	// Data returns the live row slice. Sorting mutates it directly.
	Data() []T

	// NotifyChanged signals observers that the collection contents changed.
	NotifyChanged()
}

// HeaderView is the header collaborator. It renders per-column sort
// indicators and owns bounds checking for column indices.
type HeaderView interface {
	// SetSortState updates the indicator of a single column.
	SetSortState(col int, state SortState)

	// ResetSortStates returns every active indicator to its neutral state.
	ResetSortStates()
}

// HeaderClickListener receives header click events. Controller implements
// it so that any header rendering can drive the sort protocol.
type HeaderClickListener interface {
	HeaderClicked(col int)
}
