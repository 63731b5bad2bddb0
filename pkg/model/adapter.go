package model

import "sync"

// Observer represents a listener for data change notifications. The
// notification carries no payload: observers re-read the rows via Data.
type Observer interface {
	DataChanged()
}

// Adapter owns an ordered row collection and broadcasts change
// notifications to its observers. Mutators do not notify implicitly so
// callers can batch edits and emit a single NotifyChanged.
type Adapter struct {
	rows      Rows
	observers []Observer
	mx        sync.RWMutex
}

// NewAdapter returns an adapter owning the given rows.
func NewAdapter(rows Rows) *Adapter {
	return &Adapter{
		rows:      rows,
		observers: make([]Observer, 0, 2),
	}
}

// Data returns the live row slice. Sorting reorders it in place.
func (a *Adapter) Data() []Row {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return a.rows
}

// Count returns the number of rows.
func (a *Adapter) Count() int {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return len(a.rows)
}

// Set replaces the whole collection.
func (a *Adapter) Set(rows Rows) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.rows = rows
}

// Append adds a row at the end of the collection.
func (a *Adapter) Append(r Row) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.rows = append(a.rows, r)
}

// RemoveID deletes the row with the given ID, reporting whether it was
// present.
func (a *Adapter) RemoveID(id string) bool {
	a.mx.Lock()
	defer a.mx.Unlock()

	for i := range a.rows {
		if a.rows[i].ID == id {
			a.rows = append(a.rows[:i], a.rows[i+1:]...)
			return true
		}
	}

	return false
}

// Clear drops all rows.
func (a *Adapter) Clear() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.rows = nil
}

// AddObserver registers a new data change observer.
func (a *Adapter) AddObserver(o Observer) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.observers = append(a.observers, o)
}

// RemoveObserver unregisters a data change observer.
func (a *Adapter) RemoveObserver(o Observer) {
	a.mx.Lock()
	defer a.mx.Unlock()

	for i, observer := range a.observers {
		if observer == o {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

// NotifyChanged broadcasts a change notification. The observer list is
// snapshotted first so callbacks may re-enter the adapter or change
// registrations.
func (a *Adapter) NotifyChanged() {
	a.mx.RLock()
	observers := make([]Observer, len(a.observers))
	copy(observers, a.observers)
	a.mx.RUnlock()

	for _, o := range observers {
		o.DataChanged()
	}
}
