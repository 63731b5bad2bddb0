package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countObserver struct {
	changes int
}

func (c *countObserver) DataChanged() { c.changes++ }

func testRows() Rows {
	return Rows{
		testRow("i-1", "host-1", "running"),
		testRow("i-2", "host-2", "stopped"),
		testRow("i-3", "host-3", "running"),
	}
}

func TestAdapterData(t *testing.T) {
	a := NewAdapter(testRows())

	require.Equal(t, 3, a.Count())
	rows := a.Data()
	require.Len(t, rows, 3)
	assert.Equal(t, "i-1", rows[0].ID)

	// Data hands out the live slice so in-place reorders stick.
	rows[0], rows[2] = rows[2], rows[0]
	assert.Equal(t, "i-3", a.Data()[0].ID)
}

func TestAdapterMutators(t *testing.T) {
	a := NewAdapter(testRows())

	a.Append(testRow("i-4", "host-4", "running"))
	assert.Equal(t, 4, a.Count())

	require.True(t, a.RemoveID("i-2"))
	assert.False(t, a.RemoveID("i-2"))
	assert.Equal(t, 3, a.Count())
	for _, r := range a.Data() {
		assert.NotEqual(t, "i-2", r.ID)
	}

	a.Set(Rows{testRow("i-9", "host-9", "running")})
	assert.Equal(t, 1, a.Count())

	a.Clear()
	assert.Equal(t, 0, a.Count())
}

func TestAdapterMutatorsDoNotNotify(t *testing.T) {
	a := NewAdapter(testRows())
	var o countObserver
	a.AddObserver(&o)

	a.Append(testRow("i-4", "host-4", "running"))
	a.RemoveID("i-1")
	a.Set(testRows())
	a.Clear()
	assert.Equal(t, 0, o.changes)

	a.NotifyChanged()
	assert.Equal(t, 1, o.changes)
}

func TestAdapterNotifyAll(t *testing.T) {
	a := NewAdapter(testRows())
	var o1, o2 countObserver
	a.AddObserver(&o1)
	a.AddObserver(&o2)

	a.NotifyChanged()
	a.NotifyChanged()

	assert.Equal(t, 2, o1.changes)
	assert.Equal(t, 2, o2.changes)
}

func TestAdapterRemoveObserver(t *testing.T) {
	a := NewAdapter(testRows())
	var o1, o2 countObserver
	a.AddObserver(&o1)
	a.AddObserver(&o2)

	a.RemoveObserver(&o1)
	a.NotifyChanged()

	assert.Equal(t, 0, o1.changes)
	assert.Equal(t, 1, o2.changes)
}

// selfRemover unregisters itself from inside its callback.
type selfRemover struct {
	adapter *Adapter
	changes int
}

func (s *selfRemover) DataChanged() {
	s.changes++
	s.adapter.RemoveObserver(s)
}

func TestAdapterObserverRemovesItselfDuringNotify(t *testing.T) {
	a := NewAdapter(testRows())
	s := selfRemover{adapter: a}
	var o countObserver
	a.AddObserver(&s)
	a.AddObserver(&o)

	a.NotifyChanged()
	a.NotifyChanged()

	assert.Equal(t, 1, s.changes)
	assert.Equal(t, 2, o.changes)
}

// reentrantObserver re-reads the adapter from inside its callback.
type reentrantObserver struct {
	adapter *Adapter
	seen    int
}

func (r *reentrantObserver) DataChanged() { r.seen = r.adapter.Count() }

func TestAdapterReentrantRead(t *testing.T) {
	a := NewAdapter(testRows())
	r := reentrantObserver{adapter: a}
	a.AddObserver(&r)

	a.NotifyChanged()

	assert.Equal(t, 3, r.seen)
}
