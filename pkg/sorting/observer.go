package sorting

// guardState distinguishes the two causes of a change notification.
type guardState int

const (
	// guardIdle means the next notification reports an external mutation.
	guardIdle guardState = iota

	// guardSorting means a controller sort has a notification in flight.
	guardSorting
)

// notifyGuard is the one-level reentrancy guard shared by controller and
// observer. The controller raises it right before notifying; the observer
// consumes it when the notification arrives.
type notifyGuard struct {
	state guardState
}

func (g *notifyGuard) raise() {
	g.state = guardSorting
}

// consume reports whether the guard was raised, lowering it again.
func (g *notifyGuard) consume() bool {
	if g.state == guardSorting {
		g.state = guardIdle
		return true
	}
	return false
}

// RecapObserver keeps the collection sorted across external mutations:
// when the adapter reports a change that was not caused by the controller
// itself, it re-applies the active effective comparator. The recap sort
// notifies again; that second notification finds the guard raised and
// terminates the cycle. With no active sort the change passes through
// untouched and the guard stays idle, so later changes are still seen.
type RecapObserver[T any] struct {
	ctl *Controller[T]
}

// DataChanged handles an adapter change notification.
func (o *RecapObserver[T]) DataChanged() {
	if o.ctl.guard.consume() {
		return
	}
	o.ctl.recap()
}
