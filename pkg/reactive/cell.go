package reactive

import "sync"

// cell is the storage slot behind a Node: the current value plus the
// ordered list of subscriber callbacks, guarded by a single mutex.
// Derived nodes and observers are both entries in the same list, so one
// write fans out to them in registration order.
type cell[T any] struct {
	mu sync.RWMutex

	// value is the most recently committed value.
	value T

	// observers are invoked with the committed value on every write.
	// The list is append-only; there is no unsubscribe.
	observers []func(T)
}

// read returns a snapshot of the current value. Readers share the lock
// and contend only with an in-progress write.
func (c *cell[T]) read() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// readWith runs fn with the current value while holding the read lock,
// so the value cannot change underneath fn.
func (c *cell[T]) readWith(fn func(T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.value)
}

// replace commits v and notifies subscribers before returning.
func (c *cell[T]) replace(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.notifyLocked()
}

// mutate applies fn to the value in place, avoiding an intermediate
// copy, then notifies subscribers.
func (c *cell[T]) mutate(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.value)
	c.notifyLocked()
}

// subscribe appends fn to the observer list. fn is not invoked with the
// current value; it fires on the next write.
func (c *cell[T]) subscribe(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// notifyLocked fans the current value out to every subscriber in
// registration order. Callers must hold mu. The value is committed
// before any subscriber runs; a panicking subscriber aborts the rest of
// the fan-out but leaves the value and the lock intact (the caller's
// deferred unlock releases mu as the panic unwinds).
func (c *cell[T]) notifyLocked() {
	for _, fn := range c.observers {
		fn(c.value)
	}
}
