package reactive

// Derive creates a node whose value is fn applied to n's value, kept
// eagerly in sync: every write to n recomputes the derived value and
// commits it (with its own fan-out) before the write returns.
//
// The derived node's initial value and its subscription are installed in
// a single critical section on n, so the result is never stale even when
// other goroutines are writing to n concurrently.
//
// The subscription holds a strong handle to the derived cell: n keeps
// the derived node alive even if the caller drops the returned handle.
func Derive[T, U any](n *Node[T], fn func(T) U) *Node[U] {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	d := New(fn(c.value))
	c.observers = append(c.observers, func(v T) {
		d.Set(fn(v))
	})
	return d
}
