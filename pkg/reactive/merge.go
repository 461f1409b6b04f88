package reactive

// Pair is the value type of a two-way merge.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value type of a three-way merge.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Merge combines two nodes into a node holding their latest values as a
// pair. Whenever either input commits a value, the combined node updates
// that input's slot in place (the other slot keeps its last-known value)
// and fans the full pair out to its own subscribers.
//
// Wider combinations compose by nesting, or use Merge3 / MergeAll:
//
//	m := reactive.Merge(a, reactive.Merge(b, c))
func Merge[A, B any](a *Node[A], b *Node[B]) *Node[Pair[A, B]] {
	m := NewZero[Pair[A, B]]()
	mergeIn(a, m, func(p *Pair[A, B], v A) { p.First = v })
	mergeIn(b, m, func(p *Pair[A, B], v B) { p.Second = v })
	return m
}

// Merge3 combines three nodes into a node holding their latest values as
// a triple. Semantics match Merge.
func Merge3[A, B, C any](a *Node[A], b *Node[B], c *Node[C]) *Node[Triple[A, B, C]] {
	m := NewZero[Triple[A, B, C]]()
	mergeIn(a, m, func(t *Triple[A, B, C], v A) { t.First = v })
	mergeIn(b, m, func(t *Triple[A, B, C], v B) { t.Second = v })
	mergeIn(c, m, func(t *Triple[A, B, C], v C) { t.Third = v })
	return m
}

// MergeAll combines any number of same-typed nodes into a node holding
// the slice of their latest values, index i tracking nodes[i].
//
// Each commit installs a freshly built slice, so a slice returned by Get
// is a stable snapshot: later input updates never write into its backing
// array.
func MergeAll[T any](nodes ...*Node[T]) *Node[[]T] {
	m := New(make([]T, len(nodes)))
	for i, n := range nodes {
		i := i
		mergeIn(n, m, func(s *[]T, v T) {
			next := make([]T, len(*s))
			copy(next, *s)
			next[i] = v
			*s = next
		})
	}
	return m
}

// mergeIn wires one input of a merge: it seeds dst's slot from src's
// current value and subscribes a closure that refreshes only that slot.
// Both happen inside src's critical section, so a write racing with the
// merge construction cannot be lost or land out of order.
func mergeIn[S, C any](src *Node[S], dst *Node[C], set func(*C, S)) {
	c := &src.cell
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, func(v S) {
		dst.UpdateInPlace(func(cv *C) { set(cv, v) })
	})
	dst.UpdateInPlace(func(cv *C) { set(cv, c.value) })
}
