package reactive

// SliceNode wraps Node[[]T] with convenience methods for slice operations.
//
// The mutating methods ride UpdateInPlace, so growing a large slice does
// not rebuild it on every write. Slices returned by Get share the
// in-place-mutated backing array (SetAt and UpdateAt write into it);
// treat them as snapshots to read, not to hold across writes.
type SliceNode[T any] struct {
	*Node[[]T]
}

// NewSlice creates a new SliceNode with the given initial value.
// If initial is nil, creates an empty slice.
func NewSlice[T any](initial []T) *SliceNode[T] {
	if initial == nil {
		initial = []T{}
	}
	return &SliceNode[T]{New(initial)}
}

// Append adds an item to the end of the slice.
func (n *SliceNode[T]) Append(item T) {
	n.UpdateInPlace(func(items *[]T) {
		*items = append(*items, item)
	})
}

// AppendAll adds multiple items to the end of the slice.
func (n *SliceNode[T]) AppendAll(items ...T) {
	n.UpdateInPlace(func(current *[]T) {
		*current = append(*current, items...)
	})
}

// Prepend adds an item to the beginning of the slice.
func (n *SliceNode[T]) Prepend(item T) {
	n.UpdateInPlace(func(items *[]T) {
		*items = append([]T{item}, *items...)
	})
}

// InsertAt inserts an item at the given index. Out-of-bounds indexes
// clamp to the ends of the slice.
func (n *SliceNode[T]) InsertAt(index int, item T) {
	n.UpdateInPlace(func(items *[]T) {
		s := *items
		if index < 0 {
			index = 0
		}
		if index >= len(s) {
			*items = append(s, item)
			return
		}
		s = append(s, item)
		copy(s[index+1:], s[index:])
		s[index] = item
		*items = s
	})
}

// SetAt sets the item at the given index.
// Does nothing if index is out of bounds.
func (n *SliceNode[T]) SetAt(index int, item T) {
	n.UpdateInPlace(func(items *[]T) {
		if index < 0 || index >= len(*items) {
			return
		}
		(*items)[index] = item
	})
}

// UpdateAt updates the item at the given index using the provided function.
// Does nothing if index is out of bounds.
func (n *SliceNode[T]) UpdateAt(index int, fn func(T) T) {
	n.UpdateInPlace(func(items *[]T) {
		if index < 0 || index >= len(*items) {
			return
		}
		(*items)[index] = fn((*items)[index])
	})
}

// RemoveAt removes the item at the given index.
// Does nothing if index is out of bounds.
func (n *SliceNode[T]) RemoveAt(index int) {
	n.UpdateInPlace(func(items *[]T) {
		s := *items
		if index < 0 || index >= len(s) {
			return
		}
		*items = append(s[:index], s[index+1:]...)
	})
}

// RemoveFirst removes the first item from the slice.
// Does nothing if the slice is empty.
func (n *SliceNode[T]) RemoveFirst() {
	n.UpdateInPlace(func(items *[]T) {
		if len(*items) == 0 {
			return
		}
		*items = (*items)[1:]
	})
}

// RemoveLast removes the last item from the slice.
// Does nothing if the slice is empty.
func (n *SliceNode[T]) RemoveLast() {
	n.UpdateInPlace(func(items *[]T) {
		if len(*items) == 0 {
			return
		}
		*items = (*items)[:len(*items)-1]
	})
}

// RemoveWhere removes all items that satisfy the predicate.
func (n *SliceNode[T]) RemoveWhere(predicate func(T) bool) {
	n.UpdateInPlace(func(items *[]T) {
		kept := (*items)[:0]
		for _, item := range *items {
			if !predicate(item) {
				kept = append(kept, item)
			}
		}
		*items = kept
	})
}

// Filter keeps only items that satisfy the predicate.
func (n *SliceNode[T]) Filter(predicate func(T) bool) {
	n.RemoveWhere(func(item T) bool { return !predicate(item) })
}

// Clear removes all items from the slice.
func (n *SliceNode[T]) Clear() {
	n.Set([]T{})
}

// Len returns the length of the current slice.
func (n *SliceNode[T]) Len() int {
	length := 0
	n.Read(func(items []T) { length = len(items) })
	return length
}
