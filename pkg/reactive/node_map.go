package reactive

// MapNode wraps Node[map[K]V] with convenience methods for map operations.
//
// The mutating methods ride UpdateInPlace and modify the map directly;
// values returned by Get share that map, so treat them as snapshots to
// read, not to hold across writes.
type MapNode[K comparable, V any] struct {
	*Node[map[K]V]
}

// NewMap creates a new MapNode with the given initial value.
// If initial is nil, creates an empty map.
func NewMap[K comparable, V any](initial map[K]V) *MapNode[K, V] {
	if initial == nil {
		initial = make(map[K]V)
	}
	return &MapNode[K, V]{New(initial)}
}

// SetKey sets a key-value pair in the map.
func (n *MapNode[K, V]) SetKey(key K, value V) {
	n.UpdateInPlace(func(m *map[K]V) {
		(*m)[key] = value
	})
}

// RemoveKey removes a key from the map.
func (n *MapNode[K, V]) RemoveKey(key K) {
	n.UpdateInPlace(func(m *map[K]V) {
		delete(*m, key)
	})
}

// UpdateKey updates the value for a key using the provided function.
// Does nothing if the key is absent.
func (n *MapNode[K, V]) UpdateKey(key K, fn func(V) V) {
	n.UpdateInPlace(func(m *map[K]V) {
		if v, ok := (*m)[key]; ok {
			(*m)[key] = fn(v)
		}
	})
}

// HasKey returns true if the key is present.
func (n *MapNode[K, V]) HasKey(key K) bool {
	found := false
	n.Read(func(m map[K]V) { _, found = m[key] })
	return found
}

// GetKey returns the value for a key and whether it is present.
func (n *MapNode[K, V]) GetKey(key K) (V, bool) {
	var (
		value V
		ok    bool
	)
	n.Read(func(m map[K]V) { value, ok = m[key] })
	return value, ok
}

// Clear removes all entries from the map.
func (n *MapNode[K, V]) Clear() {
	n.Set(make(map[K]V))
}

// Len returns the number of entries in the current map.
func (n *MapNode[K, V]) Len() int {
	length := 0
	n.Read(func(m map[K]V) { length = len(m) })
	return length
}
