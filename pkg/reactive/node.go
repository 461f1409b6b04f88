package reactive

import (
	"fmt"
	"reflect"
)

// Node is a reactive value container. The *Node pointer is the handle
// callers pass around: copying it is cheap and every copy refers to the
// same cell, so updates through one handle are visible through all of
// them.
type Node[T any] struct {
	cell cell[T]

	// equal is the equality function used by the IfChanged variants.
	// If nil, uses default equality checking.
	equal func(T, T) bool
}

// New creates a new node holding the given initial value, with no
// subscribers.
func New[T any](initial T) *Node[T] {
	return &Node[T]{cell: cell[T]{value: initial}}
}

// NewZero creates a new node holding the zero value of T.
func NewZero[T any]() *Node[T] {
	var zero T
	return New(zero)
}

// Get returns a snapshot of the current value. It contends only with an
// in-progress write on the same node.
func (n *Node[T]) Get() T {
	return n.cell.read()
}

// Read runs fn with the current value while the node's lock is held, so
// the value observed by fn is atomic with respect to concurrent writers.
func (n *Node[T]) Read(fn func(T)) {
	n.cell.readWith(fn)
}

// Set installs v as the new value and notifies every subscriber with it,
// in registration order, before returning.
func (n *Node[T]) Set(v T) {
	n.cell.replace(v)
}

// Update atomically replaces the value with fn(current) and notifies
// subscribers. Propagation through derived nodes completes before Update
// returns. Subscribers are notified once per call, whether or not the
// value changed; use UpdateIfChanged to gate on equality.
func (n *Node[T]) Update(fn func(T) T) {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = fn(c.value)
	c.notifyLocked()
}

// UpdateInPlace mutates the value in place and notifies subscribers.
// Prefer this over Update for values that are expensive to rebuild, such
// as a large slice being appended to.
func (n *Node[T]) UpdateInPlace(fn func(*T)) {
	n.cell.mutate(fn)
}

// SetIfChanged installs v and notifies subscribers only if v differs
// from the current value under the node's equality function.
func (n *Node[T]) SetIfChanged(v T) {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	if n.equals(c.value, v) {
		return
	}
	c.value = v
	c.notifyLocked()
}

// UpdateIfChanged atomically replaces the value with fn(current),
// notifying subscribers only if the result differs from the current
// value under the node's equality function.
func (n *Node[T]) UpdateIfChanged(fn func(T) T) {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	next := fn(c.value)
	if n.equals(c.value, next) {
		return
	}
	c.value = next
	c.notifyLocked()
}

// Observe appends fn to the node's subscriber list. fn fires on every
// subsequent write with the committed value; it does not fire for the
// value present at registration time. There is no way to remove it.
//
// fn runs while the node's lock is held and must not call back into this
// node.
func (n *Node[T]) Observe(fn func(T)) {
	n.cell.subscribe(fn)
}

// ObserveWithCurrent appends fn to the subscriber list and invokes it
// once with the current value, both inside one critical section: no
// write can fall between the registration and the initial invocation.
// Use this to seed external state (a gauge, a cache) that must then
// follow every commit without a gap.
func (n *Node[T]) ObserveWithCurrent(fn func(T)) {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
	fn(c.value)
}

// Notify re-announces the current value to every subscriber without
// changing it.
func (n *Node[T]) Notify() {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifyLocked()
}

// With runs fn with exclusive access to the value, letting several reads
// and writes happen under a single lock acquisition. Changes made
// through v are committed but not announced; call notify to fan the
// value out at chosen points.
//
//	n.With(func(v *int, notify func()) {
//	    *v += 10
//	    *v *= 2
//	    notify()
//	})
func (n *Node[T]) With(fn func(v *T, notify func())) {
	c := &n.cell
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.value, c.notifyLocked)
}

// WithEquals configures the equality function used by SetIfChanged and
// UpdateIfChanged. This is useful for types where reflect.DeepEqual is
// too expensive or has incorrect semantics. Returns the node for
// chaining; call it before the node is shared across goroutines.
func (n *Node[T]) WithEquals(fn func(T, T) bool) *Node[T] {
	n.equal = fn
	return n
}

// String renders the node as Node(value) for diagnostics. It reads the
// current value, so it must not be called while holding the node's lock
// (for example from one of its own observers).
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", n.Get())
}

// equals checks two values using the configured equality function.
func (n *Node[T]) equals(a, b T) bool {
	if n.equal != nil {
		return n.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for common comparable types and reflect.DeepEqual for others.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		// Fall back to reflect.DeepEqual for slices, maps, structs, etc.
		return reflect.DeepEqual(a, b)
	}
}
