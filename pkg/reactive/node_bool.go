package reactive

// BoolNode wraps Node[bool] with convenience methods for boolean operations.
type BoolNode struct {
	*Node[bool]
}

// NewBool creates a new BoolNode with the given initial value.
func NewBool(initial bool) *BoolNode {
	return &BoolNode{New(initial)}
}

// Toggle inverts the boolean value.
func (n *BoolNode) Toggle() {
	n.Update(func(b bool) bool { return !b })
}

// SetTrue sets the value to true.
func (n *BoolNode) SetTrue() {
	n.Set(true)
}

// SetFalse sets the value to false.
func (n *BoolNode) SetFalse() {
	n.Set(false)
}
