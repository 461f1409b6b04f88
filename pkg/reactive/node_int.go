package reactive

// IntNode wraps Node[int] with convenience methods for integer operations.
type IntNode struct {
	*Node[int]
}

// NewInt creates a new IntNode with the given initial value.
func NewInt(initial int) *IntNode {
	return &IntNode{New(initial)}
}

// Inc increments the value by 1.
func (n *IntNode) Inc() {
	n.Update(func(v int) int { return v + 1 })
}

// Dec decrements the value by 1.
func (n *IntNode) Dec() {
	n.Update(func(v int) int { return v - 1 })
}

// Add adds the given value.
func (n *IntNode) Add(d int) {
	n.Update(func(v int) int { return v + d })
}

// Sub subtracts the given value.
func (n *IntNode) Sub(d int) {
	n.Update(func(v int) int { return v - d })
}

// Mul multiplies by the given value.
func (n *IntNode) Mul(d int) {
	n.Update(func(v int) int { return v * d })
}

// Div divides by the given value.
// Note: Integer division truncates toward zero.
func (n *IntNode) Div(d int) {
	n.Update(func(v int) int { return v / d })
}

// Int64Node wraps Node[int64] with convenience methods for integer operations.
type Int64Node struct {
	*Node[int64]
}

// NewInt64 creates a new Int64Node with the given initial value.
func NewInt64(initial int64) *Int64Node {
	return &Int64Node{New(initial)}
}

// Inc increments the value by 1.
func (n *Int64Node) Inc() {
	n.Update(func(v int64) int64 { return v + 1 })
}

// Dec decrements the value by 1.
func (n *Int64Node) Dec() {
	n.Update(func(v int64) int64 { return v - 1 })
}

// Add adds the given value.
func (n *Int64Node) Add(d int64) {
	n.Update(func(v int64) int64 { return v + d })
}

// Sub subtracts the given value.
func (n *Int64Node) Sub(d int64) {
	n.Update(func(v int64) int64 { return v - d })
}

// Float64Node wraps Node[float64] with convenience methods for float operations.
type Float64Node struct {
	*Node[float64]
}

// NewFloat64 creates a new Float64Node with the given initial value.
func NewFloat64(initial float64) *Float64Node {
	return &Float64Node{New(initial)}
}

// Add adds the given value.
func (n *Float64Node) Add(d float64) {
	n.Update(func(v float64) float64 { return v + d })
}

// Sub subtracts the given value.
func (n *Float64Node) Sub(d float64) {
	n.Update(func(v float64) float64 { return v - d })
}

// Mul multiplies by the given value.
func (n *Float64Node) Mul(d float64) {
	n.Update(func(v float64) float64 { return v * d })
}

// Div divides by the given value.
func (n *Float64Node) Div(d float64) {
	n.Update(func(v float64) float64 { return v / d })
}
