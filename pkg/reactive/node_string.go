package reactive

// StringNode wraps Node[string] with convenience methods for string operations.
type StringNode struct {
	*Node[string]
}

// NewString creates a new StringNode with the given initial value.
func NewString(initial string) *StringNode {
	return &StringNode{New(initial)}
}

// Append adds the given string to the end.
func (n *StringNode) Append(suffix string) {
	n.Update(func(v string) string { return v + suffix })
}

// Prepend adds the given string to the beginning.
func (n *StringNode) Prepend(prefix string) {
	n.Update(func(v string) string { return prefix + v })
}

// Clear sets the value to an empty string.
func (n *StringNode) Clear() {
	n.Set("")
}

// Len returns the length of the current string.
func (n *StringNode) Len() int {
	return len(n.Get())
}

// IsEmpty returns true if the string is empty.
func (n *StringNode) IsEmpty() bool {
	return n.Get() == ""
}
