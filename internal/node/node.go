// Package node defines the immutable widget descriptions handed to layout.
//
// A Node is created once per committed render through an Arena, which assigns
// it a stable Handle. Identity-keyed memoization (the measurement cache) uses
// the handle rather than structural equality: two structurally identical
// nodes are distinct. InstanceIDs identify the widget instance across renders
// and feed dirty tracking, since nodes themselves are replaced every render.
package node

// Handle is the arena identity of a node. Zero is never assigned.
type Handle uint32

// InstanceID is a stable per-instance id that survives re-renders.
type InstanceID uint32

// Node is an immutable widget description: a kind, its properties and an
// ordered child sequence.
type Node struct {
	kind     Kind
	props    Props
	children []*Node
	handle   Handle
	instance InstanceID
}

// Kind returns the node's widget kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Props returns a pointer to the node's properties. Callers must not mutate it.
func (n *Node) Props() *Props {
	return &n.props
}

// Children returns the ordered children. Callers must not mutate the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// Handle returns the node's arena identity.
func (n *Node) Handle() Handle {
	return n.handle
}

// Instance returns the widget instance id this node describes.
func (n *Node) Instance() InstanceID {
	return n.instance
}

// Walk visits n and its descendants depth-first in source order. fn receives
// each node and its parent (nil for n). Returning false skips the subtree.
func Walk(n *Node, fn func(n, parent *Node) bool) {
	walk(n, nil, fn)
}

func walk(n, parent *Node, fn func(n, parent *Node) bool) {
	if n == nil || !fn(n, parent) {
		return
	}
	for _, c := range n.children {
		walk(c, n, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node, *Node) bool {
		total++
		return true
	})
	return total
}
