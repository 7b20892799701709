package node

// Arena assigns handles to nodes on entry and keeps them addressable by
// handle. Handles increase monotonically for the arena's lifetime, including
// across Reset, so a long-lived measurement cache never confuses a new node
// with a released one.
type Arena struct {
	nodes []*Node
	base  Handle // handle of nodes[0]
	next  Handle
}

// NewArena creates an empty arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return &Arena{
		nodes: make([]*Node, 0, capacity),
		base:  1,
		next:  1,
	}
}

// New adds a node describing a fresh widget instance. The instance id is
// derived from the handle.
func (a *Arena) New(kind Kind, props Props, children ...*Node) *Node {
	return a.NewInstance(InstanceID(a.next), kind, props, children...)
}

// NewInstance adds a node describing the given widget instance. Reconcilers
// use it to re-describe an instance that existed in a previous render.
func (a *Arena) NewInstance(id InstanceID, kind Kind, props Props, children ...*Node) *Node {
	n := &Node{
		kind:     kind,
		props:    props,
		handle:   a.next,
		instance: id,
	}
	if len(children) > 0 {
		n.children = append(make([]*Node, 0, len(children)), children...)
	}
	a.next++
	a.nodes = append(a.nodes, n)
	return n
}

// Get returns the node with handle h, or nil if it is not held by the arena.
func (a *Arena) Get(h Handle) *Node {
	if h < a.base || h >= a.next {
		return nil
	}
	return a.nodes[h-a.base]
}

// Len returns the number of nodes currently held.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Reset drops all held nodes while keeping the backing storage. Handle
// assignment continues from where it left off.
func (a *Arena) Reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.base = a.next
}

// Box adds a box container.
func (a *Arena) Box(p Props, children ...*Node) *Node {
	return a.New(KindBox, p, children...)
}

// Row adds a horizontal container.
func (a *Arena) Row(p Props, children ...*Node) *Node {
	return a.New(KindRow, p, children...)
}

// Column adds a vertical container.
func (a *Arena) Column(p Props, children ...*Node) *Node {
	return a.New(KindColumn, p, children...)
}

// Text adds a text leaf with the given content.
func (a *Arena) Text(s string, p Props) *Node {
	p.Text = s
	return a.New(KindText, p)
}

// Spacer adds a spacer leaf.
func (a *Arena) Spacer(p Props) *Node {
	return a.New(KindSpacer, p)
}
