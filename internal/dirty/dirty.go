// Package dirty computes which widget instances must be treated as changed
// in a frame.
//
// A Set is closed under "ancestor of dirty is dirty": marking an instance
// also marks every ancestor up to the root. Sets are keyed by stable
// instance ids rather than node identity, because nodes are replaced on
// every render while instances persist.
package dirty

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/grindlemire/go-tuicore/internal/node"
)

// Set is a set of instance ids.
type Set struct {
	bits *bitset.BitSet
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{bits: bitset.New(0)}
}

// Has reports whether id is in the set. A nil set is empty.
func (s *Set) Has(id node.InstanceID) bool {
	if s == nil {
		return false
	}
	return s.bits.Test(uint(id))
}

// Add inserts id. It does not mark ancestors; use Compute for closure.
func (s *Set) Add(id node.InstanceID) {
	s.bits.Set(uint(id))
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return int(s.bits.Count())
}

// IDs returns the ids in ascending order.
func (s *Set) IDs() []node.InstanceID {
	if s == nil {
		return nil
	}
	out := make([]node.InstanceID, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, node.InstanceID(i))
	}
	return out
}

// Union adds every id of other to s.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	s.bits.InPlaceUnion(other.bits)
}

// forest is a flat parent lookup over a node tree. Parents are stored as
// indices so the upward walk is a slice lookup.
type forest struct {
	ids    []node.InstanceID
	parent []int32
	index  map[node.InstanceID]int32
}

func buildForest(root *node.Node) *forest {
	f := &forest{index: make(map[node.InstanceID]int32)}
	var visit func(n *node.Node, parent int32)
	visit = func(n *node.Node, parent int32) {
		idx := int32(len(f.ids))
		f.ids = append(f.ids, n.Instance())
		f.parent = append(f.parent, parent)
		f.index[n.Instance()] = idx
		for _, c := range n.Children() {
			visit(c, idx)
		}
	}
	if root != nil {
		visit(root, -1)
	}
	return f
}

// Compute returns the dirty set for a frame: every mounted or changed
// instance plus all of its ancestors in the tree rooted at root.
//
// The parent lookup is built once. Each id walks upward until the root or
// an already-dirty ancestor, whose own ancestors are dirty by induction.
// Ids that do not appear in the tree are recorded without ancestors.
func Compute(root *node.Node, mounted, changed []node.InstanceID) *Set {
	f := buildForest(root)
	s := &Set{bits: bitset.New(uint(len(f.ids)))}

	mark := func(id node.InstanceID) {
		if s.bits.Test(uint(id)) {
			return
		}
		s.bits.Set(uint(id))
		idx, ok := f.index[id]
		if !ok {
			return
		}
		for p := f.parent[idx]; p >= 0; p = f.parent[p] {
			pid := f.ids[p]
			if s.bits.Test(uint(pid)) {
				return
			}
			s.bits.Set(uint(pid))
		}
	}

	for _, id := range mounted {
		mark(id)
	}
	for _, id := range changed {
		mark(id)
	}
	return s
}

// Handles projects an instance-id set onto the handles of the nodes stored
// at those instances in the tree rooted at root.
func Handles(s *Set, root *node.Node) *bitset.BitSet {
	out := bitset.New(0)
	if s.Len() == 0 {
		return out
	}
	node.Walk(root, func(n, _ *node.Node) bool {
		if s.Has(n.Instance()) {
			out.Set(uint(n.Handle()))
		}
		return true
	})
	return out
}

// HandleList returns the projected handles as a slice, in ascending order.
func HandleList(s *Set, root *node.Node) []node.Handle {
	b := Handles(s, root)
	out := make([]node.Handle, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, node.Handle(i))
	}
	return out
}
