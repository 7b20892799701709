package layout

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
)

// Overflow describes the scrollable content of a scroll container.
type Overflow struct {
	Viewport   geom.Rect // interior the content is shown through
	Content    geom.Size // full size of the laid out content
	ScrollX    int       // applied offsets, clamped to the scroll range
	ScrollY    int
	MaxScrollX int
	MaxScrollY int
}

// Tree is a positioned node: its resolved rect, the node it came from and
// its positioned children in source order. Hidden children are omitted.
//
// Children lie within their parent's rect, except under a scroll
// container: its content keeps full-size rects shifted by the scroll
// offsets, so they may start above or left of the viewport and run past
// it. Consumers clip scroll content to Overflow.Viewport.
type Tree struct {
	Rect     geom.Rect
	Node     *node.Node
	Kind     node.Kind
	Children []*Tree
	Overflow *Overflow
}

// Walk visits t and its descendants depth-first. Returning false skips the
// subtree.
func (t *Tree) Walk(fn func(*Tree) bool) {
	if t == nil || !fn(t) {
		return
	}
	for _, c := range t.Children {
		c.Walk(fn)
	}
}

// Find returns the first positioned node whose ID is id, or nil.
func (t *Tree) Find(id string) *Tree {
	var found *Tree
	t.Walk(func(n *Tree) bool {
		if found != nil {
			return false
		}
		if n.Node.Props().ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of positioned nodes.
func (t *Tree) Count() int {
	total := 0
	t.Walk(func(*Tree) bool {
		total++
		return true
	})
	return total
}

// String renders the tree one node per line, indented by depth.
func (t *Tree) String() string {
	var b strings.Builder
	t.dump(&b, 0)
	return b.String()
}

func (t *Tree) dump(b *strings.Builder, depth int) {
	if t == nil {
		return
	}
	fmt.Fprintf(b, "%s%s (%d,%d %dx%d)", strings.Repeat("  ", depth), t.Kind,
		t.Rect.X, t.Rect.Y, t.Rect.Width, t.Rect.Height)
	if id := t.Node.Props().ID; id != "" {
		fmt.Fprintf(b, " #%s", id)
	}
	if o := t.Overflow; o != nil {
		fmt.Fprintf(b, " scroll=%d,%d/%d,%d content=%dx%d",
			o.ScrollX, o.ScrollY, o.MaxScrollX, o.MaxScrollY, o.Content.Width, o.Content.Height)
	}
	b.WriteByte('\n')
	for _, c := range t.Children {
		c.dump(b, depth+1)
	}
}

// translate shifts t and its whole subtree.
func (t *Tree) translate(dx, dy int) {
	t.Walk(func(n *Tree) bool {
		n.Rect = n.Rect.Translate(dx, dy)
		if n.Overflow != nil {
			n.Overflow.Viewport = n.Overflow.Viewport.Translate(dx, dy)
		}
		return true
	})
}
