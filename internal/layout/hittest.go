package layout

import "github.com/grindlemire/go-tuicore/internal/geom"

// HitTest returns the ID of the topmost node at (x, y). Only nodes with a
// non-empty ID are targets; a descendant wins over its ancestors and a later
// sibling over an earlier one. A node is reachable only inside the
// intersection of its ancestors' rects.
func HitTest(t *Tree, x, y int) (string, bool) {
	if t == nil {
		return "", false
	}
	return hit(t, t.Rect, x, y)
}

func hit(t *Tree, clip geom.Rect, x, y int) (string, bool) {
	clip = clip.Intersect(t.Rect)
	if clip.IsEmpty() || !clip.Contains(x, y) {
		return "", false
	}
	for i := len(t.Children) - 1; i >= 0; i-- {
		if id, ok := hit(t.Children[i], clip, x, y); ok {
			return id, true
		}
	}
	if id := t.Node.Props().ID; id != "" {
		return id, true
	}
	return "", false
}

// HitPath returns the positioned nodes under (x, y) from the root down to
// the deepest one, following the same clipping and z-order as HitTest.
func HitPath(t *Tree, x, y int) []*Tree {
	var path []*Tree
	clip := geom.Rect{}
	if t != nil {
		clip = t.Rect
	}
	for t != nil {
		clip = clip.Intersect(t.Rect)
		if clip.IsEmpty() || !clip.Contains(x, y) {
			break
		}
		path = append(path, t)
		var next *Tree
		for i := len(t.Children) - 1; i >= 0; i-- {
			c := t.Children[i]
			if cc := clip.Intersect(c.Rect); !cc.IsEmpty() && cc.Contains(x, y) {
				next = c
				break
			}
		}
		t = next
	}
	return path
}
