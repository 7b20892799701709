// layout.go re-exports the core types from the internal packages.
// Any changes to internal types must be mirrored here.
package tuicore

import (
	"github.com/grindlemire/go-tuicore/internal/dirty"
	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/layout"
	"github.com/grindlemire/go-tuicore/internal/measure"
	"github.com/grindlemire/go-tuicore/internal/node"
	"github.com/grindlemire/go-tuicore/internal/style"
)

// Axis is the direction children flow in.
type Axis = geom.Axis

const (
	AxisColumn = geom.AxisColumn
	AxisRow    = geom.AxisRow
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = geom.Value

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Size represents a width/height pair.
type Size = geom.Size

// Node is an immutable widget node.
type Node = node.Node

// Props is the property set of a node.
type Props = node.Props

// Kind identifies the widget type of a node.
type Kind = node.Kind

// Arena allocates nodes and assigns their handles.
type Arena = node.Arena

// InstanceID is the stable identity of a widget instance across frames.
type InstanceID = node.InstanceID

// Justify specifies how children are distributed along the main axis.
type Justify = node.Justify

const (
	JustifyStart        = node.JustifyStart
	JustifyEnd          = node.JustifyEnd
	JustifyCenter       = node.JustifyCenter
	JustifySpaceBetween = node.JustifySpaceBetween
	JustifySpaceAround  = node.JustifySpaceAround
	JustifySpaceEvenly  = node.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = node.Align

const (
	AlignAuto    = node.AlignAuto
	AlignStart   = node.AlignStart
	AlignCenter  = node.AlignCenter
	AlignEnd     = node.AlignEnd
	AlignStretch = node.AlignStretch
)

// BorderKind selects the border line set.
type BorderKind = node.BorderKind

const (
	BorderNone    = node.BorderNone
	BorderSingle  = node.BorderSingle
	BorderRounded = node.BorderRounded
	BorderDouble  = node.BorderDouble
	BorderHeavy   = node.BorderHeavy
)

// Style combines text attributes with foreground and background colors.
type Style = style.Style

// Color is a terminal color.
type Color = style.Color

// Tree is a positioned node produced by Layout.
type Tree = layout.Tree

// Cache memoizes intrinsic sizes across frames.
type Cache = measure.Cache

// DirtySet is a set of instance ids closed under ancestry.
type DirtySet = dirty.Set

// Builder accumulates drawlist commands for one frame.
type Builder = drawlist.Builder

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return geom.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value {
	return geom.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return geom.Auto()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return geom.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}

// NewArena creates a node arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return node.NewArena(capacity)
}

// NewCache creates an empty measurement cache.
func NewCache() *Cache {
	return measure.New()
}

// Layout positions the tree rooted at n within a maxW x maxH box at (x, y).
func Layout(n *Node, x, y, maxW, maxH int, axis Axis, cache *Cache) (*Tree, error) {
	return layout.Layout(n, x, y, maxW, maxH, axis, cache)
}

// Measure returns the intrinsic size of n.
func Measure(n *Node, maxW, maxH int, axis Axis, cache *Cache) (Size, error) {
	return layout.Measure(n, maxW, maxH, axis, cache)
}

// HitTest returns the id of the topmost identified node containing (x, y).
func HitTest(t *Tree, x, y int) (string, bool) {
	return layout.HitTest(t, x, y)
}

// ComputeDirty returns the dirty set for a frame.
func ComputeDirty(root *Node, mounted, changed []InstanceID) *DirtySet {
	return dirty.Compute(root, mounted, changed)
}

// NewBuilder returns an idle drawlist builder for the latest version with
// default limits.
func NewBuilder() *Builder {
	b, _ := drawlist.NewBuilder(drawlist.Latest, drawlist.Limits{})
	return b
}
