package node

import (
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/style"
)

// Align specifies how children are positioned on the cross axis.
// AlignAuto means "container default" on a container and "inherit" on AlignSelf.
type Align uint8

const (
	AlignAuto Align = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignStretch
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Position selects flow or absolute placement.
type Position uint8

const (
	PositionStatic Position = iota
	PositionAbsolute
)

// BorderKind selects the border line set.
type BorderKind uint8

const (
	BorderNone BorderKind = iota
	BorderSingle
	BorderRounded
	BorderDouble
	BorderHeavy
)

// Sides is a bitmask of box edges.
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SidesAll = SideTop | SideRight | SideBottom | SideLeft
)

// Has reports whether s includes side.
func (s Sides) Has(side Sides) bool {
	return s&side != 0
}

// GridPlacement pins a grid child to an explicit cell. Column and Row are
// zero-based; spans must be at least 1.
type GridPlacement struct {
	Column, Row      int
	ColSpan, RowSpan int
}

// Span is one independently styled piece of rich text.
type Span struct {
	Text  string
	Style style.Style
}

// MeasureFunc is a caller-supplied intrinsic size accessor for leaf content.
// It may be expensive; the measurement cache guarantees at most one call per
// distinct (node, maxW, maxH, axis) key while warm.
type MeasureFunc func(maxW, maxH int, axis geom.Axis) geom.Size

// Props is the kind-dependent property set of a node. Fields that a kind
// does not use are ignored by layout.
type Props struct {
	// ID makes the node a hit-test target.
	ID     string
	Hidden bool

	// Sizing
	Width       geom.Value
	Height      geom.Value
	MinWidth    geom.Value
	MinHeight   geom.Value
	MaxWidth    geom.Value
	MaxHeight   geom.Value
	AspectRatio float64 // width / height; 0 = unset

	// Flow
	Flex      float64
	Gap       int
	Padding   geom.Edges
	Align     Align // cross-axis alignment of children (default stretch)
	AlignSelf Align // overrides the parent's Align for this node
	Justify   Justify

	// Border
	Border      BorderKind
	BorderSides Sides // zero with a border set means all sides
	BorderStyle style.Style
	Title       string

	// Absolute positioning, offsets relative to the parent rect
	Position                 Position
	Left, Top, Right, Bottom *int

	// Grid container and grid child
	Columns int
	Rows    int
	Place   *GridPlacement

	// Scroll offsets for scroll containers; Clip forces a clip push when rendering
	ScrollX, ScrollY int
	Clip             bool

	// Content
	Text        string
	Wrap        bool
	Label       string
	Placeholder string
	Items       []string
	Spans       []Span
	Values      []float64
	Cells       [][]string // table cells, first row is the header
	Active      int
	Checked     bool
	Value       float64
	Size        int // spacer length, image/canvas cell size hint

	// Visual style for content and background
	Style      style.Style
	Background *style.Color

	Measure MeasureFunc
}

// Int returns a pointer to n, for absolute offsets.
func Int(n int) *int {
	return &n
}

// EffectiveBorderSides returns the bordered edges, defaulting to all sides
// when a border kind is set without explicit sides.
func (p *Props) EffectiveBorderSides() Sides {
	if p.Border == BorderNone {
		return 0
	}
	if p.BorderSides == 0 {
		return SidesAll
	}
	return p.BorderSides
}

// BorderEdges returns the one-cell insets contributed by the border.
func (p *Props) BorderEdges() geom.Edges {
	s := p.EffectiveBorderSides()
	var e geom.Edges
	if s.Has(SideTop) {
		e.Top = 1
	}
	if s.Has(SideRight) {
		e.Right = 1
	}
	if s.Has(SideBottom) {
		e.Bottom = 1
	}
	if s.Has(SideLeft) {
		e.Left = 1
	}
	return e
}

// Chrome returns border plus padding insets.
func (p *Props) Chrome() geom.Edges {
	return p.BorderEdges().Add(p.Padding)
}
