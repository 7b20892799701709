package layout

import (
	"github.com/grindlemire/go-tuicore/internal/dirty"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/measure"
	"github.com/grindlemire/go-tuicore/internal/node"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// Solver lays out node trees. The zero value measures text by grapheme
// cluster.
type Solver struct {
	// Width measures the cell width of one line of text.
	Width textwidth.Func
}

var defaultSolver Solver

// Layout positions the tree rooted at n at (x, y) within a maxW x maxH box
// using the default Solver. axis is the flow direction of the context the
// root is placed in.
func Layout(n *node.Node, x, y, maxW, maxH int, axis geom.Axis, cache *measure.Cache) (*Tree, error) {
	return defaultSolver.Layout(n, x, y, maxW, maxH, axis, cache)
}

// Measure returns the intrinsic size of n using the default Solver.
func Measure(n *node.Node, maxW, maxH int, axis geom.Axis, cache *measure.Cache) (geom.Size, error) {
	return defaultSolver.Measure(n, maxW, maxH, axis, cache)
}

// Layout positions the tree rooted at n at (x, y) within a maxW x maxH box.
//
// Explicit root sizes resolve against the box. An auto-sized container
// fills the box and an auto-sized leaf takes its intrinsic size. The root
// rect never exceeds the box.
func (s *Solver) Layout(n *node.Node, x, y, maxW, maxH int, axis geom.Axis, cache *measure.Cache) (*Tree, error) {
	if err := validateTree(n); err != nil {
		return nil, err
	}
	maxW, maxH = max(0, maxW), max(0, maxH)
	p := s.newPass(cache)

	box := geom.Rect{X: x, Y: y, Width: maxW, Height: maxH}
	size := p.rootSize(n, maxW, maxH, axis)
	rect := geom.Rect{X: x, Y: y, Width: size.Width, Height: size.Height}.ClampInto(box)
	return p.place(n, rect), nil
}

// Measure returns the intrinsic size of n when offered maxW x maxH along
// axis. A supplied cache is consulted first and filled on a miss.
func (s *Solver) Measure(n *node.Node, maxW, maxH int, axis geom.Axis, cache *measure.Cache) (geom.Size, error) {
	if err := validateTree(n); err != nil {
		return geom.Size{}, err
	}
	return s.newPass(cache).measure(n, max(0, maxW), max(0, maxH), axis), nil
}

// pass carries the per-call state of one Layout or Measure call.
type pass struct {
	width textwidth.Func
	cache *measure.Cache
	dirty *dirty.Set
}

func (s *Solver) newPass(cache *measure.Cache) *pass {
	w := s.Width
	if w == nil {
		w = textwidth.Default
	}
	return &pass{width: w, cache: cache, dirty: dirty.Active()}
}

// measure returns the memoized intrinsic size of n. Nodes whose instance is
// in the active dirty set are recomputed and their entry overwritten.
func (p *pass) measure(n *node.Node, maxW, maxH int, axis geom.Axis) geom.Size {
	if p.cache == nil {
		return p.intrinsic(n, maxW, maxH, axis)
	}
	key := measure.Key{Handle: n.Handle(), MaxW: maxW, MaxH: maxH, Axis: axis}
	if !p.dirty.Has(n.Instance()) {
		if size, ok := p.cache.Get(key); ok {
			return size
		}
	}
	size := p.intrinsic(n, maxW, maxH, axis)
	p.cache.Put(key, size)
	return size
}

func (p *pass) rootSize(n *node.Node, maxW, maxH int, axis geom.Axis) geom.Size {
	props := n.Props()
	w, h, hasW, hasH := explicitSize(props, maxW, maxH)
	if !hasW || !hasH {
		var fallback geom.Size
		if n.Kind().IsContainer() {
			fallback = geom.Size{Width: maxW, Height: maxH}
		} else {
			fallback = p.measure(n, maxW, maxH, axis)
		}
		if !hasW {
			w = fallback.Width
		}
		if !hasH {
			h = fallback.Height
		}
	}
	return clampSize(props, geom.Size{Width: w, Height: h}, maxW, maxH)
}

// place builds the positioned tree for n occupying rect.
func (p *pass) place(n *node.Node, rect geom.Rect) *Tree {
	t := &Tree{Rect: rect, Node: n, Kind: n.Kind()}
	kids := n.Children()
	if len(kids) == 0 {
		return t
	}
	props := n.Props()
	interior := rect.Inset(props.Chrome())

	// Each resolver fills the slot of the children it positions so the
	// positioned children keep source order.
	t.Children = make([]*Tree, len(kids))
	switch n.Kind() {
	case node.KindGrid:
		p.grid(t, interior)
	case node.KindScroll:
		p.scroll(t, interior)
	case node.KindLayers:
		p.layers(t, interior)
	case node.KindModal:
		p.modal(t, interior)
	case node.KindField:
		if props.Label != "" {
			interior = interior.Inset(geom.Edges{Top: 1})
		}
		p.flow(t, interior, geom.AxisColumn)
	default:
		// Navigation composites resolve as a synthetic row or column over
		// the same children; the entry keeps the original kind.
		p.flow(t, interior, containerAxis(n.Kind()))
	}
	p.absolute(t, rect)

	out := t.Children[:0]
	for _, c := range t.Children {
		if c != nil {
			out = append(out, c)
		}
	}
	t.Children = out
	return t
}

// compositeAxis returns the synthetic flow axis for navigation composites.
func compositeAxis(k node.Kind) (geom.Axis, bool) {
	switch k {
	case node.KindTabs, node.KindAccordion:
		return geom.AxisColumn, true
	case node.KindBreadcrumb, node.KindPagination:
		return geom.AxisRow, true
	}
	return 0, false
}

// containerAxis returns the flow axis used when measuring n's children.
func containerAxis(k node.Kind) geom.Axis {
	if k == node.KindRow {
		return geom.AxisRow
	}
	if a, ok := compositeAxis(k); ok {
		return a
	}
	return geom.AxisColumn
}

// explicitSize resolves n's width and height against the offered space and
// derives a missing dimension from the aspect ratio. Min/max are not
// applied here.
func explicitSize(props *node.Props, availW, availH int) (w, h int, hasW, hasH bool) {
	hasW = !props.Width.IsAuto()
	hasH = !props.Height.IsAuto()
	if hasW {
		w = props.Width.Resolve(availW, 0)
	}
	if hasH {
		h = props.Height.Resolve(availH, 0)
	}
	if r := props.AspectRatio; r > 0 && hasW != hasH {
		if hasW {
			h, hasH = int(float64(w)/r), true
		} else {
			w, hasW = int(float64(h)*r), true
		}
	}
	return w, h, hasW, hasH
}

// clampSize applies min/max constraints, resolved against the offered space.
func clampSize(props *node.Props, s geom.Size, availW, availH int) geom.Size {
	return geom.Size{
		Width:  clampAxis(s.Width, props.MinWidth, props.MaxWidth, availW),
		Height: clampAxis(s.Height, props.MinHeight, props.MaxHeight, availH),
	}
}

func clampAxis(v int, minV, maxV geom.Value, avail int) int {
	lo := minV.Resolve(avail, 0)
	if !maxV.IsAuto() {
		v = min(v, maxV.Resolve(avail, v))
	}
	return max(v, lo, 0)
}
