package layout

import (
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
)

// scroll lays the children out as a column over a content box at least as
// large as the viewport, then shifts them by the clamped scroll offsets.
func (p *pass) scroll(t *Tree, viewport geom.Rect) {
	props := t.Node.Props()
	content := p.stackContent(t.Node, viewport.Width, viewport.Height, geom.AxisColumn)
	cw := max(viewport.Width, content.Width)
	ch := max(viewport.Height, content.Height)

	p.flow(t, geom.Rect{X: viewport.X, Y: viewport.Y, Width: cw, Height: ch}, geom.AxisColumn)

	o := &Overflow{
		Viewport:   viewport,
		Content:    geom.Size{Width: cw, Height: ch},
		MaxScrollX: cw - viewport.Width,
		MaxScrollY: ch - viewport.Height,
	}
	o.ScrollX = min(props.ScrollX, o.MaxScrollX)
	o.ScrollY = min(props.ScrollY, o.MaxScrollY)
	if o.ScrollX != 0 || o.ScrollY != 0 {
		for _, c := range t.Children {
			if c != nil {
				c.translate(-o.ScrollX, -o.ScrollY)
			}
		}
	}
	t.Overflow = o
}

// layers stacks every in-flow child on the same interior. Children fill the
// interior unless they carry an explicit size.
func (p *pass) layers(t *Tree, interior geom.Rect) {
	for i, c := range t.Node.Children() {
		if !inFlow(c) {
			continue
		}
		cp := c.Props()
		w, h, hasW, hasH := explicitSize(cp, interior.Width, interior.Height)
		if !hasW {
			w = interior.Width
		}
		if !hasH {
			h = interior.Height
		}
		size := clampSize(cp, geom.Size{Width: w, Height: h}, interior.Width, interior.Height)
		r := geom.Rect{X: interior.X, Y: interior.Y, Width: size.Width, Height: size.Height}
		t.Children[i] = p.place(c, r.ClampInto(interior))
	}
}

// modal centres each in-flow child in the interior at its explicit or
// intrinsic size.
func (p *pass) modal(t *Tree, interior geom.Rect) {
	for i, c := range t.Node.Children() {
		if !inFlow(c) {
			continue
		}
		size := p.outerSize(c, interior.Width, interior.Height, geom.AxisColumn)
		size.Width = min(size.Width, interior.Width)
		size.Height = min(size.Height, interior.Height)
		r := geom.Rect{
			X:      interior.X + (interior.Width-size.Width)/2,
			Y:      interior.Y + (interior.Height-size.Height)/2,
			Width:  size.Width,
			Height: size.Height,
		}
		t.Children[i] = p.place(c, r)
	}
}

// absolute places the absolutely positioned children of t by their offsets
// inside rect, the parent's full rect, and clips them to it.
func (p *pass) absolute(t *Tree, rect geom.Rect) {
	for i, c := range t.Node.Children() {
		cp := c.Props()
		if cp.Hidden || cp.Position != node.PositionAbsolute {
			continue
		}
		w, h, hasW, hasH := explicitSize(cp, rect.Width, rect.Height)
		if !hasW && cp.Left != nil && cp.Right != nil {
			w, hasW = rect.Width-*cp.Left-*cp.Right, true
		}
		if !hasH && cp.Top != nil && cp.Bottom != nil {
			h, hasH = rect.Height-*cp.Top-*cp.Bottom, true
		}
		if !hasW || !hasH {
			in := p.measure(c, rect.Width, rect.Height, geom.AxisColumn)
			if !hasW {
				w = in.Width
			}
			if !hasH {
				h = in.Height
			}
		}
		size := clampSize(cp, geom.Size{Width: w, Height: h}, rect.Width, rect.Height)

		x, y := rect.X, rect.Y
		switch {
		case cp.Left != nil:
			x += *cp.Left
		case cp.Right != nil:
			x = rect.Right() - *cp.Right - size.Width
		}
		switch {
		case cp.Top != nil:
			y += *cp.Top
		case cp.Bottom != nil:
			y = rect.Bottom() - *cp.Bottom - size.Height
		}
		r := geom.Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
		t.Children[i] = p.place(c, r.ClampInto(rect))
	}
}
