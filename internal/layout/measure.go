package layout

import (
	"strings"

	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// Default intrinsic widths for controls whose content does not size them.
const (
	defaultBarWidth   = 10
	defaultInputWidth = 10
)

// intrinsic computes the natural size of n including its border and
// padding, without consulting the cache.
func (p *pass) intrinsic(n *node.Node, maxW, maxH int, axis geom.Axis) geom.Size {
	props := n.Props()
	if props.Measure != nil {
		return props.Measure(maxW, maxH, axis)
	}
	chrome := props.Chrome()
	innerW := max(0, maxW-chrome.Horizontal())
	innerH := max(0, maxH-chrome.Vertical())

	var content geom.Size
	if n.Kind().IsContainer() || len(n.Children()) > 0 {
		content = p.containerContent(n, innerW, innerH)
	} else {
		content = p.leafContent(n, innerW, innerH, axis)
	}

	size := geom.Size{
		Width:  content.Width + chrome.Horizontal(),
		Height: content.Height + chrome.Vertical(),
	}
	if props.Title != "" && props.EffectiveBorderSides().Has(node.SideTop) {
		size.Width = max(size.Width, p.width(props.Title)+2)
	}
	return size
}

// outerSize is the size a child asks its parent for: explicit dimensions
// where set, intrinsic otherwise, then min/max.
func (p *pass) outerSize(c *node.Node, availW, availH int, axis geom.Axis) geom.Size {
	cp := c.Props()
	w, h, hasW, hasH := explicitSize(cp, availW, availH)
	if !hasW || !hasH {
		in := p.measure(c, availW, availH, axis)
		if !hasW {
			w = in.Width
		}
		if !hasH {
			h = in.Height
		}
	}
	return clampSize(cp, geom.Size{Width: w, Height: h}, availW, availH)
}

func (p *pass) containerContent(n *node.Node, availW, availH int) geom.Size {
	props := n.Props()
	switch n.Kind() {
	case node.KindGrid:
		return p.gridContent(n, availW, availH)
	case node.KindLayers, node.KindModal:
		var s geom.Size
		for _, c := range n.Children() {
			if inFlow(c) {
				cs := p.outerSize(c, availW, availH, geom.AxisColumn)
				s.Width = max(s.Width, cs.Width)
				s.Height = max(s.Height, cs.Height)
			}
		}
		return s
	case node.KindField:
		s := p.stackContent(n, availW, availH, geom.AxisColumn)
		if props.Label != "" {
			s.Width = max(s.Width, p.width(props.Label))
			s.Height++
		}
		return s
	default:
		return p.stackContent(n, availW, availH, containerAxis(n.Kind()))
	}
}

// stackContent sums in-flow children along axis, with gaps, and takes the
// largest across it.
func (p *pass) stackContent(n *node.Node, availW, availH int, axis geom.Axis) geom.Size {
	main, cross, count := 0, 0, 0
	for _, c := range n.Children() {
		if !inFlow(c) {
			continue
		}
		cs := p.outerSize(c, availW, availH, axis)
		main += axis.Main(cs)
		cross = max(cross, axis.CrossOf(cs))
		count++
	}
	if count > 1 {
		main += n.Props().Gap * (count - 1)
	}
	return axis.Compose(main, cross)
}

func (p *pass) gridContent(n *node.Node, availW, availH int) geom.Size {
	props := n.Props()
	cells, rows := gridPlacements(n)
	cols := props.Columns
	cellW := max(0, availW-props.Gap*(cols-1)) / cols

	colW := 0
	rowH := make([]int, rows)
	for _, c := range cells {
		cs := p.outerSize(c.node, cellW*c.colSpan, availH, geom.AxisColumn)
		if c.colSpan == 1 {
			colW = max(colW, cs.Width)
		}
		if c.rowSpan == 1 {
			rowH[c.row] = max(rowH[c.row], cs.Height)
		}
	}
	h := 0
	for _, v := range rowH {
		h += v
	}
	if rows > 1 {
		h += props.Gap * (rows - 1)
	}
	return geom.Size{Width: colW*cols + props.Gap*(cols-1), Height: h}
}

// leafContent measures the content of a childless node by kind.
func (p *pass) leafContent(n *node.Node, availW, availH int, axis geom.Axis) geom.Size {
	props := n.Props()
	line := func(w int) geom.Size { return geom.Size{Width: w, Height: 1} }

	switch n.Kind() {
	case node.KindText:
		if props.Wrap && availW > 0 {
			lines := textwidth.Wrap(p.width, props.Text, availW)
			w := 0
			for _, l := range lines {
				w = max(w, p.width(l))
			}
			return geom.Size{Width: w, Height: len(lines)}
		}
		w, h := textwidth.Block(p.width, props.Text)
		return geom.Size{Width: w, Height: h}

	case node.KindSpacer:
		return axis.Compose(props.Size, 0)

	case node.KindButton:
		return line(p.width(props.Label) + 4)

	case node.KindLink:
		return line(p.width(firstNonEmpty(props.Text, props.Label)))

	case node.KindInput:
		w := max(p.width(props.Text), p.width(props.Placeholder), defaultInputWidth)
		return line(w + 1)

	case node.KindTextarea:
		w, h := textwidth.Block(p.width, firstNonEmpty(props.Text, props.Placeholder))
		return geom.Size{Width: max(w, defaultInputWidth) + 1, Height: max(h, 1)}

	case node.KindCheckbox:
		return line(p.labelled(3, props.Label))

	case node.KindRadio:
		if len(props.Items) == 0 {
			return line(p.labelled(3, props.Label))
		}
		return geom.Size{Width: p.widest(props.Items) + 4, Height: len(props.Items)}

	case node.KindSelect:
		current := props.Placeholder
		if props.Active >= 0 && props.Active < len(props.Items) {
			current = props.Items[props.Active]
		}
		return line(max(p.widest(props.Items), p.width(current)) + 2)

	case node.KindSlider, node.KindProgress, node.KindGauge:
		w := props.Size
		if w <= 0 {
			w = defaultBarWidth
		}
		return line(p.labelled(w, props.Label))

	case node.KindSpinner:
		return line(p.labelled(1, props.Label))

	case node.KindDivider:
		if props.Label != "" {
			return line(p.width(props.Label) + 2)
		}
		return geom.Size{Width: 1, Height: 1}

	case node.KindBadge, node.KindKbd:
		return line(p.width(props.Label) + 2)

	case node.KindIcon:
		return line(max(p.width(props.Text), 1))

	case node.KindStatus:
		return line(p.labelled(1, props.Label))

	case node.KindSparkline:
		return line(len(props.Values))

	case node.KindRichText:
		w := 0
		for _, s := range props.Spans {
			w += p.width(s.Text)
		}
		return line(w)

	case node.KindTable:
		return p.tableContent(props.Cells)

	case node.KindList, node.KindTree:
		return geom.Size{Width: p.widest(props.Items) + 2, Height: len(props.Items)}

	case node.KindCanvas, node.KindImage:
		return geom.Size{Width: props.Size, Height: props.Size}
	}
	return geom.Size{}
}

// tableContent sizes a table: columns as wide as their widest cell,
// separated by " │ ", with a rule under the header row.
func (p *pass) tableContent(cells [][]string) geom.Size {
	if len(cells) == 0 {
		return geom.Size{}
	}
	var colW []int
	for _, row := range cells {
		for i, cell := range row {
			if i >= len(colW) {
				colW = append(colW, 0)
			}
			colW[i] = max(colW[i], p.width(cell))
		}
	}
	w := 0
	for _, v := range colW {
		w += v
	}
	if len(colW) > 1 {
		w += 3 * (len(colW) - 1)
	}
	h := len(cells)
	if h > 1 {
		h++
	}
	return geom.Size{Width: w, Height: h}
}

// labelled adds a label and its separating space to a control width.
func (p *pass) labelled(w int, label string) int {
	if label == "" {
		return w
	}
	return w + 1 + p.width(label)
}

func (p *pass) widest(items []string) int {
	w := 0
	for _, it := range items {
		w = max(w, p.width(strings.TrimRight(it, "\n")))
	}
	return w
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
