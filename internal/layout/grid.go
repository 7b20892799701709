package layout

import (
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
)

// gridCell is one child's resolved grid placement.
type gridCell struct {
	idx      int
	node     *node.Node
	col, row int
	colSpan  int
	rowSpan  int
}

// gridPlacements resolves the cells of n's in-flow children. Explicit
// placements are occupied first; the rest auto-flow row-major into the
// next free cell in source order. It returns the cells and the row count.
func gridPlacements(n *node.Node) ([]gridCell, int) {
	props := n.Props()
	cols := props.Columns
	occupied := make(map[int]bool)
	cells := make([]gridCell, 0, len(n.Children()))
	var auto []int
	rows := props.Rows

	for i, c := range n.Children() {
		if !inFlow(c) {
			continue
		}
		pl := c.Props().Place
		if pl == nil {
			auto = append(auto, i)
			continue
		}
		for r := pl.Row; r < pl.Row+pl.RowSpan; r++ {
			for col := pl.Column; col < pl.Column+pl.ColSpan; col++ {
				occupied[r*cols+col] = true
			}
		}
		rows = max(rows, pl.Row+pl.RowSpan)
		cells = append(cells, gridCell{
			idx: i, node: c,
			col: pl.Column, row: pl.Row,
			colSpan: pl.ColSpan, rowSpan: pl.RowSpan,
		})
	}

	cursor := 0
	for _, i := range auto {
		for occupied[cursor] {
			cursor++
		}
		occupied[cursor] = true
		cells = append(cells, gridCell{
			idx: i, node: n.Children()[i],
			col: cursor % cols, row: cursor / cols,
			colSpan: 1, rowSpan: 1,
		})
		rows = max(rows, cursor/cols+1)
		cursor++
	}
	return cells, rows
}

// grid places the children of a grid container. Columns split the interior
// evenly; rows split evenly when a row count is set, otherwise each row is
// as tall as its tallest single-row item.
func (p *pass) grid(t *Tree, interior geom.Rect) {
	props := t.Node.Props()
	cells, rows := gridPlacements(t.Node)
	if len(cells) == 0 {
		return
	}
	gap := props.Gap
	colW := splitEven(interior.Width-gap*(props.Columns-1), props.Columns)

	var rowH []int
	if props.Rows > 0 {
		rowH = splitEven(interior.Height-gap*(rows-1), rows)
	} else {
		rowH = make([]int, rows)
		for _, c := range cells {
			if c.rowSpan != 1 {
				continue
			}
			w := spanLength(colW, gap, c.col, c.colSpan)
			h := p.outerSize(c.node, w, interior.Height, geom.AxisColumn).Height
			rowH[c.row] = max(rowH[c.row], h)
		}
	}

	for _, c := range cells {
		cell := geom.Rect{
			X:      interior.X + trackOffset(colW, gap, c.col),
			Y:      interior.Y + trackOffset(rowH, gap, c.row),
			Width:  spanLength(colW, gap, c.col, c.colSpan),
			Height: spanLength(rowH, gap, c.row, c.rowSpan),
		}
		cp := c.node.Props()
		w, h, hasW, hasH := explicitSize(cp, cell.Width, cell.Height)
		if !hasW {
			w = cell.Width
		}
		if !hasH {
			h = cell.Height
		}
		size := clampSize(cp, geom.Size{Width: w, Height: h}, cell.Width, cell.Height)
		r := geom.Rect{X: cell.X, Y: cell.Y, Width: size.Width, Height: size.Height}
		t.Children[c.idx] = p.place(c.node, r.ClampInto(cell).ClampInto(interior))
	}
}

// splitEven divides total into n parts, giving the remainder to the leading
// parts. A negative total yields zeros.
func splitEven(total, n int) []int {
	out := make([]int, n)
	if n == 0 || total <= 0 {
		return out
	}
	base, rem := total/n, total%n
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// spanLength returns the extent of span tracks starting at from, including
// the gaps between them.
func spanLength(tracks []int, gap, from, span int) int {
	total := 0
	for i := from; i < from+span && i < len(tracks); i++ {
		total += tracks[i]
	}
	if span > 1 {
		total += gap * (span - 1)
	}
	return total
}

// trackOffset returns the start of track i relative to the first track.
func trackOffset(tracks []int, gap, i int) int {
	off := gap * i
	for _, v := range tracks[:min(i, len(tracks))] {
		off += v
	}
	return off
}
