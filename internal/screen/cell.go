package screen

import "github.com/grindlemire/go-tuicore/internal/drawlist"

// Cell is a single character cell. A cluster wider than one cell is stored
// in its first cell; the cells it covers are continuations.
type Cell struct {
	Text  string             // grapheme cluster ("" for continuation cells)
	Style drawlist.WireStyle // wire style the cell was drawn with
	Width uint8              // display width (0 for continuation cells)
}

func blankCell(st drawlist.WireStyle) Cell {
	return Cell{Text: " ", Style: st, Width: 1}
}

func continuation(st drawlist.WireStyle) Cell {
	return Cell{Style: st}
}

// IsContinuation reports whether c is covered by a wide cluster to its left.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsBlank reports whether c is a space with the default style.
func (c Cell) IsBlank() bool {
	return c.Text == " " && c.Style == (drawlist.WireStyle{})
}
