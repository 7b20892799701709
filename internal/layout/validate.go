package layout

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-tuicore/internal/errors"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
)

// maxGridCells bounds the number of cells a grid can address, through its
// row count or through its placements.
const maxGridCells = 1 << 16

// validateTree checks every node before any layout work is done, so an
// invalid property at any depth fails the call without a partial tree.
func validateTree(root *node.Node) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidProps, "nil root node")
	}
	return validate(root, nil, root.Kind().String())
}

func validate(n, parent *node.Node, path string) error {
	if detail := checkProps(n, parent); detail != "" {
		return errors.New(errors.ErrCodeInvalidProps, "%s: %s", path, detail)
	}
	for i, c := range n.Children() {
		if c == nil {
			return errors.New(errors.ErrCodeInvalidProps, "%s: child %d is nil", path, i)
		}
		if err := validate(c, n, fmt.Sprintf("%s/%s[%d]", path, c.Kind(), i)); err != nil {
			return err
		}
	}
	return nil
}

// checkProps returns a description of the first problem with n's props, or
// the empty string.
func checkProps(n, parent *node.Node) string {
	p := n.Props()
	if !n.Kind().Valid() {
		return "unknown kind"
	}

	dims := []struct {
		name string
		v    geom.Value
	}{
		{"width", p.Width},
		{"height", p.Height},
		{"min width", p.MinWidth},
		{"min height", p.MinHeight},
		{"max width", p.MaxWidth},
		{"max height", p.MaxHeight},
	}
	for _, d := range dims {
		if !d.v.Valid() {
			return fmt.Sprintf("%s must be finite and within 0..%d, got %v", d.name, geom.MaxCells, d.v.Amount)
		}
	}
	if lo, hi, ok := fixedPair(p.MinWidth, p.MaxWidth); ok && lo > hi {
		return fmt.Sprintf("min width %d exceeds max width %d", lo, hi)
	}
	if lo, hi, ok := fixedPair(p.MinHeight, p.MaxHeight); ok && lo > hi {
		return fmt.Sprintf("min height %d exceeds max height %d", lo, hi)
	}

	if !finiteNonNegative(p.Flex) {
		return fmt.Sprintf("flex must be finite and non-negative, got %v", p.Flex)
	}
	if !finiteNonNegative(p.AspectRatio) {
		return fmt.Sprintf("aspect ratio must be finite and non-negative, got %v", p.AspectRatio)
	}
	if !cells(p.Gap) {
		return fmt.Sprintf("gap must be within 0..%d, got %d", geom.MaxCells, p.Gap)
	}
	if !p.Padding.Within(geom.MaxCells) {
		return fmt.Sprintf("padding must be within 0..%d, got %+v", geom.MaxCells, p.Padding)
	}
	if !cells(p.ScrollX) || !cells(p.ScrollY) {
		return fmt.Sprintf("scroll offsets must be within 0..%d, got (%d, %d)", geom.MaxCells, p.ScrollX, p.ScrollY)
	}
	if !cells(p.Size) {
		return fmt.Sprintf("size must be within 0..%d, got %d", geom.MaxCells, p.Size)
	}

	if n.Kind() == node.KindGrid {
		if p.Columns < 1 || p.Columns > maxGridCells {
			return fmt.Sprintf("grid columns must be within 1..%d, got %d", maxGridCells, p.Columns)
		}
		if p.Rows < 0 || p.Rows > maxGridCells/p.Columns {
			return fmt.Sprintf("grid rows must be within 0..%d, got %d", maxGridCells/p.Columns, p.Rows)
		}
	}
	if parent != nil && parent.Kind() == node.KindGrid && p.Place != nil {
		return checkPlacement(p.Place, parent.Props())
	}
	return ""
}

func checkPlacement(pl *node.GridPlacement, grid *node.Props) string {
	if pl.ColSpan < 1 || pl.RowSpan < 1 {
		return fmt.Sprintf("grid spans must be >= 1, got %dx%d", pl.ColSpan, pl.RowSpan)
	}
	// Compare spans with the room after the start; start+span can overflow.
	if pl.Column < 0 || pl.Column >= grid.Columns || pl.ColSpan > grid.Columns-pl.Column {
		return fmt.Sprintf("grid placement at column %d spanning %d outside %d columns",
			pl.Column, pl.ColSpan, grid.Columns)
	}
	rows := grid.Rows
	if rows == 0 {
		rows = maxGridCells / grid.Columns
	}
	if pl.Row < 0 || pl.Row >= rows || pl.RowSpan > rows-pl.Row {
		return fmt.Sprintf("grid placement at row %d spanning %d outside %d rows",
			pl.Row, pl.RowSpan, rows)
	}
	return ""
}

// fixedPair returns both bounds when min and max are fixed.
func fixedPair(lo, hi geom.Value) (int, int, bool) {
	if lo.Unit != geom.UnitFixed || hi.Unit != geom.UnitFixed {
		return 0, 0, false
	}
	return int(lo.Amount), int(hi.Amount), true
}

// cells reports whether v is a usable cell count.
func cells(v int) bool {
	return v >= 0 && v <= geom.MaxCells
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
