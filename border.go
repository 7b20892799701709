package tuicore

import (
	"strings"

	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// BorderCharsFor returns the box-drawing characters for a border kind.
func BorderCharsFor(k BorderKind) BorderChars {
	switch k {
	case node.BorderSingle:
		return BorderChars{
			TopLeft:     '┌',
			Top:         '─',
			TopRight:    '┐',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '└',
			Bottom:      '─',
			BottomRight: '┘',
		}
	case node.BorderDouble:
		return BorderChars{
			TopLeft:     '╔',
			Top:         '═',
			TopRight:    '╗',
			Left:        '║',
			Right:       '║',
			BottomLeft:  '╚',
			Bottom:      '═',
			BottomRight: '╝',
		}
	case node.BorderRounded:
		return BorderChars{
			TopLeft:     '╭',
			Top:         '─',
			TopRight:    '╮',
			Left:        '│',
			Right:       '│',
			BottomLeft:  '╰',
			Bottom:      '─',
			BottomRight: '╯',
		}
	case node.BorderHeavy:
		return BorderChars{
			TopLeft:     '┏',
			Top:         '━',
			TopRight:    '┓',
			Left:        '┃',
			Right:       '┃',
			BottomLeft:  '┗',
			Bottom:      '━',
			BottomRight: '┛',
		}
	default:
		return BorderChars{
			TopLeft:     ' ',
			Top:         ' ',
			TopRight:    ' ',
			Left:        ' ',
			Right:       ' ',
			BottomLeft:  ' ',
			Bottom:      ' ',
			BottomRight: ' ',
		}
	}
}

// edgeLine builds one horizontal border row of width cells. Corners are used
// only where the adjoining vertical side is drawn.
func edgeLine(width int, left, fill, right rune, hasLeft, hasRight bool) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for x := 0; x < width; x++ {
		switch {
		case x == 0 && hasLeft:
			b.WriteRune(left)
		case x == width-1 && hasRight:
			b.WriteRune(right)
		default:
			b.WriteRune(fill)
		}
	}
	return b.String()
}

// drawBorder emits the enabled sides of the border around rect. A title is
// set into the top edge after the first corner.
func (r *Renderer) drawBorder(b *drawlist.Builder, rect geom.Rect, props *node.Props) {
	sides := props.EffectiveBorderSides()
	if sides == 0 || rect.IsEmpty() {
		return
	}
	chars := BorderCharsFor(props.Border)
	st := props.BorderStyle
	hasLeft, hasRight := sides.Has(node.SideLeft), sides.Has(node.SideRight)

	top, bottom := rect.Y, rect.Bottom()-1
	if sides.Has(node.SideTop) {
		line := edgeLine(rect.Width, chars.TopLeft, chars.Top, chars.TopRight, hasLeft, hasRight)
		b.DrawText(rect.X, top, line, st)
		if props.Title != "" && rect.Width > 2 {
			title := textwidth.Truncate(r.width(), props.Title, rect.Width-2)
			b.DrawText(rect.X+1, top, title, st)
		}
		top++
	}
	if sides.Has(node.SideBottom) && bottom >= top {
		line := edgeLine(rect.Width, chars.BottomLeft, chars.Bottom, chars.BottomRight, hasLeft, hasRight)
		b.DrawText(rect.X, bottom, line, st)
		bottom--
	}

	left, right := string(chars.Left), string(chars.Right)
	for y := top; y <= bottom; y++ {
		if hasLeft {
			b.DrawText(rect.X, y, left, st)
		}
		if hasRight && (rect.Width > 1 || !hasLeft) {
			b.DrawText(rect.Right()-1, y, right, st)
		}
	}
}
