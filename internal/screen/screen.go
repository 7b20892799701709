// Package screen replays decoded drawlists onto a double-buffered cell grid.
//
// It is the reference consumer of the drawlist format: commands are
// executed in order against the back buffer, text is clipped to the
// intersection of the pushed clip rects, and Diff reports the cells that
// changed since the last Swap.
package screen

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// Change is one cell that differs between the front and back buffers.
type Change struct {
	X, Y int
	Cell Cell
}

// Screen is a width x height grid of cells with a front buffer (what was
// last presented) and a back buffer (what the last frame drew).
type Screen struct {
	front  []Cell
	back   []Cell
	width  int
	height int

	measure textwidth.Func
	clips   []geom.Rect
	cursor  *drawlist.Cursor
}

// New creates a blank screen. A nil fn measures clusters by grapheme width.
func New(width, height int, fn textwidth.Func) *Screen {
	if fn == nil {
		fn = textwidth.Default
	}
	s := &Screen{measure: fn}
	s.Resize(width, height)
	return s
}

// Size returns the screen dimensions.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

func (s *Screen) bounds() geom.Rect {
	return geom.NewRect(0, 0, s.width, s.height)
}

func (s *Screen) idx(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// Cell returns the back-buffer cell at (x, y), or the zero Cell when out of
// bounds.
func (s *Screen) Cell(x, y int) Cell {
	i := s.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return s.back[i]
}

// Cursor returns the cursor set by the last applied frame.
func (s *Screen) Cursor() (drawlist.Cursor, bool) {
	if s.cursor == nil {
		return drawlist.Cursor{}, false
	}
	return *s.cursor, true
}

// Apply executes the commands of f against the back buffer. The clip stack
// and cursor start empty for every frame.
func (s *Screen) Apply(f *drawlist.Frame) error {
	s.clips = s.clips[:0]
	s.cursor = nil
	for _, c := range f.Commands {
		switch c.Op {
		case drawlist.OpClear:
			s.fill(s.bounds(), drawlist.WireStyle{})
		case drawlist.OpFillRect:
			s.fill(c.Rect.Intersect(s.clip()), c.Style)
		case drawlist.OpDrawText:
			s.drawText(c.X, c.Y, c.Text, c.Style)
		case drawlist.OpPushClip:
			s.clips = append(s.clips, c.Rect.Intersect(s.clip()))
		case drawlist.OpPopClip:
			if n := len(s.clips); n > 0 {
				s.clips = s.clips[:n-1]
			}
		case drawlist.OpDrawTextRun:
			segs, err := f.TextRun(c.Blob)
			if err != nil {
				return err
			}
			x := c.X
			for _, seg := range segs {
				x += s.drawText(x, c.Y, seg.Text, seg.Style)
			}
		case drawlist.OpSetCursor:
			cur := c.Cursor
			s.cursor = &cur
		}
	}
	return nil
}

// clip returns the active clip rect, which is the screen when none is
// pushed.
func (s *Screen) clip() geom.Rect {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1].Intersect(s.bounds())
	}
	return s.bounds()
}

func (s *Screen) fill(r geom.Rect, st drawlist.WireStyle) {
	r = r.Intersect(s.bounds())
	if r.IsEmpty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.clearWide(x, y)
			s.back[s.idx(x, y)] = blankCell(st)
		}
	}
}

// drawText writes text at (x, y) one grapheme cluster at a time and returns
// the width it advanced. Clusters not entirely inside the clip are skipped.
func (s *Screen) drawText(x, y int, text string, st drawlist.WireStyle) int {
	clip := s.clip()
	start := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := s.measure(cluster)
		if w <= 0 {
			continue
		}
		if y >= clip.Y && y < clip.Bottom() && x >= clip.X && x+w <= clip.Right() {
			s.put(x, y, cluster, w, st)
		}
		x += w
	}
	return x - start
}

// put stores a cluster of width w at (x, y), clearing any wide cluster it
// overlaps. Tabs expand to blank cells.
func (s *Screen) put(x, y int, cluster string, w int, st drawlist.WireStyle) {
	for i := 0; i < w; i++ {
		s.clearWide(x+i, y)
	}
	if cluster == "\t" {
		for i := 0; i < w; i++ {
			s.back[s.idx(x+i, y)] = blankCell(st)
		}
		return
	}
	s.back[s.idx(x, y)] = Cell{Text: cluster, Style: st, Width: uint8(w)}
	for i := 1; i < w; i++ {
		s.back[s.idx(x+i, y)] = continuation(st)
	}
}

// clearWide blanks the whole wide cluster covering (x, y), if any.
func (s *Screen) clearWide(x, y int) {
	i := s.idx(x, y)
	if i < 0 {
		return
	}
	c := s.back[i]
	if !c.IsContinuation() && c.Width <= 1 {
		return
	}
	origin := x
	for origin > 0 && s.back[s.idx(origin, y)].IsContinuation() {
		origin--
	}
	w := max(1, int(s.back[s.idx(origin, y)].Width))
	for cx := origin; cx < origin+w && cx < s.width; cx++ {
		s.back[s.idx(cx, y)] = blankCell(drawlist.WireStyle{})
	}
}

// Diff returns the cells that differ between the front and back buffers in
// row-major order.
func (s *Screen) Diff() []Change {
	var changes []Change
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := y*s.width + x
			if s.back[i] != s.front[i] {
				changes = append(changes, Change{X: x, Y: y, Cell: s.back[i]})
			}
		}
	}
	return changes
}

// Swap makes the back buffer the presented state.
func (s *Screen) Swap() {
	copy(s.front, s.back)
}

// Resize changes the dimensions, keeping the overlapping region of both
// buffers.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if s.front != nil && width == s.width && height == s.height {
		return
	}
	front := make([]Cell, width*height)
	back := make([]Cell, width*height)
	for i := range front {
		front[i] = blankCell(drawlist.WireStyle{})
		back[i] = front[i]
	}
	for y := 0; y < min(height, s.height); y++ {
		for x := 0; x < min(width, s.width); x++ {
			front[y*width+x] = s.front[y*s.width+x]
			back[y*width+x] = s.back[y*s.width+x]
		}
	}
	s.front, s.back = front, back
	s.width, s.height = width, height
}

// String renders the back buffer as text, one line per row with trailing
// spaces removed.
func (s *Screen) String() string {
	lines := make([]string, s.height)
	var line strings.Builder
	for y := 0; y < s.height; y++ {
		line.Reset()
		for x := 0; x < s.width; x++ {
			if c := s.back[y*s.width+x]; !c.IsContinuation() {
				line.WriteString(c.Text)
			}
		}
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(lines, "\n")
}
