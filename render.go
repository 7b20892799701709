package tuicore

import (
	"math"
	"strings"

	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/layout"
	"github.com/grindlemire/go-tuicore/internal/node"
	"github.com/grindlemire/go-tuicore/internal/style"
	"github.com/grindlemire/go-tuicore/internal/textwidth"
)

// Renderer turns positioned trees into drawlist commands. The zero value
// measures text by grapheme cluster.
type Renderer struct {
	// Width measures the cell width of one line of text.
	Width textwidth.Func
}

var defaultRenderer Renderer

// Render emits the commands for t into b using the default Renderer.
func Render(b *drawlist.Builder, t *layout.Tree) {
	defaultRenderer.Render(b, t)
}

func (r *Renderer) width() textwidth.Func {
	if r.Width != nil {
		return r.Width
	}
	return textwidth.Default
}

// inheritedStyle carries cascading visual properties down the tree. Text
// style and background cascade from parent to child; each is only used
// when the child does not set its own.
type inheritedStyle struct {
	text style.Style
	bg   *style.Color // nil = no inherited background
}

// effectiveStyles resolves the text style and background for a node. Text
// drawn over a background carries that background so it does not punch
// holes into the fill.
func effectiveStyles(props *node.Props, inherited inheritedStyle) (style.Style, *style.Color) {
	ts := inherited.text
	if props.Style != (style.Style{}) {
		ts = props.Style
	}
	bg := inherited.bg
	if props.Background != nil {
		bg = props.Background
	}
	if bg != nil && ts.Bg.IsDefault() {
		ts.Bg = *bg
	}
	return ts, bg
}

// Render emits the commands for t into b. Nodes with empty rects emit
// nothing. Scroll viewports and nodes with Clip set wrap their children in
// a clip push.
func (r *Renderer) Render(b *drawlist.Builder, t *layout.Tree) {
	r.renderTree(b, t, inheritedStyle{})
}

func (r *Renderer) renderTree(b *drawlist.Builder, t *layout.Tree, inherited inheritedStyle) {
	if t == nil || t.Rect.IsEmpty() {
		return
	}
	props := t.Node.Props()
	ts, bg := effectiveStyles(props, inherited)

	// 1. Fill background
	if props.Background != nil {
		b.FillRect(t.Rect, style.NewStyle().Background(*props.Background))
	}

	// 2. Draw border (border style does not inherit)
	if props.Border != node.BorderNone {
		r.drawBorder(b, t.Rect, props)
	}

	// 3. Draw own content
	interior := t.Rect.Inset(props.Chrome())
	r.renderContent(b, t, interior, ts)

	// 4. Render children, clipped where the node asks for it
	clip, clipped := interior, props.Clip
	if t.Overflow != nil {
		clip, clipped = t.Overflow.Viewport, true
	}
	if clipped {
		b.PushClip(clip)
	}
	childInherited := inheritedStyle{text: ts, bg: bg}
	for _, c := range t.Children {
		r.renderTree(b, c, childInherited)
	}
	if clipped {
		b.PopClip()
	}

	if t.Overflow != nil {
		r.renderScrollbar(b, t.Overflow, ts)
	}
}

// renderScrollbar draws a vertical scrollbar over the last viewport column
// when the content is taller than the viewport.
func (r *Renderer) renderScrollbar(b *drawlist.Builder, o *layout.Overflow, st style.Style) {
	track := o.Viewport.Height
	if o.MaxScrollY <= 0 || track <= 0 || o.Viewport.Width <= 0 {
		return
	}
	thumb := max(1, track*o.Viewport.Height/o.Content.Height)
	thumbTop := o.ScrollY * (track - thumb) / o.MaxScrollY
	x := o.Viewport.Right() - 1
	for y := 0; y < track; y++ {
		ch := "│"
		if y >= thumbTop && y < thumbTop+thumb {
			ch = "█"
		}
		b.DrawText(x, o.Viewport.Y+y, ch, st)
	}
}

// text draws one line at (x, y), truncated to maxW cells.
func (r *Renderer) text(b *drawlist.Builder, x, y, maxW int, s string, st style.Style) {
	b.DrawText(x, y, textwidth.Truncate(r.width(), s, maxW), st)
}

// lines draws s one line per row from the top of area.
func (r *Renderer) lines(b *drawlist.Builder, area geom.Rect, lines []string, st style.Style) {
	for i, l := range lines {
		if i >= area.Height {
			return
		}
		r.text(b, area.X, area.Y+i, area.Width, l, st)
	}
}

// renderContent draws the kind-specific content of t inside area.
func (r *Renderer) renderContent(b *drawlist.Builder, t *layout.Tree, area geom.Rect, st style.Style) {
	if area.IsEmpty() {
		return
	}
	props := t.Node.Props()
	x, y, w := area.X, area.Y, area.Width

	switch t.Kind {
	case node.KindText:
		if props.Wrap {
			r.lines(b, area, textwidth.Wrap(r.width(), props.Text, w), st)
		} else {
			r.lines(b, area, strings.Split(props.Text, "\n"), st)
		}

	case node.KindButton:
		r.text(b, x, y, w, "[ "+props.Label+" ]", st)

	case node.KindLink:
		r.text(b, x, y, w, firstNonEmpty(props.Text, props.Label), st.With(style.AttrUnderline))

	case node.KindInput:
		if props.Text == "" && props.Placeholder != "" {
			r.text(b, x, y, w, props.Placeholder, st.Dim())
		} else {
			r.text(b, x, y, w, props.Text, st)
		}

	case node.KindTextarea:
		if props.Text == "" && props.Placeholder != "" {
			r.lines(b, area, strings.Split(props.Placeholder, "\n"), st.Dim())
		} else {
			r.lines(b, area, strings.Split(props.Text, "\n"), st)
		}

	case node.KindCheckbox:
		mark := "[ ]"
		if props.Checked {
			mark = "[x]"
		}
		r.text(b, x, y, w, labelled(mark, props.Label), st)

	case node.KindRadio:
		if len(props.Items) == 0 {
			mark := "( )"
			if props.Checked {
				mark = "(•)"
			}
			r.text(b, x, y, w, labelled(mark, props.Label), st)
			return
		}
		rows := make([]string, len(props.Items))
		for i, it := range props.Items {
			mark := "( ) "
			if i == props.Active {
				mark = "(•) "
			}
			rows[i] = mark + it
		}
		r.lines(b, area, rows, st)

	case node.KindSelect:
		current := props.Placeholder
		if props.Active >= 0 && props.Active < len(props.Items) {
			current = props.Items[props.Active]
		}
		r.text(b, x, y, w, current+" ▾", st)

	case node.KindSlider:
		r.renderSlider(b, area, props, st)

	case node.KindProgress, node.KindGauge:
		r.renderBar(b, area, props, st)

	case node.KindSpinner:
		n := len(spinnerFrames)
		r.text(b, x, y, w, labelled(spinnerFrames[(props.Active%n+n)%n], props.Label), st)

	case node.KindDivider:
		r.renderDivider(b, area, props, st)

	case node.KindBadge:
		r.text(b, x, y, w, " "+props.Label+" ", st.Inverse())

	case node.KindKbd:
		r.text(b, x, y, w, "["+props.Label+"]", st.Bold())

	case node.KindIcon:
		r.text(b, x, y, w, props.Text, st)

	case node.KindStatus:
		r.text(b, x, y, w, labelled("●", props.Label), st)

	case node.KindSparkline:
		r.text(b, x, y, w, sparkline(props.Values), st)

	case node.KindRichText:
		r.renderRichText(b, area, props, st)

	case node.KindTable:
		r.lines(b, area, r.tableRows(props.Cells), st)

	case node.KindList, node.KindTree:
		rows := make([]string, len(props.Items))
		for i, it := range props.Items {
			prefix := "  "
			if i == props.Active {
				prefix = "> "
			}
			rows[i] = prefix + it
		}
		r.lines(b, area, rows, st)

	case node.KindField:
		if props.Label != "" {
			r.text(b, x, y, w, props.Label, st.Bold())
		}
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func labelled(control, label string) string {
	if label == "" {
		return control
	}
	return control + " " + label
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// fraction clamps v into [0, 1]; NaN counts as 0.
func fraction(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return min(v, 1)
}

func barWidth(props *node.Props, area geom.Rect) int {
	if props.Size > 0 {
		return min(props.Size, area.Width)
	}
	return area.Width
}

// renderBar draws a filled bar for progress and gauge nodes.
func (r *Renderer) renderBar(b *drawlist.Builder, area geom.Rect, props *node.Props, st style.Style) {
	bw := barWidth(props, area)
	if props.Label != "" && props.Size <= 0 {
		bw = max(0, area.Width-1-r.width()(props.Label))
	}
	filled := int(math.Round(fraction(props.Value) * float64(bw)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", bw-filled)
	r.text(b, area.X, area.Y, area.Width, labelled(bar, props.Label), st)
}

// renderSlider draws a track with a knob at the current value.
func (r *Renderer) renderSlider(b *drawlist.Builder, area geom.Rect, props *node.Props, st style.Style) {
	bw := barWidth(props, area)
	if props.Label != "" && props.Size <= 0 {
		bw = max(0, area.Width-1-r.width()(props.Label))
	}
	if bw == 0 {
		r.text(b, area.X, area.Y, area.Width, props.Label, st)
		return
	}
	knob := int(math.Round(fraction(props.Value) * float64(bw-1)))
	track := strings.Repeat("─", knob) + "●" + strings.Repeat("─", bw-1-knob)
	r.text(b, area.X, area.Y, area.Width, labelled(track, props.Label), st)
}

// renderDivider draws a rule along the longer side of area with an
// optional centred label.
func (r *Renderer) renderDivider(b *drawlist.Builder, area geom.Rect, props *node.Props, st style.Style) {
	if area.Height > area.Width && props.Label == "" {
		for y := area.Y; y < area.Bottom(); y++ {
			b.DrawText(area.X, y, "│", st)
		}
		return
	}
	rule := strings.Repeat("─", area.Width)
	b.DrawText(area.X, area.Y, rule, st)
	if props.Label != "" {
		label := " " + textwidth.Truncate(r.width(), props.Label, max(0, area.Width-2)) + " "
		lw := r.width()(label)
		if lw <= area.Width {
			b.DrawText(area.X+(area.Width-lw)/2, area.Y, label, st)
		}
	}
}

// sparkline maps values onto eight block heights between their min and max.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	out := make([]rune, len(values))
	for i, v := range values {
		level := 0
		if hi > lo && !math.IsNaN(v) {
			level = int((v - lo) / (hi - lo) * float64(len(sparkLevels)-1))
		}
		out[i] = sparkLevels[level]
	}
	return string(out)
}

// renderRichText registers the spans as one text run. Spans without their
// own style take the inherited one. Runs wider than area are cut at the
// span that overflows.
func (r *Renderer) renderRichText(b *drawlist.Builder, area geom.Rect, props *node.Props, st style.Style) {
	if len(props.Spans) == 0 {
		return
	}
	segs := make([]drawlist.Segment, 0, len(props.Spans))
	used := 0
	for _, sp := range props.Spans {
		if used >= area.Width {
			break
		}
		text := textwidth.Truncate(r.width(), sp.Text, area.Width-used)
		used += r.width()(text)
		s := sp.Style
		if s == (style.Style{}) {
			s = st
		} else if s.Bg.IsDefault() {
			s.Bg = st.Bg
		}
		segs = append(segs, drawlist.Segment{Text: text, Style: s})
	}
	b.DrawTextRun(area.X, area.Y, b.AddTextRunBlob(segs))
}

// tableRows formats cells into aligned rows with a rule under the header.
func (r *Renderer) tableRows(cells [][]string) []string {
	if len(cells) == 0 {
		return nil
	}
	fn := r.width()
	var colW []int
	for _, row := range cells {
		for i, c := range row {
			if i >= len(colW) {
				colW = append(colW, 0)
			}
			colW[i] = max(colW[i], fn(c))
		}
	}
	format := func(row []string) string {
		parts := make([]string, len(colW))
		for i := range colW {
			c := ""
			if i < len(row) {
				c = row[i]
			}
			parts[i] = c + strings.Repeat(" ", colW[i]-fn(c))
		}
		return strings.Join(parts, " │ ")
	}
	out := []string{format(cells[0])}
	if len(cells) > 1 {
		rules := make([]string, len(colW))
		for i, cw := range colW {
			rules[i] = strings.Repeat("─", cw)
		}
		out = append(out, strings.Join(rules, "─┼─"))
		for _, row := range cells[1:] {
			out = append(out, format(row))
		}
	}
	return out
}
