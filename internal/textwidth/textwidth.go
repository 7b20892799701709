// Package textwidth provides the cell-width capability injected into layout.
//
// Layout never segments text itself. It asks a Func how many terminal cells a
// string occupies and treats the answer as authoritative.
package textwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Func returns the number of terminal cells s occupies on one line.
type Func func(s string) int

// Policy names a width measurement strategy.
type Policy string

const (
	// PolicyGrapheme measures extended grapheme clusters (emoji sequences,
	// combining marks) the way modern terminals render them.
	PolicyGrapheme Policy = "grapheme"
	// PolicyEastAsian treats ambiguous-width runes as two cells, matching
	// CJK locales.
	PolicyEastAsian Policy = "east_asian"
)

// Grapheme measures by grapheme cluster.
func Grapheme(s string) int {
	return uniseg.StringWidth(s)
}

var eastAsian = &runewidth.Condition{EastAsianWidth: true}

// EastAsian measures rune by rune with ambiguous-width characters doubled.
func EastAsian(s string) int {
	return eastAsian.StringWidth(s)
}

// Default is the Func used when none is supplied.
var Default Func = Grapheme

// ForPolicy returns the Func for p, or false for an unknown policy.
func ForPolicy(p Policy) (Func, bool) {
	switch p {
	case PolicyGrapheme, "":
		return Grapheme, true
	case PolicyEastAsian:
		return EastAsian, true
	}
	return nil, false
}

// WithTabs wraps fn so that each tab counts as tabWidth cells.
func WithTabs(fn Func, tabWidth int) Func {
	if tabWidth <= 0 {
		return fn
	}
	return func(s string) int {
		if !strings.Contains(s, "\t") {
			return fn(s)
		}
		n := strings.Count(s, "\t")
		return fn(strings.ReplaceAll(s, "\t", "")) + n*tabWidth
	}
}

// Block returns the widest line and the line count of s. An empty string is
// one empty line.
func Block(fn Func, s string) (width, lines int) {
	for _, line := range strings.Split(s, "\n") {
		lines++
		if w := fn(line); w > width {
			width = w
		}
	}
	return width, lines
}

// Wrap breaks s into lines of at most maxW cells, splitting at spaces where
// possible and hard-breaking words wider than maxW. Existing newlines are
// kept. maxW <= 0 disables wrapping.
func Wrap(fn Func, s string, maxW int) []string {
	if maxW <= 0 {
		return strings.Split(s, "\n")
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(fn, para, maxW)...)
	}
	return out
}

func wrapLine(fn Func, s string, maxW int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, w := range words {
		ww := fn(w)
		for ww > maxW {
			if curW > 0 {
				flush()
			}
			head, rest := splitAt(fn, w, maxW)
			lines = append(lines, head)
			w, ww = rest, fn(rest)
		}
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(w)
			curW = ww
		case curW+1+ww <= maxW:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(w)
			curW = ww
		}
	}
	if curW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// splitAt returns the longest grapheme prefix of s fitting in maxW cells
// (at least one cluster) and the remainder.
func splitAt(fn Func, s string, maxW int) (string, string) {
	g := uniseg.NewGraphemes(s)
	end, w := 0, 0
	for g.Next() {
		cw := fn(g.Str())
		if w+cw > maxW && end > 0 {
			break
		}
		_, to := g.Positions()
		end = to
		w += cw
	}
	return s[:end], s[end:]
}

// Truncate returns the longest grapheme prefix of s that fits in maxW cells.
func Truncate(fn Func, s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if fn(s) <= maxW {
		return s
	}
	g := uniseg.NewGraphemes(s)
	end, w := 0, 0
	for g.Next() {
		cw := fn(g.Str())
		if w+cw > maxW {
			break
		}
		_, to := g.Positions()
		end = to
		w += cw
	}
	return s[:end]
}
