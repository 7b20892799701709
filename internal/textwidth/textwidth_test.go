package textwidth

import (
	"reflect"
	"testing"
)

func TestWidthPolicies(t *testing.T) {
	type tc struct {
		fn   Func
		in   string
		want int
	}

	tests := map[string]tc{
		"ascii grapheme":    {fn: Grapheme, in: "hello", want: 5},
		"cjk grapheme":      {fn: Grapheme, in: "日本", want: 4},
		"empty":             {fn: Grapheme, in: "", want: 0},
		"ascii east asian":  {fn: EastAsian, in: "hello", want: 5},
		"cjk east asian":    {fn: EastAsian, in: "日本", want: 4},
		"ambiguous doubled": {fn: EastAsian, in: "±", want: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestForPolicy(t *testing.T) {
	if _, ok := ForPolicy(PolicyGrapheme); !ok {
		t.Error("ForPolicy(grapheme) should be known")
	}
	if _, ok := ForPolicy(PolicyEastAsian); !ok {
		t.Error("ForPolicy(east_asian) should be known")
	}
	if _, ok := ForPolicy("bogus"); ok {
		t.Error("ForPolicy(bogus) should be unknown")
	}
}

func TestWithTabs(t *testing.T) {
	fn := WithTabs(Grapheme, 4)
	if got := fn("a\tb"); got != 6 {
		t.Errorf("width = %d, want 6", got)
	}
	if got := fn("ab"); got != 2 {
		t.Errorf("width = %d, want 2", got)
	}
}

func TestBlock(t *testing.T) {
	w, h := Block(Grapheme, "ab\nabcd\n")
	if w != 4 || h != 3 {
		t.Errorf("Block() = (%d, %d), want (4, 3)", w, h)
	}
	w, h = Block(Grapheme, "")
	if w != 0 || h != 1 {
		t.Errorf("Block(\"\") = (%d, %d), want (0, 1)", w, h)
	}
}

func TestWrap(t *testing.T) {
	type tc struct {
		in   string
		maxW int
		want []string
	}

	tests := map[string]tc{
		"fits": {
			in: "hello world", maxW: 20,
			want: []string{"hello world"},
		},
		"breaks at space": {
			in: "hello world", maxW: 7,
			want: []string{"hello", "world"},
		},
		"hard break long word": {
			in: "abcdefgh", maxW: 3,
			want: []string{"abc", "def", "gh"},
		},
		"keeps newlines": {
			in: "a\nb", maxW: 10,
			want: []string{"a", "b"},
		},
		"no wrapping": {
			in: "a b c", maxW: 0,
			want: []string{"a b c"},
		},
		"empty": {
			in: "", maxW: 5,
			want: []string{""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Wrap(Grapheme, tt.in, tt.maxW); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.in, tt.maxW, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate(Grapheme, "日本語", 5); got != "日本" {
		t.Errorf("Truncate() = %q, want %q", got, "日本")
	}
	if got := Truncate(Grapheme, "abc", 5); got != "abc" {
		t.Errorf("Truncate() = %q, want %q", got, "abc")
	}
	if got := Truncate(Grapheme, "abc", 0); got != "" {
		t.Errorf("Truncate() = %q, want empty", got)
	}
}
