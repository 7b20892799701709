package screen

import (
	"testing"

	"github.com/grindlemire/go-tuicore/internal/drawlist"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/style"
)

// frame builds a v2 drawlist with draw and decodes it.
func frame(t *testing.T, draw func(b *drawlist.Builder)) *drawlist.Frame {
	t.Helper()
	b, err := drawlist.NewBuilder(drawlist.V2, drawlist.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	b.Clear()
	draw(b)
	data, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	f, err := drawlist.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return f
}

func TestApply(t *testing.T) {
	type tc struct {
		draw func(b *drawlist.Builder)
		want string
	}

	tests := map[string]tc{
		"text": {
			draw: func(b *drawlist.Builder) { b.DrawText(1, 0, "hi", style.NewStyle()) },
			want: " hi\n\n",
		},
		"off screen text is cut": {
			draw: func(b *drawlist.Builder) { b.DrawText(4, 1, "hello", style.NewStyle()) },
			want: "\n    h\n",
		},
		"clip": {
			draw: func(b *drawlist.Builder) {
				b.PushClip(geom.NewRect(1, 0, 2, 1))
				b.DrawText(0, 0, "abcd", style.NewStyle())
				b.DrawText(0, 1, "hidden", style.NewStyle())
				b.PopClip()
				b.DrawText(0, 2, "ok", style.NewStyle())
			},
			want: " bc\n\nok",
		},
		"nested clips intersect": {
			draw: func(b *drawlist.Builder) {
				b.PushClip(geom.NewRect(0, 0, 3, 3))
				b.PushClip(geom.NewRect(2, 0, 3, 3))
				b.DrawText(0, 0, "abcde", style.NewStyle())
				b.PopClip()
				b.PopClip()
			},
			want: "  c\n\n",
		},
		"wide cluster": {
			draw: func(b *drawlist.Builder) { b.DrawText(0, 0, "日本", style.NewStyle()) },
			want: "日本\n\n",
		},
		"wide cluster split by clip is skipped": {
			draw: func(b *drawlist.Builder) {
				b.PushClip(geom.NewRect(0, 0, 3, 1))
				b.DrawText(0, 0, "日本", style.NewStyle())
				b.PopClip()
			},
			want: "日\n\n",
		},
		"overwriting half a wide cluster blanks it": {
			draw: func(b *drawlist.Builder) {
				b.DrawText(0, 0, "日", style.NewStyle())
				b.DrawText(1, 0, "x", style.NewStyle())
			},
			want: " x\n\n",
		},
		"fill clears text": {
			draw: func(b *drawlist.Builder) {
				b.DrawText(0, 0, "abc", style.NewStyle())
				b.FillRect(geom.NewRect(1, 0, 1, 1), style.NewStyle())
			},
			want: "a c\n\n",
		},
		"text run advances": {
			draw: func(b *drawlist.Builder) {
				h := b.AddTextRunBlob([]drawlist.Segment{{Text: "ab"}, {Text: "日"}, {Text: "c"}})
				b.DrawTextRun(0, 1, h)
			},
			want: "\nab日c\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := New(5, 3, nil)
			if err := s.Apply(frame(t, tt.draw)); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_Styles(t *testing.T) {
	red := style.RGBColor(0xFF, 0, 0)
	s := New(4, 2, nil)
	f := frame(t, func(b *drawlist.Builder) {
		b.FillRect(geom.NewRect(0, 0, 4, 1), style.NewStyle().Background(red))
		b.DrawText(0, 1, "a", style.NewStyle().Bold())
	})
	if err := s.Apply(f); err != nil {
		t.Fatal(err)
	}

	if got := s.Cell(3, 0).Style.Bg; got != 0xFF0000 {
		t.Errorf("filled cell bg = %#x, want 0xff0000", got)
	}
	if got := s.Cell(0, 1).Style.Attrs; got != style.AttrBold {
		t.Errorf("text cell attrs = %v, want bold", got)
	}
	if !s.Cell(1, 1).IsBlank() {
		t.Errorf("untouched cell = %+v, want blank", s.Cell(1, 1))
	}
	if got := s.Cell(9, 9); got != (Cell{}) {
		t.Errorf("out of bounds Cell() = %+v, want zero", got)
	}
}

func TestDiffAndSwap(t *testing.T) {
	s := New(4, 2, nil)
	first := frame(t, func(b *drawlist.Builder) { b.DrawText(0, 0, "ab", style.NewStyle()) })
	if err := s.Apply(first); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Diff()); got != 2 {
		t.Fatalf("first Diff() = %d changes, want 2", got)
	}
	s.Swap()

	if err := s.Apply(first); err != nil {
		t.Fatal(err)
	}
	if got := s.Diff(); len(got) != 0 {
		t.Errorf("identical frame Diff() = %+v, want none", got)
	}

	second := frame(t, func(b *drawlist.Builder) { b.DrawText(0, 0, "ac", style.NewStyle()) })
	if err := s.Apply(second); err != nil {
		t.Fatal(err)
	}
	got := s.Diff()
	if len(got) != 1 || got[0].X != 1 || got[0].Cell.Text != "c" {
		t.Errorf("Diff() = %+v, want one change at x=1", got)
	}
}

func TestCursor(t *testing.T) {
	s := New(4, 2, nil)
	if _, ok := s.Cursor(); ok {
		t.Error("new screen should have no cursor")
	}
	f := frame(t, func(b *drawlist.Builder) {
		b.SetCursor(drawlist.Cursor{X: 2, Y: 1, Shape: drawlist.CursorBar, Visible: true})
	})
	if err := s.Apply(f); err != nil {
		t.Fatal(err)
	}
	cur, ok := s.Cursor()
	if !ok || cur.X != 2 || cur.Y != 1 || cur.Shape != drawlist.CursorBar {
		t.Errorf("Cursor() = %+v, %v", cur, ok)
	}

	if err := s.Apply(frame(t, func(*drawlist.Builder) {})); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Cursor(); ok {
		t.Error("cursor should not carry over to a frame without SET_CURSOR")
	}
}

func TestResize(t *testing.T) {
	s := New(4, 2, nil)
	if err := s.Apply(frame(t, func(b *drawlist.Builder) { b.DrawText(0, 0, "abcd", style.NewStyle()) })); err != nil {
		t.Fatal(err)
	}

	s.Resize(2, 3)
	if w, h := s.Size(); w != 2 || h != 3 {
		t.Errorf("Size() = %dx%d, want 2x3", w, h)
	}
	if got := s.String(); got != "ab\n\n" {
		t.Errorf("String() after resize = %q, want %q", got, "ab\n\n")
	}

	s.Resize(-1, 5)
	if w, h := s.Size(); w != 0 || h != 5 {
		t.Errorf("Size() = %dx%d, want 0x5", w, h)
	}
}
