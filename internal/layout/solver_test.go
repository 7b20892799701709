package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/grindlemire/go-tuicore/internal/dirty"
	"github.com/grindlemire/go-tuicore/internal/errors"
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/measure"
	"github.com/grindlemire/go-tuicore/internal/node"
)

func mustLayout(t *testing.T, n *node.Node, w, h int) *Tree {
	t.Helper()
	tree, err := Layout(n, 0, 0, w, h, geom.AxisColumn, nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	return tree
}

func TestLayout_Deterministic(t *testing.T) {
	a := node.NewArena(16)
	root := a.Column(node.Props{Gap: 1, Border: node.BorderRounded},
		a.Row(node.Props{Justify: node.JustifySpaceBetween},
			a.Text("left", node.Props{}),
			a.Text("right", node.Props{}),
		),
		a.Box(node.Props{Flex: 1}, a.Text("body", node.Props{Wrap: true})),
		a.Text("footer", node.Props{AlignSelf: node.AlignCenter}),
	)

	first := mustLayout(t, root, 40, 12).String()
	for i := 0; i < 5; i++ {
		if got := mustLayout(t, root, 40, 12).String(); got != first {
			t.Fatalf("layout %d differs:\n%s\nwant:\n%s", i, got, first)
		}
	}
}

func TestLayout_Root(t *testing.T) {
	a := node.NewArena(4)

	type tc struct {
		n    *node.Node
		want geom.Rect
	}

	tests := map[string]tc{
		"auto container fills box": {
			n:    a.Column(node.Props{}),
			want: geom.Rect{Width: 80, Height: 24},
		},
		"auto leaf is intrinsic": {
			n:    a.Text("hello", node.Props{}),
			want: geom.Rect{Width: 5, Height: 1},
		},
		"explicit percent resolves against box": {
			n:    a.Box(node.Props{Width: geom.Percent(50), Height: geom.Fixed(3)}),
			want: geom.Rect{Width: 40, Height: 3},
		},
		"oversized root is clamped": {
			n:    a.Box(node.Props{Width: geom.Fixed(200), Height: geom.Fixed(100)}),
			want: geom.Rect{Width: 80, Height: 24},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := mustLayout(t, tt.n, 80, 24).Rect
			if got != tt.want {
				t.Errorf("Rect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayout_AspectRatio(t *testing.T) {
	type tc struct {
		props node.Props
		want  geom.Size
	}

	tests := map[string]tc{
		"width 8 ratio 2": {
			props: node.Props{Width: geom.Fixed(8), AspectRatio: 2},
			want:  geom.Size{Width: 8, Height: 4},
		},
		"width 7 floors": {
			props: node.Props{Width: geom.Fixed(7), AspectRatio: 2},
			want:  geom.Size{Width: 7, Height: 3},
		},
		"height known": {
			props: node.Props{Height: geom.Fixed(3), AspectRatio: 2.5},
			want:  geom.Size{Width: 7, Height: 3},
		},
		"both explicit ignores ratio": {
			props: node.Props{Width: geom.Fixed(8), Height: geom.Fixed(1), AspectRatio: 2},
			want:  geom.Size{Width: 8, Height: 1},
		},
		"percent resolves before derivation": {
			props: node.Props{Width: geom.Percent(50), AspectRatio: 2},
			want:  geom.Size{Width: 10, Height: 5},
		},
		"min clamps after derivation": {
			props: node.Props{Width: geom.Fixed(8), AspectRatio: 2, MinHeight: geom.Fixed(6)},
			want:  geom.Size{Width: 8, Height: 6},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(2)
			root := a.Column(node.Props{}, a.Box(tt.props))
			got := mustLayout(t, root, 20, 10).Children[0].Rect.Size()
			if got != tt.want {
				t.Errorf("size = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayout_GapContiguity(t *testing.T) {
	type tc struct {
		gap   int
		wantY []int
	}

	tests := map[string]tc{
		"no gap":  {gap: 0, wantY: []int{0, 1}},
		"gap two": {gap: 2, wantY: []int{0, 3}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(4)
			root := a.Column(node.Props{Gap: tt.gap},
				a.Text("a", node.Props{}),
				a.Text("b", node.Props{}),
			)
			tree := mustLayout(t, root, 10, 10)
			for i, want := range tt.wantY {
				if got := tree.Children[i].Rect.Y; got != want {
					t.Errorf("child %d y = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestLayout_Flex(t *testing.T) {
	a := node.NewArena(8)
	root := a.Row(node.Props{},
		a.Text("abc", node.Props{}),
		a.Spacer(node.Props{Flex: 1}),
		a.Spacer(node.Props{Flex: 1}),
	)
	tree := mustLayout(t, root, 10, 1)

	want := []geom.Rect{
		{X: 0, Y: 0, Width: 3, Height: 1},
		{X: 3, Y: 0, Width: 4, Height: 1},
		{X: 7, Y: 0, Width: 3, Height: 1},
	}
	for i, w := range want {
		if got := tree.Children[i].Rect; got != w {
			t.Errorf("child %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestLayout_FlexProportional(t *testing.T) {
	type tc struct {
		kids []node.Props
		want []int
	}

	tests := map[string]tc{
		"one to three": {
			kids: []node.Props{{Flex: 1}, {Flex: 3}},
			want: []int{25, 75},
		},
		"max frees space for siblings": {
			kids: []node.Props{{Flex: 1, MaxWidth: geom.Fixed(20)}, {Flex: 1}},
			want: []int{20, 80},
		},
		"min takes space from siblings": {
			kids: []node.Props{{Flex: 1, MinWidth: geom.Fixed(70)}, {Flex: 1}, {Flex: 1}},
			want: []int{70, 15, 15},
		},
		"chained clamps": {
			kids: []node.Props{{Flex: 1, MaxWidth: geom.Fixed(10)}, {Flex: 1, MaxWidth: geom.Fixed(30)}, {Flex: 1}},
			want: []int{10, 30, 60},
		},
		"fixed sibling": {
			kids: []node.Props{{Width: geom.Fixed(40)}, {Flex: 1, MaxWidth: geom.Fixed(5)}, {Flex: 1}},
			want: []int{40, 5, 55},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(len(tt.kids) + 1)
			var kids []*node.Node
			for _, p := range tt.kids {
				kids = append(kids, a.Box(p))
			}
			tree := mustLayout(t, a.Row(node.Props{}, kids...), 100, 5)

			x := 0
			for i, w := range tt.want {
				r := tree.Children[i].Rect
				if r.Width != w {
					t.Errorf("child %d width = %d, want %d", i, r.Width, w)
				}
				if r.X != x {
					t.Errorf("child %d x = %d, want %d", i, r.X, x)
				}
				x += w
			}
		})
	}
}

func TestLayout_BorderAndPadding(t *testing.T) {
	type tc struct {
		props node.Props
		want  geom.Rect
	}

	tests := map[string]tc{
		"border": {
			props: node.Props{Border: node.BorderSingle},
			want:  geom.Rect{X: 1, Y: 1, Width: 8, Height: 3},
		},
		"border and padding": {
			props: node.Props{Border: node.BorderSingle, Padding: geom.EdgeAll(1)},
			want:  geom.Rect{X: 2, Y: 2, Width: 6, Height: 1},
		},
		"top border only": {
			props: node.Props{Border: node.BorderDouble, BorderSides: node.SideTop},
			want:  geom.Rect{X: 0, Y: 1, Width: 10, Height: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(2)
			root := a.Row(tt.props, a.Box(node.Props{Flex: 1}))
			if got := mustLayout(t, root, 10, 5).Children[0].Rect; got != tt.want {
				t.Errorf("child = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayout_CrossAlign(t *testing.T) {
	type tc struct {
		align node.Align
		want  geom.Rect
	}

	tests := map[string]tc{
		"default stretches": {align: node.AlignAuto, want: geom.Rect{X: 0, Width: 10, Height: 1}},
		"start":             {align: node.AlignStart, want: geom.Rect{X: 0, Width: 2, Height: 1}},
		"center":            {align: node.AlignCenter, want: geom.Rect{X: 4, Width: 2, Height: 1}},
		"end":               {align: node.AlignEnd, want: geom.Rect{X: 8, Width: 2, Height: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(2)
			root := a.Column(node.Props{}, a.Text("ab", node.Props{AlignSelf: tt.align}))
			if got := mustLayout(t, root, 10, 5).Children[0].Rect; got != tt.want {
				t.Errorf("child = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayout_Justify(t *testing.T) {
	type tc struct {
		justify node.Justify
		wantX   []int
	}

	tests := map[string]tc{
		"start":         {justify: node.JustifyStart, wantX: []int{0, 2}},
		"end":           {justify: node.JustifyEnd, wantX: []int{6, 8}},
		"center":        {justify: node.JustifyCenter, wantX: []int{3, 5}},
		"space between": {justify: node.JustifySpaceBetween, wantX: []int{0, 8}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(4)
			root := a.Row(node.Props{Justify: tt.justify},
				a.Text("ab", node.Props{}),
				a.Text("cd", node.Props{}),
			)
			tree := mustLayout(t, root, 10, 1)
			for i, want := range tt.wantX {
				if got := tree.Children[i].Rect.X; got != want {
					t.Errorf("child %d x = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestLayout_MinMax(t *testing.T) {
	a := node.NewArena(4)
	root := a.Column(node.Props{Align: node.AlignStart},
		a.Text("abcdef", node.Props{MaxWidth: geom.Fixed(3)}),
		a.Text("x", node.Props{MinHeight: geom.Fixed(2), MinWidth: geom.Fixed(4)}),
	)
	tree := mustLayout(t, root, 10, 10)

	if got := tree.Children[0].Rect.Width; got != 3 {
		t.Errorf("max width child = %d, want 3", got)
	}
	if got := tree.Children[1].Rect.Size(); got != (geom.Size{Width: 4, Height: 2}) {
		t.Errorf("min child = %+v, want {4 2}", got)
	}
	if got := tree.Children[1].Rect.Y; got != 1 {
		t.Errorf("min child y = %d, want 1", got)
	}
}

func TestLayout_ChildrenStayInsideParent(t *testing.T) {
	a := node.NewArena(8)
	root := a.Column(node.Props{},
		a.Text("a", node.Props{}),
		a.Text("b", node.Props{}),
		a.Text("c", node.Props{}),
		a.Text("d", node.Props{Width: geom.Fixed(50)}),
	)
	tree := mustLayout(t, root, 10, 3)

	tree.Walk(func(n *Tree) bool {
		for _, c := range n.Children {
			r := c.Rect
			if r.X < n.Rect.X || r.Y < n.Rect.Y || r.Right() > n.Rect.Right() || r.Bottom() > n.Rect.Bottom() {
				t.Errorf("%s child %+v escapes parent %+v", c.Kind, r, n.Rect)
			}
		}
		return true
	})
	if got := tree.Children[3].Rect; !got.IsEmpty() {
		t.Errorf("overflowing child = %+v, want empty", got)
	}
}

func TestLayout_Grid(t *testing.T) {
	t.Run("auto flow", func(t *testing.T) {
		a := node.NewArena(4)
		root := a.New(node.KindGrid, node.Props{Columns: 2},
			a.Text("a", node.Props{}),
			a.Text("b", node.Props{}),
			a.Text("c", node.Props{}),
		)
		tree := mustLayout(t, root, 10, 4)
		want := []geom.Rect{
			{X: 0, Y: 0, Width: 5, Height: 1},
			{X: 5, Y: 0, Width: 5, Height: 1},
			{X: 0, Y: 1, Width: 5, Height: 1},
		}
		for i, w := range want {
			if got := tree.Children[i].Rect; got != w {
				t.Errorf("cell %d = %+v, want %+v", i, got, w)
			}
		}
	})

	t.Run("explicit placement occupies first", func(t *testing.T) {
		a := node.NewArena(4)
		root := a.New(node.KindGrid, node.Props{Columns: 2},
			a.Text("a", node.Props{Place: &node.GridPlacement{Column: 1, Row: 0, ColSpan: 1, RowSpan: 1}}),
			a.Text("b", node.Props{}),
			a.Text("c", node.Props{}),
		)
		tree := mustLayout(t, root, 10, 4)
		want := []struct{ X, Y int }{{X: 5, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}}
		for i, w := range want {
			r := tree.Children[i].Rect
			if r.X != w.X || r.Y != w.Y {
				t.Errorf("cell %d at (%d,%d), want (%d,%d)", i, r.X, r.Y, w.X, w.Y)
			}
		}
	})

	t.Run("fixed rows with gap and span", func(t *testing.T) {
		a := node.NewArena(4)
		root := a.New(node.KindGrid, node.Props{Columns: 2, Rows: 2, Gap: 1},
			a.Text("wide", node.Props{Place: &node.GridPlacement{Column: 0, Row: 1, ColSpan: 2, RowSpan: 1}}),
			a.Text("a", node.Props{}),
		)
		tree := mustLayout(t, root, 11, 5)
		if got, want := tree.Children[0].Rect, (geom.Rect{X: 0, Y: 3, Width: 11, Height: 2}); got != want {
			t.Errorf("span = %+v, want %+v", got, want)
		}
		if got, want := tree.Children[1].Rect, (geom.Rect{X: 0, Y: 0, Width: 5, Height: 2}); got != want {
			t.Errorf("auto = %+v, want %+v", got, want)
		}
	})
}

func TestLayout_Composites(t *testing.T) {
	type tc struct {
		kind  node.Kind
		wantX []int
		wantY []int
	}

	tests := map[string]tc{
		"tabs as column":      {kind: node.KindTabs, wantX: []int{0, 0}, wantY: []int{0, 1}},
		"accordion as column": {kind: node.KindAccordion, wantX: []int{0, 0}, wantY: []int{0, 1}},
		"breadcrumb as row":   {kind: node.KindBreadcrumb, wantX: []int{0, 1}, wantY: []int{0, 0}},
		"pagination as row":   {kind: node.KindPagination, wantX: []int{0, 1}, wantY: []int{0, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(4)
			root := a.New(tt.kind, node.Props{},
				a.Text("a", node.Props{}),
				a.Text("bb", node.Props{}),
			)
			tree := mustLayout(t, root, 10, 5)
			if tree.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tree.Kind, tt.kind)
			}
			for i := range tt.wantX {
				r := tree.Children[i].Rect
				if r.X != tt.wantX[i] || r.Y != tt.wantY[i] {
					t.Errorf("child %d at (%d,%d), want (%d,%d)", i, r.X, r.Y, tt.wantX[i], tt.wantY[i])
				}
			}
		})
	}
}

func TestLayout_Absolute(t *testing.T) {
	type tc struct {
		props node.Props
		want  geom.Rect
	}

	tests := map[string]tc{
		"left top": {
			props: node.Props{Left: node.Int(2), Top: node.Int(3), Width: geom.Fixed(4), Height: geom.Fixed(2)},
			want:  geom.Rect{X: 2, Y: 3, Width: 4, Height: 2},
		},
		"right bottom": {
			props: node.Props{Right: node.Int(1), Bottom: node.Int(1), Width: geom.Fixed(4), Height: geom.Fixed(2)},
			want:  geom.Rect{X: 15, Y: 7, Width: 4, Height: 2},
		},
		"stretched between offsets": {
			props: node.Props{Left: node.Int(2), Right: node.Int(3), Top: node.Int(0), Height: geom.Fixed(1)},
			want:  geom.Rect{X: 2, Y: 0, Width: 15, Height: 1},
		},
		"clipped to parent": {
			props: node.Props{Left: node.Int(18), Top: node.Int(0), Width: geom.Fixed(5), Height: geom.Fixed(1)},
			want:  geom.Rect{X: 18, Y: 0, Width: 2, Height: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(2)
			props := tt.props
			props.Position = node.PositionAbsolute
			root := a.Box(node.Props{}, a.Box(props))
			if got := mustLayout(t, root, 20, 10).Children[0].Rect; got != tt.want {
				t.Errorf("Rect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLayout_AbsoluteExcludedFromFlow(t *testing.T) {
	a := node.NewArena(4)
	root := a.Column(node.Props{Gap: 1},
		a.Text("a", node.Props{}),
		a.Box(node.Props{Position: node.PositionAbsolute, Width: geom.Fixed(3), Height: geom.Fixed(3)}),
		a.Text("hidden", node.Props{Hidden: true}),
		a.Text("b", node.Props{}),
	)
	tree := mustLayout(t, root, 10, 10)

	if len(tree.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3 (hidden omitted)", len(tree.Children))
	}
	if got := tree.Children[2].Rect.Y; got != 2 {
		t.Errorf("second text y = %d, want 2", got)
	}
	if got := tree.Children[1].Kind; got != node.KindBox {
		t.Errorf("children should keep source order, got %v at 1", got)
	}
}

func TestLayout_Scroll(t *testing.T) {
	type tc struct {
		scrollY  int
		wantY0   int
		wantMaxY int
		wantY    int
	}

	tests := map[string]tc{
		"top":     {scrollY: 0, wantY0: 0, wantMaxY: 2, wantY: 0},
		"one":     {scrollY: 1, wantY0: -1, wantMaxY: 2, wantY: 1},
		"clamped": {scrollY: 9, wantY0: -2, wantMaxY: 2, wantY: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(8)
			var kids []*node.Node
			for _, s := range []string{"1", "2", "3", "4", "5"} {
				kids = append(kids, a.Text(s, node.Props{}))
			}
			root := a.New(node.KindScroll, node.Props{ScrollY: tt.scrollY}, kids...)
			tree := mustLayout(t, root, 10, 3)

			if tree.Overflow == nil {
				t.Fatal("Overflow = nil")
			}
			if got := tree.Overflow.Content; got != (geom.Size{Width: 10, Height: 5}) {
				t.Errorf("Content = %+v, want {10 5}", got)
			}
			if got := tree.Overflow.MaxScrollY; got != tt.wantMaxY {
				t.Errorf("MaxScrollY = %d, want %d", got, tt.wantMaxY)
			}
			if got := tree.Overflow.ScrollY; got != tt.wantY {
				t.Errorf("ScrollY = %d, want %d", got, tt.wantY)
			}
			if got := tree.Children[0].Rect.Y; got != tt.wantY0 {
				t.Errorf("first child y = %d, want %d", got, tt.wantY0)
			}
			// Content keeps its size; the child at the scroll offset sits at
			// the top of the viewport.
			for i, c := range tree.Children {
				if c.Rect.Height != 1 || c.Rect.Y != tt.wantY0+i {
					t.Errorf("child %d = %+v, want height 1 at y %d", i, c.Rect, tt.wantY0+i)
				}
			}
			if got := tree.Children[tt.wantY].Rect.Y; got != tree.Overflow.Viewport.Y {
				t.Errorf("child %d y = %d, want viewport top %d", tt.wantY, got, tree.Overflow.Viewport.Y)
			}
		})
	}
}

func TestLayout_LayersAndModal(t *testing.T) {
	a := node.NewArena(4)
	layers := a.New(node.KindLayers, node.Props{},
		a.Box(node.Props{}),
		a.New(node.KindModal, node.Props{},
			a.Box(node.Props{Width: geom.Fixed(6), Height: geom.Fixed(2)}),
		),
	)
	tree := mustLayout(t, layers, 20, 10)

	if got := tree.Children[0].Rect; got != (geom.Rect{Width: 20, Height: 10}) {
		t.Errorf("base layer = %+v, want full", got)
	}
	dialog := tree.Children[1].Children[0].Rect
	if want := (geom.Rect{X: 7, Y: 4, Width: 6, Height: 2}); dialog != want {
		t.Errorf("dialog = %+v, want %+v", dialog, want)
	}
}

func TestLayout_InvalidProps(t *testing.T) {
	type tc struct {
		kind  node.Kind
		props node.Props
	}

	tests := map[string]tc{
		"negative width":      {kind: node.KindBox, props: node.Props{Width: geom.Fixed(-1)}},
		"nan height":          {kind: node.KindBox, props: node.Props{Height: geom.Value{Amount: math.NaN(), Unit: geom.UnitFixed}}},
		"negative percent":    {kind: node.KindBox, props: node.Props{Width: geom.Percent(-5)}},
		"min exceeds max":     {kind: node.KindBox, props: node.Props{MinWidth: geom.Fixed(5), MaxWidth: geom.Fixed(2)}},
		"negative flex":       {kind: node.KindBox, props: node.Props{Flex: -1}},
		"infinite flex":       {kind: node.KindBox, props: node.Props{Flex: math.Inf(1)}},
		"negative gap":        {kind: node.KindColumn, props: node.Props{Gap: -1}},
		"negative padding":    {kind: node.KindBox, props: node.Props{Padding: geom.Edges{Left: -1}}},
		"nan aspect ratio":    {kind: node.KindBox, props: node.Props{AspectRatio: math.NaN()}},
		"negative scroll":     {kind: node.KindScroll, props: node.Props{ScrollY: -1}},
		"negative spacer":     {kind: node.KindSpacer, props: node.Props{Size: -2}},
		"grid without column": {kind: node.KindGrid, props: node.Props{}},
		"too many columns":    {kind: node.KindGrid, props: node.Props{Columns: 1 << 40}},
		"too many rows":       {kind: node.KindGrid, props: node.Props{Columns: 2, Rows: 1 << 40}},
		"huge fixed height":   {kind: node.KindBox, props: node.Props{Height: geom.Value{Amount: 1e19, Unit: geom.UnitFixed}}},
		"huge percent width":  {kind: node.KindBox, props: node.Props{Width: geom.Percent(1e19)}},
		"huge gap":            {kind: node.KindColumn, props: node.Props{Gap: math.MaxInt}},
		"huge padding":        {kind: node.KindBox, props: node.Props{Padding: geom.Edges{Bottom: 1 << 40}}},
		"unknown kind":        {kind: node.Kind(250), props: node.Props{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(2)
			root := a.Column(node.Props{}, a.New(tt.kind, tt.props))
			tree, err := Layout(root, 0, 0, 10, 10, geom.AxisColumn, nil)
			if tree != nil {
				t.Error("Layout() returned a partial tree with an error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidProps) {
				t.Errorf("Layout() error = %v, want INVALID_PROPS", err)
			}
		})
	}
}

func TestLayout_InvalidGridPlacement(t *testing.T) {
	type tc struct {
		rows  int
		place node.GridPlacement
	}

	tests := map[string]tc{
		"zero span":               {rows: 2, place: node.GridPlacement{ColSpan: 0, RowSpan: 1}},
		"column outside":          {rows: 2, place: node.GridPlacement{Column: 2, ColSpan: 1, RowSpan: 1}},
		"span overflows":          {rows: 2, place: node.GridPlacement{Column: 1, ColSpan: 2, RowSpan: 1}},
		"row outside":             {rows: 2, place: node.GridPlacement{Row: 3, ColSpan: 1, RowSpan: 1}},
		"auto rows far row":       {place: node.GridPlacement{Row: 1 << 40, ColSpan: 1, RowSpan: 1}},
		"auto rows huge row span": {place: node.GridPlacement{Row: 1, ColSpan: 1, RowSpan: math.MaxInt}},
		"column span wraps int":   {rows: 2, place: node.GridPlacement{Column: 1, ColSpan: math.MaxInt, RowSpan: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(2)
			pl := tt.place
			root := a.New(node.KindGrid, node.Props{Columns: 2, Rows: tt.rows},
				a.Text("x", node.Props{Place: &pl}),
			)
			if _, err := Layout(root, 0, 0, 10, 10, geom.AxisColumn, nil); !errors.Is(err, errors.ErrCodeInvalidProps) {
				t.Errorf("Layout() error = %v, want INVALID_PROPS", err)
			}
		})
	}
}

func TestLayout_FatalPropagatesFromAnyDepth(t *testing.T) {
	for depth := 1; depth <= 8; depth++ {
		a := node.NewArena(depth + 1)
		n := a.Text("bad", node.Props{Gap: -1})
		for i := 0; i < depth; i++ {
			n = a.Column(node.Props{}, a.Text("ok", node.Props{}), n)
		}

		tree, err := Layout(n, 0, 0, 40, 40, geom.AxisColumn, measure.New())
		if tree != nil {
			t.Errorf("depth %d: got partial tree", depth)
		}
		if !errors.Is(err, errors.ErrCodeInvalidProps) {
			t.Errorf("depth %d: error = %v, want INVALID_PROPS", depth, err)
		}
		if err != nil && strings.Count(err.Error(), "column") != depth {
			t.Errorf("depth %d: error path %q should name every ancestor", depth, err.Error())
		}
	}
}

func TestMeasure_CacheElidesAccessor(t *testing.T) {
	calls := 0
	a := node.NewArena(2)
	leaf := a.New(node.KindCanvas, node.Props{
		Measure: func(maxW, maxH int, axis geom.Axis) geom.Size {
			calls++
			return geom.Size{Width: min(maxW, 4), Height: 2}
		},
	})
	cache := measure.New()

	type step struct {
		maxW, maxH int
		axis       geom.Axis
		wantCalls  int
	}
	steps := []step{
		{maxW: 10, maxH: 5, axis: geom.AxisColumn, wantCalls: 1},
		{maxW: 10, maxH: 5, axis: geom.AxisColumn, wantCalls: 1},
		{maxW: 11, maxH: 5, axis: geom.AxisColumn, wantCalls: 2},
		{maxW: 10, maxH: 6, axis: geom.AxisColumn, wantCalls: 3},
		{maxW: 10, maxH: 5, axis: geom.AxisRow, wantCalls: 4},
		{maxW: 10, maxH: 5, axis: geom.AxisColumn, wantCalls: 4},
	}
	for i, s := range steps {
		if _, err := Measure(leaf, s.maxW, s.maxH, s.axis, cache); err != nil {
			t.Fatalf("step %d: Measure() error = %v", i, err)
		}
		if calls != s.wantCalls {
			t.Errorf("step %d: accessor calls = %d, want %d", i, calls, s.wantCalls)
		}
	}
}

func TestLayout_WarmCacheSkipsAccessor(t *testing.T) {
	calls := 0
	a := node.NewArena(4)
	root := a.Column(node.Props{Align: node.AlignStart},
		a.New(node.KindCanvas, node.Props{
			Measure: func(maxW, maxH int, axis geom.Axis) geom.Size {
				calls++
				return geom.Size{Width: 3, Height: 2}
			},
		}),
	)
	cache := measure.New()

	if _, err := Layout(root, 0, 0, 20, 10, geom.AxisColumn, cache); err != nil {
		t.Fatal(err)
	}
	cold := calls
	if cold == 0 {
		t.Fatal("accessor never ran")
	}
	tree, err := Layout(root, 0, 0, 20, 10, geom.AxisColumn, cache)
	if err != nil {
		t.Fatal(err)
	}
	if calls != cold {
		t.Errorf("warm layout ran accessor %d more times", calls-cold)
	}
	if got := tree.Children[0].Rect.Size(); got != (geom.Size{Width: 3, Height: 2}) {
		t.Errorf("size = %+v, want {3 2}", got)
	}
}

func TestMeasure_ActiveDirtyBypassesCache(t *testing.T) {
	calls := 0
	a := node.NewArena(2)
	leaf := a.New(node.KindCanvas, node.Props{
		Measure: func(maxW, maxH int, axis geom.Axis) geom.Size {
			calls++
			return geom.Size{Width: calls, Height: 1}
		},
	})
	cache := measure.New()
	if _, err := Measure(leaf, 10, 10, geom.AxisColumn, cache); err != nil {
		t.Fatal(err)
	}

	set := dirty.NewSet()
	set.Add(leaf.Instance())
	dirty.Push(set)
	got, err := Measure(leaf, 10, 10, geom.AxisColumn, cache)
	dirty.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 || got.Width != 2 {
		t.Errorf("dirty measure: calls = %d, width = %d, want 2, 2", calls, got.Width)
	}

	// The recomputed entry replaced the stale one.
	got, _ = Measure(leaf, 10, 10, geom.AxisColumn, cache)
	if calls != 2 || got.Width != 2 {
		t.Errorf("clean measure: calls = %d, width = %d, want 2, 2", calls, got.Width)
	}
}

func TestMeasure_Kinds(t *testing.T) {
	type tc struct {
		kind  node.Kind
		props node.Props
		axis  geom.Axis
		want  geom.Size
	}

	tests := map[string]tc{
		"text block":       {kind: node.KindText, props: node.Props{Text: "ab\nabcd"}, want: geom.Size{Width: 4, Height: 2}},
		"wrapped text":     {kind: node.KindText, props: node.Props{Text: "aaa bbb", Wrap: true}, want: geom.Size{Width: 3, Height: 2}},
		"spacer column":    {kind: node.KindSpacer, props: node.Props{Size: 3}, axis: geom.AxisColumn, want: geom.Size{Height: 3}},
		"spacer row":       {kind: node.KindSpacer, props: node.Props{Size: 3}, axis: geom.AxisRow, want: geom.Size{Width: 3}},
		"button":           {kind: node.KindButton, props: node.Props{Label: "OK"}, want: geom.Size{Width: 6, Height: 1}},
		"checkbox":         {kind: node.KindCheckbox, props: node.Props{Label: "on"}, want: geom.Size{Width: 6, Height: 1}},
		"list":             {kind: node.KindList, props: node.Props{Items: []string{"a", "bcd"}}, want: geom.Size{Width: 5, Height: 2}},
		"table":            {kind: node.KindTable, props: node.Props{Cells: [][]string{{"id", "name"}, {"1", "x"}}}, want: geom.Size{Width: 9, Height: 3}},
		"bordered box":     {kind: node.KindBox, props: node.Props{Border: node.BorderSingle}, want: geom.Size{Width: 2, Height: 2}},
		"sparkline":        {kind: node.KindSparkline, props: node.Props{Values: []float64{1, 2, 3}}, want: geom.Size{Width: 3, Height: 1}},
		"rich text":        {kind: node.KindRichText, props: node.Props{Spans: []node.Span{{Text: "ab"}, {Text: "cde"}}}, want: geom.Size{Width: 5, Height: 1}},
		"default progress": {kind: node.KindProgress, props: node.Props{}, want: geom.Size{Width: 10, Height: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := node.NewArena(1)
			got, err := Measure(a.New(tt.kind, tt.props), 5, 10, tt.axis, nil)
			if err != nil {
				t.Fatalf("Measure() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMeasure_Containers(t *testing.T) {
	a := node.NewArena(8)
	row := a.Row(node.Props{Gap: 1, Border: node.BorderSingle},
		a.Text("ab", node.Props{}),
		a.Text("cde", node.Props{}),
	)
	got, err := Measure(row, 80, 24, geom.AxisColumn, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := (geom.Size{Width: 8, Height: 3}); got != want {
		t.Errorf("row = %+v, want %+v", got, want)
	}

	col := a.Column(node.Props{Gap: 2},
		a.Text("ab", node.Props{}),
		a.Text("cde", node.Props{}),
	)
	got, _ = Measure(col, 80, 24, geom.AxisColumn, nil)
	if want := (geom.Size{Width: 3, Height: 4}); got != want {
		t.Errorf("column = %+v, want %+v", got, want)
	}
}
