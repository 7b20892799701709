package node

import (
	"testing"

	"github.com/grindlemire/go-tuicore/internal/geom"
)

func TestArena_AssignsDistinctHandles(t *testing.T) {
	a := NewArena(4)
	first := a.Text("same", Props{})
	second := a.Text("same", Props{})

	if first.Handle() == 0 || second.Handle() == 0 {
		t.Fatal("handles must never be zero")
	}
	if first.Handle() == second.Handle() {
		t.Errorf("structurally identical nodes share handle %d", first.Handle())
	}
	if got := a.Get(second.Handle()); got != second {
		t.Errorf("Get(%d) = %p, want %p", second.Handle(), got, second)
	}
}

func TestArena_ResetKeepsHandlesMonotonic(t *testing.T) {
	a := NewArena(2)
	old := a.Text("a", Props{})
	a.Reset()

	if a.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", a.Len())
	}
	if got := a.Get(old.Handle()); got != nil {
		t.Errorf("Get(released handle) = %p, want nil", got)
	}

	fresh := a.Text("a", Props{})
	if fresh.Handle() <= old.Handle() {
		t.Errorf("handle after Reset = %d, want > %d", fresh.Handle(), old.Handle())
	}
	if got := a.Get(fresh.Handle()); got != fresh {
		t.Errorf("Get(fresh) = %p, want %p", got, fresh)
	}
}

func TestArena_NewInstanceKeepsID(t *testing.T) {
	a := NewArena(2)
	n := a.NewInstance(42, KindButton, Props{Label: "OK"})
	if n.Instance() != 42 {
		t.Errorf("Instance() = %d, want 42", n.Instance())
	}
	if n.Kind() != KindButton {
		t.Errorf("Kind() = %v, want button", n.Kind())
	}
}

func TestArena_ChildrenAreCopied(t *testing.T) {
	a := NewArena(4)
	kids := []*Node{a.Text("x", Props{}), a.Text("y", Props{})}
	parent := a.Column(Props{}, kids...)
	kids[0] = nil

	if parent.Children()[0] == nil {
		t.Error("mutating the caller's slice changed the node's children")
	}
}

func TestWalk_Order(t *testing.T) {
	a := NewArena(8)
	root := a.Column(Props{},
		a.Row(Props{}, a.Text("a", Props{}), a.Text("b", Props{})),
		a.Text("c", Props{}),
	)

	var texts []string
	Walk(root, func(n, parent *Node) bool {
		if n == root && parent != nil {
			t.Error("root should have nil parent")
		}
		if n.Kind() == KindText {
			texts = append(texts, n.Props().Text)
		}
		return true
	})

	want := []string{"a", "b", "c"}
	if len(texts) != len(want) {
		t.Fatalf("visited %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
	if got := Count(root); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func TestProps_BorderEdges(t *testing.T) {
	type tc struct {
		props Props
		want  geom.Edges
	}

	tests := map[string]tc{
		"no border": {
			props: Props{},
			want:  geom.Edges{},
		},
		"border defaults to all sides": {
			props: Props{Border: BorderSingle},
			want:  geom.EdgeAll(1),
		},
		"top and left only": {
			props: Props{Border: BorderRounded, BorderSides: SideTop | SideLeft},
			want:  geom.Edges{Top: 1, Left: 1},
		},
		"sides ignored without border": {
			props: Props{BorderSides: SidesAll},
			want:  geom.Edges{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.props.BorderEdges(); got != tt.want {
				t.Errorf("BorderEdges() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := KindPagination.String(); got != "pagination" {
		t.Errorf("String() = %q, want pagination", got)
	}
	if got := Kind(250).String(); got != "kind(250)" {
		t.Errorf("String() = %q, want kind(250)", got)
	}
	if Kind(250).Valid() {
		t.Error("Kind(250).Valid() = true, want false")
	}
}
