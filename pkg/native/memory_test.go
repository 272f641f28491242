package native

import (
	"bytes"
	"testing"

	"github.com/go-drift/quickly/pkg/geometry"
)

func TestMemoryHandle_AddChildReparents(t *testing.T) {
	b := NewMemoryBackend()
	a := b.NewHandle("A").(*MemoryHandle)
	c := b.NewHandle("C").(*MemoryHandle)
	child := b.NewHandle("Child").(*MemoryHandle)

	a.AddChild(child)
	c.AddChild(child)

	if len(a.Children) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children))
	}
	if child.Parent != c || len(c.Children) != 1 {
		t.Fatalf("child not attached to new parent")
	}
	child.RemoveFromParent()
	if child.Parent != nil || len(c.Children) != 0 {
		t.Error("RemoveFromParent did not detach")
	}
}

func TestMemoryBackend_CreatedCounts(t *testing.T) {
	b := NewMemoryBackend()
	b.NewHandle("Cell")
	b.NewHandle("Cell")
	b.NewHandle("Panel")
	if got := b.Created("Cell"); got != 2 {
		t.Errorf("Created(Cell) = %d, want 2", got)
	}
	if got := b.Created("Missing"); got != 0 {
		t.Errorf("Created(Missing) = %d, want 0", got)
	}
}

func TestMemoryHandle_DumpUsesRootCoordinates(t *testing.T) {
	b := NewMemoryBackend()
	root := b.Root(geometry.Size{Width: 100, Height: 100})
	outer := b.NewHandle("Outer")
	outer.SetFrame(geometry.RectFromXYWH(10, 10, 50, 50))
	inner := b.NewHandle("Inner")
	inner.SetFrame(geometry.RectFromXYWH(5, 5, 20, 20))
	inner.Apply(Style{Name: "Label", Text: "hi"})
	root.AddChild(outer)
	outer.AddChild(inner)

	var buf bytes.Buffer
	if err := root.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := "Root (0,0 100x100)\n  Outer (10,10 50x50)\n    Label \"hi\" (15,15 20x20)\n"
	if buf.String() != want {
		t.Errorf("Dump =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestStyle_IsOpaque(t *testing.T) {
	white := Color(0xffffffff)
	half := Color(0xffffff80)
	tests := []struct {
		name  string
		style Style
		want  bool
	}{
		{"no color", Style{Alpha: 1}, false},
		{"opaque", Style{Alpha: 1, Color: &white}, true},
		{"translucent color", Style{Alpha: 1, Color: &half}, false},
		{"faded", Style{Alpha: 0.5, Color: &white}, false},
	}
	for _, tt := range tests {
		if got := tt.style.IsOpaque(); got != tt.want {
			t.Errorf("%s: IsOpaque() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCornerRadius_Resolve(t *testing.T) {
	size := geometry.Size{Width: 40, Height: 20}
	if got := (CornerRadius{Auto: true}).Resolve(size); got != 10 {
		t.Errorf("auto radius = %v, want 10", got)
	}
	if got := (CornerRadius{Value: 4}).Resolve(size); got != 4 {
		t.Errorf("fixed radius = %v, want 4", got)
	}
}
