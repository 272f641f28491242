package view

import (
	"testing"

	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/native/nativemock"
	"github.com/golang/mock/gomock"
)

type countingParent struct {
	handle     native.Handle
	needLayout int
}

func (p *countingParent) NativeHandle() native.Handle { return p.handle }
func (p *countingParent) SetNeedLayout()              { p.needLayout++ }

func rect(x, y, w, h float64) geometry.Rect { return geometry.RectFromXYWH(x, y, w, h) }

// row returns a view measuring 40 points tall at any width.
func row(env *Environment, name string) *CustomView {
	return NewCustom(env, name, layout.NewSingleLayout(nil, geometry.Inset{Top: 20, Bottom: 20}))
}

func TestCustomView_AppearUsesReuseCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := nativemock.NewMockBackend(ctrl)
	handle := nativemock.NewMockHandle(ctrl)
	parentHandle := nativemock.NewMockHandle(ctrl)

	backend.EXPECT().NewHandle(CustomKind).Return(handle).Times(1)
	handle.EXPECT().SetFrame(rect(0, 0, 100, 40)).Times(2)
	handle.EXPECT().Apply(gomock.Any()).Times(2)
	handle.EXPECT().RemoveFromParent().Times(2)
	parentHandle.EXPECT().AddChild(handle).Times(2)

	env := NewEnvironment(backend, nil)
	v := row(env, "Row")
	v.SetFrame(rect(0, 0, 100, 40))
	parent := &countingParent{handle: parentHandle}

	v.Appear(parent)
	if !v.IsAppeared() || v.NativeHandle() != handle {
		t.Fatal("view did not take the created handle")
	}
	v.Disappear()
	if env.Cache.Len(CustomKind) != 1 {
		t.Errorf("pool size = %d, want 1", env.Cache.Len(CustomKind))
	}
	v.Appear(parent)
	v.Disappear()
}

func TestCustomView_AppearDisappearCallbacks(t *testing.T) {
	env := NewEnvironment(native.NewMemoryBackend(), nil)
	v := row(env, "Row")
	var events []string
	v.OnAppear = func() { events = append(events, "appear") }
	v.OnDisappear = func() { events = append(events, "disappear") }

	v.Appear(&countingParent{})
	v.Appear(&countingParent{})
	v.Disappear()
	v.Disappear()
	if len(events) != 2 || events[0] != "appear" || events[1] != "disappear" {
		t.Errorf("events = %v, want one appear then one disappear", events)
	}
}

func TestCustomView_VisibleItemDiffing(t *testing.T) {
	backend := native.NewMemoryBackend()
	env := NewEnvironment(backend, nil)
	children := []*CustomView{row(env, "a"), row(env, "b"), row(env, "c")}
	items := make([]*layout.Item, len(children))
	for i, c := range children {
		items[i] = layout.NewItem(c)
	}
	list := NewCustom(env, "List", layout.NewStackLayout(layout.Vertical, geometry.Inset{}, 0, items...))
	root := NewRoot(backend.Root(geometry.Size{Width: 100, Height: 50}), geometry.Size{Width: 100, Height: 50})

	root.Mount(list)
	assertAppeared(t, children, true, true, false)
	if got := backend.Created(CustomKind); got != 3 {
		t.Errorf("created = %d, want 3", got)
	}
	if got := children[1].Frame(); !got.Equal(rect(0, 40, 100, 40)) {
		t.Errorf("b frame = %+v", got)
	}

	root.Resize(geometry.Size{Width: 100, Height: 200})
	root.Flush()
	assertAppeared(t, children, true, true, true)

	root.Resize(geometry.Size{Width: 100, Height: 30})
	root.Flush()
	assertAppeared(t, children, true, false, false)
	if got := env.Cache.Len(CustomKind); got != 2 {
		t.Errorf("pooled = %d, want 2", got)
	}

	root.Resize(geometry.Size{Width: 100, Height: 200})
	root.Flush()
	if got := backend.Created(CustomKind); got != 4 {
		t.Errorf("created = %d, want pooled handles reused", got)
	}
}

func assertAppeared(t *testing.T, views []*CustomView, want ...bool) {
	t.Helper()
	for i, v := range views {
		if v.IsAppeared() != want[i] {
			t.Errorf("%s appeared = %v, want %v", v.Name(), v.IsAppeared(), want[i])
		}
	}
}

func TestCustomView_SizeMismatchNotifiesParent(t *testing.T) {
	env := NewEnvironment(native.NewMemoryBackend(), nil)
	stack := layout.NewStackLayout(layout.Vertical, geometry.Inset{}, 0,
		layout.NewItem(row(env, "a")), layout.NewItem(row(env, "b")))
	v := NewCustom(env, "List", stack)
	parent := &countingParent{}

	v.SetFrame(rect(0, 0, 100, 80))
	v.Appear(parent)
	if parent.needLayout != 0 {
		t.Fatalf("matching size notified parent %d times", parent.needLayout)
	}

	stack.Insert(2, layout.NewItem(row(env, "c")))
	before := parent.needLayout
	v.LayoutIfNeeded()
	if parent.needLayout <= before {
		t.Error("size mismatch did not notify the parent")
	}
}

func TestCustomView_SetFrameClampsNegativeSize(t *testing.T) {
	env := NewEnvironment(native.NewMemoryBackend(), nil)
	v := row(env, "Row")
	v.SetFrame(rect(5, 5, -10, 20))
	if got := v.Frame(); got.Size.Width != 0 || got.Size.Height != 20 || got.Origin.X != 5 {
		t.Errorf("Frame = %+v", got)
	}
}

func TestCustomView_DecorationsReachHandle(t *testing.T) {
	backend := native.NewMemoryBackend()
	env := NewEnvironment(backend, nil)
	v := row(env, "Row")
	v.Appear(&countingParent{})
	h := v.NativeHandle().(*native.MemoryHandle)

	red := native.Color(0xff0000ff)
	v.SetColor(&red)
	v.SetBorder(native.Border{Width: 1, Color: red})
	v.SetCornerRadius(native.CornerRadius{Auto: true})
	v.SetShadow(&native.Shadow{Radius: 4})
	v.SetAlpha(2)

	if h.Style.Color == nil || *h.Style.Color != red {
		t.Error("color not applied")
	}
	if h.Style.Alpha != 1 || h.Style.Border.Width != 1 || !h.Style.CornerRadius.Auto || h.Style.Shadow == nil {
		t.Errorf("style = %+v", h.Style)
	}
	if h.Style.Name != "Row" {
		t.Errorf("name = %q", h.Style.Name)
	}
}

func TestCustomView_Highlight(t *testing.T) {
	env := NewEnvironment(native.NewMemoryBackend(), nil)
	v := row(env, "Row")
	var calls []bool
	v.OnChangeStyle = func(user bool) { calls = append(calls, user) }

	v.SetHighlighted(true, true)
	v.SetHighlighted(true, false)
	v.SetHighlighted(false, false)
	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Errorf("OnChangeStyle calls = %v, want [true false]", calls)
	}
}

func TestCustomView_ReusedHandleIsReconfigured(t *testing.T) {
	backend := native.NewMemoryBackend()
	env := NewEnvironment(backend, nil)
	a, b := row(env, "a"), row(env, "b")
	a.SetFrame(rect(0, 0, 10, 40))
	b.SetFrame(rect(0, 0, 20, 40))

	a.Appear(&countingParent{})
	h := a.NativeHandle()
	a.Disappear()
	b.Appear(&countingParent{})
	if b.NativeHandle() != h {
		t.Fatal("handle not reused")
	}
	mh := h.(*native.MemoryHandle)
	if mh.Style.Name != "b" || mh.Frame.Size.Width != 20 {
		t.Errorf("stale handle state: name=%q frame=%+v", mh.Style.Name, mh.Frame)
	}
}
