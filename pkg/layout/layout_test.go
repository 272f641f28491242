package layout

import (
	"math"
	"slices"
	"testing"

	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/google/go-cmp/cmp"
)

// fixedView measures as a fixed size, or fills the available width when
// width is negative.
type fixedView struct {
	width, height float64
	frame         geometry.Rect
	appeared      bool
}

func (v *fixedView) Size(available geometry.Size) geometry.Size {
	w := v.width
	if w < 0 {
		w = available.Width
	}
	return geometry.Size{Width: w, Height: v.height}
}

func (v *fixedView) Appear(Parent)                { v.appeared = true }
func (v *fixedView) Disappear()                   { v.appeared = false }
func (v *fixedView) IsAppeared() bool             { return v.appeared }
func (v *fixedView) SetFrame(frame geometry.Rect) { v.frame = frame }

type countingDelegate struct {
	needUpdate, updateIfNeeded int
}

func (d *countingDelegate) LayoutNeedUpdate()     { d.needUpdate++ }
func (d *countingDelegate) LayoutUpdateIfNeeded() { d.updateIfNeeded++ }

func rect(x, y, w, h float64) geometry.Rect { return geometry.RectFromXYWH(x, y, w, h) }

func frameDiff(t *testing.T, name string, want, got geometry.Rect) {
	t.Helper()
	if !want.Equal(got) {
		t.Errorf("%s frame mismatch (-want +got):\n%s", name, cmp.Diff(want, got))
	}
}

func TestBase_NotifiesDelegate(t *testing.T) {
	d := &countingDelegate{}
	l := NewSingleLayout(NewItem(&fixedView{}), geometry.Inset{})
	l.SetNeedUpdate()
	if d.needUpdate != 0 {
		t.Fatal("unregistered delegate was notified")
	}
	l.SetDelegate(d)
	l.SetInset(geometry.UniformInset(4))
	l.UpdateIfNeeded()
	if d.needUpdate != 1 || d.updateIfNeeded != 1 {
		t.Errorf("delegate counts = %+v, want 1/1", *d)
	}
	l.SetDelegate(nil)
	l.SetNeedUpdate()
	if d.needUpdate != 1 {
		t.Error("delegate notified after unregistering")
	}
}

func TestSingleLayout(t *testing.T) {
	item := NewItem(&fixedView{width: -1, height: 20})
	l := NewSingleLayout(item, geometry.SymmetricInset(10, 5))

	size := l.Size(geometry.Size{Width: 200, Height: 1000})
	if want := (geometry.Size{Width: 200, Height: 30}); !size.Equal(want) {
		t.Errorf("Size = %+v, want %+v", size, want)
	}
	got := l.Layout(rect(0, 0, 200, 30))
	if !got.Equal(geometry.Size{Width: 200, Height: 30}) {
		t.Errorf("Layout returned %+v", got)
	}
	frameDiff(t, "item", rect(10, 5, 180, 20), item.Frame)
}

func TestStackLayout_VerticalLayoutAndCulling(t *testing.T) {
	a := NewItem(&fixedView{width: -1, height: 40})
	b := NewItem(&fixedView{width: -1, height: 40})
	c := NewItem(&fixedView{width: -1, height: 40})
	l := NewStackLayout(Vertical, geometry.UniformInset(10), 5, a, b, c)

	got := l.Layout(rect(0, 0, 100, 500))
	if want := (geometry.Size{Width: 100, Height: 10 + 40 + 5 + 40 + 5 + 40 + 10}); !got.Equal(want) {
		t.Errorf("Layout = %+v, want %+v", got, want)
	}
	frameDiff(t, "a", rect(10, 10, 80, 40), a.Frame)
	frameDiff(t, "b", rect(10, 55, 80, 40), b.Frame)
	frameDiff(t, "c", rect(10, 100, 80, 40), c.Frame)

	visible := l.Items(rect(0, 60, 100, 30))
	if len(visible) != 1 || visible[0] != b {
		t.Errorf("Items(60..90) = %v, want only b", visible)
	}
	if n := len(l.Items(rect(0, 0, 100, 500))); n != 3 {
		t.Errorf("Items(all) = %d items, want 3", n)
	}
}

func TestStackLayout_SizeDoesNotMutateFrames(t *testing.T) {
	a := NewItem(&fixedView{width: -1, height: 40})
	l := NewStackLayout(Vertical, geometry.Inset{}, 0, a)
	a.Frame = rect(1, 2, 3, 4)
	l.Size(geometry.Size{Width: 100, Height: math.Inf(1)})
	frameDiff(t, "a", rect(1, 2, 3, 4), a.Frame)
}

func TestStackLayout_HorizontalUnboundedHeight(t *testing.T) {
	a := NewItem(&fixedView{width: 30, height: 10})
	b := NewItem(&fixedView{width: 20, height: 25})
	l := NewStackLayout(Horizontal, geometry.Inset{}, 10, a, b)

	size := l.Size(geometry.Size{Width: 500, Height: math.Inf(1)})
	if want := (geometry.Size{Width: 60, Height: 25}); !size.Equal(want) {
		t.Errorf("Size = %+v, want %+v", size, want)
	}
	l.Layout(rect(0, 0, 60, 25))
	frameDiff(t, "b", rect(40, 0, 20, 25), b.Frame)
}

func TestStackLayout_InsertDelete(t *testing.T) {
	d := &countingDelegate{}
	a, b, c := NewItem(&fixedView{}), NewItem(&fixedView{}), NewItem(&fixedView{})
	l := NewStackLayout(Vertical, geometry.Inset{}, 0, a)
	l.SetDelegate(d)

	l.Insert(0, b)
	l.Insert(99, c)
	if !slices.Equal([]*Item{b, a, c}, l.AllItems()) {
		t.Errorf("after insert got %v, want [b a c]", l.AllItems())
	}
	l.Delete(a, NewItem(&fixedView{}))
	if !slices.Equal([]*Item{b, c}, l.AllItems()) {
		t.Errorf("after delete got %v, want [b c]", l.AllItems())
	}
	l.Delete(a)
	if d.needUpdate != 3 {
		t.Errorf("needUpdate = %d, want 3 (no-op delete must not notify)", d.needUpdate)
	}
}

func TestSidePanelLayout_Frames(t *testing.T) {
	content := NewItem(&fixedView{width: -1, height: 44})
	leading := NewItem(&fixedView{width: 80, height: 44})
	trailing := NewItem(&fixedView{width: 60, height: 44})
	l := NewSidePanelLayout(content, false)
	l.SetPanel(SideLeading, leading, 80)
	l.SetPanel(SideTrailing, trailing, 60)
	bounds := rect(0, 0, 320, 44)

	tests := []struct {
		name         string
		state        SideState
		content      geometry.Rect
		panel        *Item
		panelFrame   geometry.Rect
		visibleCount int
	}{
		{"idle", Idle, bounds, nil, geometry.Rect{}, 1},
		{"leading closed", Leading(0), bounds, leading, rect(-80, 0, 80, 44), 2},
		{"leading half", Leading(0.5), rect(40, 0, 320, 44), leading, rect(-40, 0, 80, 44), 2},
		{"leading open", Leading(1), rect(80, 0, 320, 44), leading, rect(0, 0, 80, 44), 2},
		{"trailing closed", Trailing(0), bounds, trailing, rect(320, 0, 60, 44), 2},
		{"trailing open", Trailing(1), rect(-60, 0, 320, 44), trailing, rect(260, 0, 60, 44), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l.SetState(tt.state)
			l.Layout(bounds)
			frameDiff(t, "content", tt.content, content.Frame)
			if tt.panel != nil {
				frameDiff(t, "panel", tt.panelFrame, tt.panel.Frame)
			}
			items := l.Items(bounds)
			if len(items) != tt.visibleCount {
				t.Fatalf("Items = %d, want %d", len(items), tt.visibleCount)
			}
			if items[len(items)-1] != content {
				t.Error("content must be the last (topmost) item")
			}
		})
	}
}

func TestSidePanelLayout_AbsentPanelDegenerates(t *testing.T) {
	content := NewItem(&fixedView{width: -1, height: 44})
	l := NewSidePanelLayout(content, false)
	l.SetState(Trailing(1))
	l.Layout(rect(0, 0, 320, 44))
	frameDiff(t, "content", rect(0, 0, 320, 44), content.Frame)
}

func TestSidePanelLayout_Size(t *testing.T) {
	content := NewItem(&fixedView{width: -1, height: 44})
	panel := NewItem(&fixedView{width: 80, height: 60})
	available := geometry.Size{Width: 320, Height: 480}

	cell := NewSidePanelLayout(content, false)
	cell.SetPanel(SideLeading, panel, 80)
	if got := cell.Size(available); !got.Equal(geometry.Size{Width: 320, Height: 44}) {
		t.Errorf("idle cell size = %+v", got)
	}
	cell.SetState(Leading(0.5))
	if got := cell.Size(available); !got.Equal(geometry.Size{Width: 320, Height: 60}) {
		t.Errorf("revealed cell size = %+v, want panel height", got)
	}

	container := NewSidePanelLayout(content, true)
	if got := container.Size(available); !got.Equal(available) {
		t.Errorf("container size = %+v, want available", got)
	}
}

func TestSideState(t *testing.T) {
	if s := Leading(1.5); s.Progress != 1 {
		t.Errorf("Leading(1.5).Progress = %v, want clamped 1", s.Progress)
	}
	if s := Trailing(-1); s.Progress != 0 {
		t.Errorf("Trailing(-1).Progress = %v, want clamped 0", s.Progress)
	}
	if !Leading(1).IsOpen(SideLeading) || Leading(0.9).IsOpen(SideLeading) || Leading(1).IsOpen(SideTrailing) {
		t.Error("IsOpen mismatch")
	}
	if got := Trailing(0.5).String(); got != "trailing(0.5)" {
		t.Errorf("String() = %q", got)
	}
	if got := Idle.String(); got != "idle" {
		t.Errorf("String() = %q", got)
	}
}

func TestContentValueLayout(t *testing.T) {
	content := &fixedView{width: -1, height: 20}
	value := &fixedView{width: 50, height: 30}
	l := NewContentValueLayout[*fixedView, *fixedView](content, geometry.UniformInset(4))
	bounds := rect(0, 0, 300, 40)

	l.Layout(bounds)
	frameDiff(t, "content alone", rect(4, 4, 292, 32), l.Content().Item().Frame)
	if l.Value() != nil {
		t.Fatal("value should be absent")
	}

	l.SetValue(value, geometry.SymmetricInset(8, 5))
	l.Layout(bounds)
	// value takes 8 + 50 + 8 = 66 off the right edge.
	frameDiff(t, "content", rect(4, 4, 226, 32), l.Content().Item().Frame)
	frameDiff(t, "value", rect(242, 5, 50, 30), l.Value().Item().Frame)

	size := l.Size(geometry.Size{Width: 300, Height: 1000})
	if want := (geometry.Size{Width: 300, Height: 40}); !size.Equal(want) {
		t.Errorf("Size = %+v, want %+v", size, want)
	}

	l.SetBackground(&fixedView{})
	l.Layout(bounds)
	if n := len(l.Items(bounds)); n != 3 {
		t.Errorf("Items = %d, want background, content and value", n)
	}
}

func TestIconContentDetailValueLayout(t *testing.T) {
	icon := &fixedView{width: 24, height: 24}
	content := &fixedView{width: -1, height: 18}
	detail := &fixedView{width: -1, height: 14}
	value := &fixedView{width: 40, height: 18}
	l := NewIconContentDetailValueLayout[*fixedView, *fixedView, *fixedView, *fixedView](content, geometry.Inset{})
	l.SetIcon(icon, geometry.UniformInset(8))
	l.SetDetail(detail, geometry.Inset{})
	l.SetValue(value, geometry.SymmetricInset(8, 0))
	bounds := rect(0, 0, 320, 40)

	l.Layout(bounds)
	frameDiff(t, "icon", rect(8, 8, 24, 24), l.Icon().Item().Frame)
	frameDiff(t, "content", rect(40, 0, 224, 18), l.Content().Item().Frame)
	frameDiff(t, "detail", rect(40, 18, 224, 22), l.Detail().Item().Frame)
	frameDiff(t, "value", rect(272, 0, 40, 40), l.Value().Item().Frame)

	size := l.Size(geometry.Size{Width: 320, Height: 1000})
	if want := (geometry.Size{Width: 320, Height: 40}); !size.Equal(want) {
		t.Errorf("Size = %+v, want %+v", size, want)
	}

	l.RemoveIcon()
	l.RemoveValue()
	l.RemoveDetail()
	l.Layout(bounds)
	frameDiff(t, "content alone", bounds, l.Content().Item().Frame)
}
