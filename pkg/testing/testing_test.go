package testing

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/quickly/pkg/animation"
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/view"
	"github.com/google/go-cmp/cmp"
)

func TestFakeClock(t *testing.T) {
	clock := NewFakeClock()
	if !clock.Now().Equal(Epoch) {
		t.Fatalf("Now() = %v, want %v", clock.Now(), Epoch)
	}
	clock.Advance(time.Second)
	clock.Advance(500 * time.Millisecond)
	if got := clock.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 1.5s", got)
	}
}

func TestPumpAndSettle(t *testing.T) {
	tester := NewViewTester(geometry.Size{Width: 100, Height: 100})
	done := false
	tester.Env().Runner.Run(animation.Animation{
		Duration:   100 * time.Millisecond,
		Completion: func() { done = true },
	})
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("animation did not complete")
	}
	if got := tester.Clock().Elapsed(); got != 7*FrameDuration {
		t.Errorf("settled after %v, want %v", got, 7*FrameDuration)
	}
}

func TestPumpAndSettleTimeout(t *testing.T) {
	tester := NewViewTester(geometry.Size{Width: 100, Height: 100})
	tester.Env().Runner.Run(animation.Animation{Duration: time.Minute})
	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}

func TestMountAndDump(t *testing.T) {
	tester := NewViewTester(geometry.Size{Width: 100, Height: 100})
	env := tester.Env()
	cell := func(name string) *layout.Item {
		return layout.NewItem(view.NewCustom(env, name, layout.NewSingleLayout(nil, geometry.Inset{Top: 10, Bottom: 10})))
	}
	list := view.NewCustom(env, "List", layout.NewStackLayout(layout.Vertical, geometry.Inset{}, 5, cell("A"), cell("B")))
	tester.Mount(list)

	var b strings.Builder
	if err := tester.Dump(&b); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Root (0,0 100x100)",
		"  List (0,0 100x100)",
		"    A (0,0 100x20)",
		"    B (0,25 100x20)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("dump (-want +got):\n%s", diff)
	}
}

func TestDragEvents(t *testing.T) {
	var got []geometry.Point
	pan := &gesture.Pan{}
	pan.OnChange = func() { got = append(got, pan.Translation()) }
	ended := false
	pan.OnEnd = func() { ended = true }

	Drag(pan, geometry.Point{X: 10, Y: 10}, geometry.Point{X: 40}, 4)
	want := []geometry.Point{{X: 10}, {X: 20}, {X: 30}, {X: 40}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("translations (-want +got):\n%s", diff)
	}
	if !ended || pan.Location() != (geometry.Point{X: 50, Y: 10}) {
		t.Errorf("ended=%v location=%+v", ended, pan.Location())
	}
}

func TestDragCancelAndTap(t *testing.T) {
	cancelled := false
	pan := &gesture.Pan{}
	pan.OnCancel = func() { cancelled = true }
	DragCancel(pan, geometry.Point{}, geometry.Point{X: -10}, 1)
	if !cancelled {
		t.Error("cancel not delivered")
	}

	taps := 0
	Tap(&gesture.Tap{OnTriggered: func() { taps++ }}, geometry.Point{X: 1, Y: 1})
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestPinchEvents(t *testing.T) {
	pinch := &gesture.Pinch{}
	var scales []float64
	pinch.OnChange = func() { scales = append(scales, pinch.Scale()) }
	Pinch(pinch, geometry.Point{}, 2, 2)
	if diff := cmp.Diff([]float64{1.5, 2}, scales); diff != "" {
		t.Errorf("scales (-want +got):\n%s", diff)
	}
}
