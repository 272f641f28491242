// Package testing provides helpers for testing view trees without a
// platform backend.
//
// # Quick Start
//
// Create a tester, mount a view and drive frames:
//
//	func TestSwipe(t *testing.T) {
//	    tester := quicklytest.NewViewTester(geometry.Size{Width: 320, Height: 44})
//	    cell := widgets.NewSwipeCell(tester.Env(), "Row", widgets.NewLabel(tester.Env(), "Inbox"))
//	    cell.SetTrailing(widgets.NewLabel(tester.Env(), "Delete"), sidepanel.DefaultOptions(80))
//	    tester.Mount(cell)
//
//	    quicklytest.Drag(cell.PanGesture(), geometry.Point{X: 300, Y: 20}, geometry.Point{X: -100}, 4)
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Animation Testing
//
// The tester's runner reads a [FakeClock]. Pump advances it by one frame:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Frame Dumps
//
// [ViewTester.Dump] renders the headless backend tree as an indented list of
// frames, suitable for comparing with cmp.Diff.
package testing
