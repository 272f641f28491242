package testing

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/gesture"
)

// Tap delivers a touch down and up at the same location.
func Tap(r gesture.Recognizer, at geometry.Point) {
	r.Handle(gesture.Event{Phase: gesture.PhaseBegan, Location: at})
	r.Handle(gesture.Event{Phase: gesture.PhaseEnded, Location: at})
}

// Drag delivers a began event at from, steps changed events moving
// linearly by delta and an ended event at from+delta.
func Drag(r gesture.Recognizer, from, delta geometry.Point, steps int) {
	drag(r, from, delta, steps, gesture.PhaseEnded)
}

// DragCancel is Drag with the final event reported as cancelled.
func DragCancel(r gesture.Recognizer, from, delta geometry.Point, steps int) {
	drag(r, from, delta, steps, gesture.PhaseCancelled)
}

// DragBy delivers only the began and changed events of a drag, leaving the
// gesture in progress.
func DragBy(r gesture.Recognizer, from, delta geometry.Point, steps int) {
	r.Handle(gesture.Event{Phase: gesture.PhaseBegan, Location: from})
	move(r, from, delta, steps)
}

// Release ends a gesture left in progress by DragBy.
func Release(r gesture.Recognizer, from, delta geometry.Point) {
	r.Handle(gesture.Event{Phase: gesture.PhaseEnded, Location: from.Add(delta), Translation: delta})
}

func drag(r gesture.Recognizer, from, delta geometry.Point, steps int, last gesture.Phase) {
	DragBy(r, from, delta, steps)
	r.Handle(gesture.Event{Phase: last, Location: from.Add(delta), Translation: delta})
}

func move(r gesture.Recognizer, from, delta geometry.Point, steps int) {
	steps = max(steps, 1)
	for i := 1; i <= steps; i++ {
		t := geometry.Point{}.Lerp(delta, float64(i)/float64(steps))
		r.Handle(gesture.Event{Phase: gesture.PhaseChanged, Location: from.Add(t), Translation: t})
	}
}

// Pinch delivers a pinch centered at at, scaling from 1 to scale over
// steps changed events.
func Pinch(r gesture.Recognizer, at geometry.Point, scale float64, steps int) {
	steps = max(steps, 1)
	r.Handle(gesture.Event{Phase: gesture.PhaseBegan, Location: at, Scale: 1})
	for i := 1; i <= steps; i++ {
		s := geometry.Lerp(1, scale, float64(i)/float64(steps))
		r.Handle(gesture.Event{Phase: gesture.PhaseChanged, Location: at, Scale: s})
	}
	r.Handle(gesture.Event{Phase: gesture.PhaseEnded, Location: at, Scale: scale})
}
