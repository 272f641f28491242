// Package gesture provides the recognizer abstraction layered on top of views.
//
// A platform gesture backend recognizes touches natively and reports each
// phase through [Recognizer.Handle]. Recognizers gate the start with
// ShouldBegin, expose arbitration predicates to the backend and fan the phases
// out to begin/change/cancel/end callbacks.
//
// Example (horizontal pan driving a side panel):
//
//	pan := &gesture.Pan{}
//	pan.OnShouldBegin = func() bool { return machine.ShouldBeginDrag(pan.Translation()) }
//	pan.OnBegin = func() { machine.BeginDrag(pan.Location()) }
//	pan.OnChange = func() { machine.ChangeDrag(pan.Location()) }
//	pan.OnCancel = func() { machine.EndDrag(pan.Location(), true) }
//	pan.OnEnd = func() { machine.EndDrag(pan.Location(), false) }
package gesture

import (
	"fmt"

	"github.com/go-drift/quickly/pkg/errors"
	"github.com/go-drift/quickly/pkg/geometry"
)

// Phase is the lifecycle phase of a native gesture event.
type Phase int

const (
	// PhaseBegan is the first event of a recognized gesture.
	PhaseBegan Phase = iota
	// PhaseChanged reports movement of a recognized gesture.
	PhaseChanged
	// PhaseEnded reports the gesture finished normally.
	PhaseEnded
	// PhaseCancelled reports the system interrupted the gesture.
	PhaseCancelled
	// PhaseFailed reports the gesture stopped without being recognized.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Event is one gesture report in the recognizing view's coordinate space.
type Event struct {
	Phase Phase
	// Location is the current touch location.
	Location geometry.Point
	// Translation is the offset from the location where the gesture began.
	Translation geometry.Point
	// Scale is the pinch scale factor relative to the start.
	Scale float64
	// Velocity is the pinch scale velocity in scale factor per second.
	Velocity float64
}

// State is the recognizer state after the last handled event.
type State int

const (
	// StatePossible means no gesture is in progress.
	StatePossible State = iota
	// StateActive means a gesture began and has not finished.
	StateActive
	// StateEnded means the last gesture finished normally.
	StateEnded
	// StateCancelled means the last gesture was cancelled.
	StateCancelled
	// StateFailed means the last gesture was refused by ShouldBegin.
	StateFailed
)

// Recognizer is the contract between a view and the gesture backend.
type Recognizer interface {
	// Handle processes one native event.
	Handle(event Event)

	// IsEnabled reports whether the backend should deliver events.
	IsEnabled() bool

	// State returns the state after the last handled event.
	State() State

	// ShouldBegin reports whether a starting gesture may be recognized.
	ShouldBegin() bool

	// ShouldSimultaneously reports whether this recognizer may run
	// together with other.
	ShouldSimultaneously(other Recognizer) bool

	// ShouldRequireFailure reports whether this recognizer waits for
	// other to fail before it begins.
	ShouldRequireFailure(other Recognizer) bool

	// ShouldBeRequiredToFailBy reports whether other waits for this
	// recognizer to fail.
	ShouldBeRequiredToFailBy(other Recognizer) bool
}

// Simultaneous reports whether either recognizer allows running together.
func Simultaneous(a, b Recognizer) bool {
	return a.ShouldSimultaneously(b) || b.ShouldSimultaneously(a)
}

// Base implements the predicates and phase callbacks shared by every
// recognizer. Callbacks that are nil are skipped; predicates that are nil
// answer true for ShouldBegin and false otherwise.
type Base struct {
	Disabled bool

	OnShouldBegin              func() bool
	OnShouldSimultaneously     func(other Recognizer) bool
	OnShouldRequireFailure     func(other Recognizer) bool
	OnShouldBeRequiredToFailBy func(other Recognizer) bool

	OnBegin  func()
	OnChange func()
	OnCancel func()
	OnEnd    func()

	state    State
	location geometry.Point
}

// IsEnabled reports whether the recognizer accepts events.
func (b *Base) IsEnabled() bool { return !b.Disabled }

// State returns the state after the last handled event.
func (b *Base) State() State { return b.state }

// Location returns the location of the last handled event.
func (b *Base) Location() geometry.Point { return b.location }

func (b *Base) ShouldBegin() bool {
	if b.OnShouldBegin == nil {
		return true
	}
	return b.OnShouldBegin()
}

func (b *Base) ShouldSimultaneously(other Recognizer) bool {
	return b.OnShouldSimultaneously != nil && b.OnShouldSimultaneously(other)
}

func (b *Base) ShouldRequireFailure(other Recognizer) bool {
	return b.OnShouldRequireFailure != nil && b.OnShouldRequireFailure(other)
}

func (b *Base) ShouldBeRequiredToFailBy(other Recognizer) bool {
	return b.OnShouldBeRequiredToFailBy != nil && b.OnShouldBeRequiredToFailBy(other)
}

// IsActive reports whether a gesture began and has not finished.
func (b *Base) IsActive() bool { return b.state == StateActive }

// dispatch maps a phase onto state and callbacks. update runs before the
// callback so the callback observes the event's values.
func (b *Base) dispatch(op string, event Event, update func()) {
	defer errors.Recover(op)
	if b.Disabled {
		return
	}
	switch event.Phase {
	case PhaseBegan:
		b.location = event.Location
		update()
		if !b.ShouldBegin() {
			b.state = StateFailed
			return
		}
		b.state = StateActive
		call(b.OnBegin)
	case PhaseChanged:
		if b.state != StateActive {
			return
		}
		b.location = event.Location
		update()
		call(b.OnChange)
	case PhaseCancelled:
		if b.state != StateActive {
			return
		}
		b.location = event.Location
		update()
		b.state = StateCancelled
		call(b.OnCancel)
	case PhaseEnded, PhaseFailed:
		if b.state != StateActive {
			return
		}
		b.location = event.Location
		update()
		b.state = StateEnded
		call(b.OnEnd)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
