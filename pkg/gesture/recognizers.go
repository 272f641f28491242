package gesture

import (
	"github.com/go-drift/quickly/pkg/errors"
	"github.com/go-drift/quickly/pkg/geometry"
)

// Tap recognizes a single tap. The backend reports a recognized tap as one
// PhaseEnded event; OnTriggered fires if ShouldBegin allows it.
type Tap struct {
	Base
	OnTriggered func()
}

func (t *Tap) Handle(event Event) {
	defer errors.Recover("gesture.Tap.Handle")
	if t.Disabled || event.Phase != PhaseEnded {
		return
	}
	t.location = event.Location
	if !t.ShouldBegin() {
		t.state = StateFailed
		return
	}
	t.state = StateEnded
	call(t.OnTriggered)
}

// Pan recognizes a free drag and tracks its translation.
type Pan struct {
	Base
	translation geometry.Point
}

// Translation returns the offset from where the gesture began.
func (p *Pan) Translation() geometry.Point { return p.translation }

func (p *Pan) Handle(event Event) {
	p.dispatch("gesture.Pan.Handle", event, func() {
		p.translation = event.Translation
	})
}

// Pinch recognizes a two-finger pinch and tracks its scale.
type Pinch struct {
	Base
	scale    float64
	velocity float64
}

// Scale returns the scale factor relative to the start of the gesture.
func (p *Pinch) Scale() float64 { return p.scale }

// Velocity returns the scale velocity in scale factor per second.
func (p *Pinch) Velocity() float64 { return p.velocity }

func (p *Pinch) Handle(event Event) {
	p.dispatch("gesture.Pinch.Handle", event, func() {
		p.scale = event.Scale
		p.velocity = event.Velocity
	})
}
