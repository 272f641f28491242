package sidepanel

import (
	"fmt"
	"time"

	"github.com/go-drift/quickly/pkg/animation"
)

// DefaultVelocity is the panel speed in points per second used when
// Options.Velocity is not positive.
const DefaultVelocity = 1500.0

// Options configures one side of a Machine.
type Options struct {
	// Size is the panel width and the distance the content slides.
	Size float64 `yaml:"size"`
	// Limit is the drag distance past which a released drag commits.
	// Zero or negative means half of Size.
	Limit float64 `yaml:"limit"`
	// Velocity is the animation speed in points per second. Zero or
	// negative means DefaultVelocity.
	Velocity float64 `yaml:"velocity"`
	// Interactive allows drags to reveal and dismiss the panel.
	Interactive bool `yaml:"interactive"`
	// Curve names an entry of animation.Curves easing transitions that start
	// at rest. Empty means quadraticInOut.
	Curve string `yaml:"curve,omitempty"`
}

// DefaultOptions returns interactive options for a panel of size.
func DefaultOptions(size float64) Options {
	return Options{Size: size, Interactive: true}
}

// Validate reports options no machine can honor.
func (o Options) Validate() error {
	switch {
	case o.Size < 0:
		return fmt.Errorf("size %g is negative", o.Size)
	case o.Limit > o.Size && o.Size > 0:
		return fmt.Errorf("limit %g exceeds size %g", o.Limit, o.Size)
	case o.Velocity < 0:
		return fmt.Errorf("velocity %g is negative", o.Velocity)
	}
	if _, ok := animation.Curves[o.Curve]; o.Curve != "" && !ok {
		return fmt.Errorf("unknown curve %q", o.Curve)
	}
	return nil
}

func (o Options) curve() animation.Curve {
	if c, ok := animation.Curves[o.Curve]; ok {
		return c
	}
	return animation.QuadraticInOut
}

// limit returns the effective commit distance.
func (o Options) limit() float64 {
	if o.Limit > 0 {
		return o.Limit
	}
	return o.Size / 2
}

func (o Options) velocity() float64 {
	if o.Velocity > 0 {
		return o.Velocity
	}
	return DefaultVelocity
}

// travel converts a distance into animation time at the panel velocity.
func (o Options) travel(distance float64) time.Duration {
	if distance <= 0 {
		return 0
	}
	return time.Duration(distance / o.velocity() * float64(time.Second))
}

// progress maps a drag distance onto [0, 1]. A panel without size is
// always fully travelled.
func (o Options) progress(distance float64) float64 {
	if o.Size <= 0 {
		return 1
	}
	return min(max(distance, 0), o.Size) / o.Size
}
