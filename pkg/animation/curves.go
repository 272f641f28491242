package animation

import "math"

// Easing curves transform linear animation progress into natural-feeling motion.
//
// Each curve is a function that takes a value t in [0, 1] and returns a
// transformed value. Every bundled curve maps 0 to 0 and 1 to 1; the bounce
// family stays inside [0, 1] while CSS-style beziers may overshoot.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Polynomial curves: [QuadraticIn], [QuadraticOut], [QuadraticInOut],
// [CubicIn], [CubicOut], [CubicInOut].
// Bounce curves: [BounceIn], [BounceOut], [BounceInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier().

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Use for elements that stay on screen but change state.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// QuadraticIn accelerates from zero velocity.
func QuadraticIn(t float64) float64 {
	return t * t
}

// QuadraticOut decelerates to zero velocity.
func QuadraticOut(t float64) float64 {
	return -(t * (t - 2))
}

// QuadraticInOut accelerates until halfway, then decelerates. Side panels
// use it for programmatic show and hide.
func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return (-2 * t * t) + (4 * t) - 1
}

// CubicIn accelerates from zero velocity.
func CubicIn(t float64) float64 {
	return t * t * t
}

// CubicOut decelerates to zero velocity.
func CubicOut(t float64) float64 {
	f := t - 1
	return f*f*f + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// BounceOut settles into the end value with three decaying bounces.
func BounceOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 4.0/11.0:
		return (121 * t * t) / 16
	case t < 8.0/11.0:
		return (363.0/40.0)*t*t - (99.0/10.0)*t + 17.0/5.0
	case t < 9.0/10.0:
		return (4356.0/361.0)*t*t - (35442.0/1805.0)*t + 16061.0/1805.0
	default:
		return (54.0/5.0)*t*t - (513.0/25.0)*t + 268.0/25.0
	}
}

// BounceIn is BounceOut mirrored in time.
func BounceIn(t float64) float64 {
	return 1 - BounceOut(1-t)
}

// BounceInOut bounces in over the first half and out over the second.
func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * BounceIn(t*2)
	}
	return 0.5 * (BounceOut(t*2-1) + 1)
}

// Curves maps configuration names to bundled curves.
var Curves = map[string]Curve{
	"linear":         LinearCurve,
	"ease":           Ease,
	"easeIn":         EaseIn,
	"easeOut":        EaseOut,
	"easeInOut":      EaseInOut,
	"quadraticIn":    QuadraticIn,
	"quadraticOut":   QuadraticOut,
	"quadraticInOut": QuadraticInOut,
	"cubicIn":        CubicIn,
	"cubicOut":       CubicOut,
	"cubicInOut":     CubicInOut,
	"bounceIn":       BounceIn,
	"bounceOut":      BounceOut,
	"bounceInOut":    BounceInOut,
}

// CubicBezier returns the curve of CSS cubic-bezier(x1, y1, x2, y2): a bezier
// from (0,0) to (1,1) with control points (x1,y1) and (x2,y2). Input
// outside [0, 1] is clamped.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	b := bezier{x: newCubic(x1, x2), y: newCubic(y1, y2)}
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return b.y.at(b.param(t))
	}
}

// cubic is one bezier coordinate a*u^3 + b*u^2 + c*u over the parameter u.
type cubic struct{ a, b, c float64 }

func newCubic(p1, p2 float64) cubic {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return cubic{a: 1 - c - b, b: b, c: c}
}

func (p cubic) at(u float64) float64 {
	return ((p.a*u+p.b)*u + p.c) * u
}

func (p cubic) slope(u float64) float64 {
	return (3*p.a*u+2*p.b)*u + p.c
}

type bezier struct{ x, y cubic }

const bezierTolerance = 1e-7

// param returns the parameter whose x coordinate is x. Newton steps usually
// land within a few iterations; bisection over [0, 1] covers flat slopes.
func (b bezier) param(x float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		err := b.x.at(u) - x
		if math.Abs(err) < bezierTolerance {
			return clampUnit(u)
		}
		d := b.x.slope(u)
		if math.Abs(d) < bezierTolerance {
			break
		}
		u -= err / d
	}
	lo, hi := 0.0, 1.0
	u = x
	for i := 0; i < 32; i++ {
		err := b.x.at(u) - x
		if math.Abs(err) < bezierTolerance {
			break
		}
		if err > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
