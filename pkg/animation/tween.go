package animation

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/native"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 progress a [Task] hands its processing callback to any
// value range or type. Use the helper constructors ([TweenFloat64],
// [TweenPoint], [TweenRect]) for common types, or create custom tweens with a
// Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Processing returns a processing callback that hands the interpolated
// value to apply on every tick.
func (tw *Tween[T]) Processing(apply func(T)) func(float64) {
	return func(progress float64) {
		apply(tw.Evaluate(progress))
	}
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return geometry.Lerp(a, b, t)
}

// LerpPoint linearly interpolates between two points.
func LerpPoint(a, b geometry.Point, t float64) geometry.Point {
	return a.Lerp(b, t)
}

// LerpRect linearly interpolates origin and size between two rects.
func LerpRect(a, b geometry.Rect, t float64) geometry.Rect {
	return a.Lerp(b, t)
}

// LerpInset linearly interpolates between two insets.
func LerpInset(a, b geometry.Inset, t float64) geometry.Inset {
	return geometry.Inset{
		Top:    LerpFloat64(a.Top, b.Top, t),
		Left:   LerpFloat64(a.Left, b.Left, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
	}
}

// LerpColor linearly interpolates each channel of two colors.
func LerpColor(a, b native.Color, t float64) native.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	channel := func(x, y uint8) uint32 {
		return uint32(uint8(LerpFloat64(float64(x), float64(y), t)))
	}
	return native.Color(channel(ar, br)<<24 | channel(ag, bg)<<16 | channel(ab, bb)<<8 | channel(aa, ba))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenPoint creates a tween for points, e.g. a scroll offset.
func TweenPoint(begin, end geometry.Point) *Tween[geometry.Point] {
	return &Tween[geometry.Point]{Begin: begin, End: end, Lerp: LerpPoint}
}

// TweenRect creates a tween for frames.
func TweenRect(begin, end geometry.Rect) *Tween[geometry.Rect] {
	return &Tween[geometry.Rect]{Begin: begin, End: end, Lerp: LerpRect}
}

// TweenInset creates a tween for insets.
func TweenInset(begin, end geometry.Inset) *Tween[geometry.Inset] {
	return &Tween[geometry.Inset]{Begin: begin, End: end, Lerp: LerpInset}
}

// TweenColor creates a tween for colors.
func TweenColor(begin, end native.Color) *Tween[native.Color] {
	return &Tween[native.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
