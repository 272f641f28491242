// Package geometry provides the value types shared by layouts, views and
// animations: points, sizes, insets and rectangles.
//
// All derived computations are plain float arithmetic. Splitting a rectangle
// by more than its width, or applying an inset larger than a size, produces
// negative dimensions. Consumers that hand sizes to a native backend clamp
// first with [Size.Clamped] or [Rect.Clamped].
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Lerp linearly interpolates between a and b.
func Lerp(a, b, progress float64) float64 {
	return a + (b-a)*progress
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Point represents a 2D point or vector.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Lerp interpolates between p and to.
func (p Point) Lerp(to Point, progress float64) Point {
	return Point{
		X: Lerp(p.X, to.X, progress),
		Y: Lerp(p.Y, to.Y, progress),
	}
}

// Equal reports whether both points match within a small tolerance.
func (p Point) Equal(other Point) bool {
	return floatEqual(p.X, other.X) && floatEqual(p.Y, other.Y)
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Equal reports whether both sizes match within a small tolerance.
func (s Size) Equal(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}

// Inset shrinks the size by the inset on every side.
// The result may be negative.
func (s Size) Inset(inset Inset) Size {
	return Size{
		Width:  s.Width - inset.Horizontal(),
		Height: s.Height - inset.Vertical(),
	}
}

// Outset grows the size by the inset on every side.
func (s Size) Outset(inset Inset) Size {
	return Size{
		Width:  s.Width + inset.Horizontal(),
		Height: s.Height + inset.Vertical(),
	}
}

// Clamped returns the size with negative components replaced by zero.
func (s Size) Clamped() Size {
	return Size{Width: math.Max(s.Width, 0), Height: math.Max(s.Height, 0)}
}

// Lerp interpolates between s and to.
func (s Size) Lerp(to Size, progress float64) Size {
	return Size{
		Width:  Lerp(s.Width, to.Width, progress),
		Height: Lerp(s.Height, to.Height, progress),
	}
}

// Inset describes distances from the four edges of a rectangle.
type Inset struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// UniformInset returns an inset with the same value on every edge.
func UniformInset(value float64) Inset {
	return Inset{Top: value, Left: value, Bottom: value, Right: value}
}

// SymmetricInset returns an inset with horizontal and vertical values.
func SymmetricInset(horizontal, vertical float64) Inset {
	return Inset{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// Horizontal returns left + right.
func (i Inset) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns top + bottom.
func (i Inset) Vertical() float64 {
	return i.Top + i.Bottom
}
