package geometry

import "math"

// Rect is a rectangle described by its top-left origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// RectFromXYWH constructs a Rect from x, y, width and height values.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{
		Origin: Point{X: x, Y: y},
		Size:   Size{Width: width, Height: height},
	}
}

// RectFromCenter constructs a Rect of the given size centered on center.
func RectFromCenter(center Point, size Size) Rect {
	return Rect{
		Origin: Point{X: center.X - size.Width/2, Y: center.Y - size.Height/2},
		Size:   size,
	}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.MaxX(), Y: r.MaxY()}
}

// Equal reports whether both rectangles match within a small tolerance.
func (r Rect) Equal(other Rect) bool {
	return r.Origin.Equal(other.Origin) && r.Size.Equal(other.Size)
}

// Contains reports whether point lies inside r, edges included.
func (r Rect) Contains(point Point) bool {
	if r.MinX() > point.X || r.MaxX() < point.X {
		return false
	}
	if r.MinY() > point.Y || r.MaxY() < point.Y {
		return false
	}
	return true
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	if r.MinX() > other.MinX() || r.MaxX() < other.MaxX() {
		return false
	}
	if r.MinY() > other.MinY() || r.MaxY() < other.MaxY() {
		return false
	}
	return true
}

// Intersects reports whether r and other overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	if r.MinX() > other.MaxX() || r.MaxX() < other.MinX() {
		return false
	}
	if r.MinY() > other.MaxY() || r.MaxY() < other.MinY() {
		return false
	}
	return true
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.MinX(), other.MinX())
	top := math.Max(r.MinY(), other.MinY())
	right := math.Min(r.MaxX(), other.MaxX())
	bottom := math.Min(r.MaxY(), other.MaxY())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return RectFromXYWH(left, top, right-left, bottom-top)
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.MinX(), other.MinX())
	minY := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return RectFromXYWH(minX, minY, maxX-minX, maxY-minY)
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}

// Lerp interpolates origin and size between r and to.
func (r Rect) Lerp(to Rect, progress float64) Rect {
	return Rect{
		Origin: r.Origin.Lerp(to.Origin, progress),
		Size:   r.Size.Lerp(to.Size, progress),
	}
}

// Inset shrinks r by inset. The resulting size may be negative.
func (r Rect) Inset(inset Inset) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X + inset.Left, Y: r.Origin.Y + inset.Top},
		Size:   r.Size.Inset(inset),
	}
}

// Clamped returns r with a non-negative size.
func (r Rect) Clamped() Rect {
	return Rect{Origin: r.Origin, Size: r.Size.Clamped()}
}

// SplitLeft cuts a column of width left off the left edge.
func (r Rect) SplitLeft(left float64) (Rect, Rect) {
	return RectFromXYWH(r.Origin.X, r.Origin.Y, left, r.Size.Height),
		RectFromXYWH(r.Origin.X+left, r.Origin.Y, r.Size.Width-left, r.Size.Height)
}

// SplitRight cuts a column of width right off the right edge.
func (r Rect) SplitRight(right float64) (Rect, Rect) {
	return RectFromXYWH(r.Origin.X, r.Origin.Y, r.Size.Width-right, r.Size.Height),
		RectFromXYWH(r.MaxX()-right, r.Origin.Y, right, r.Size.Height)
}

// SplitLeftRight cuts columns off both horizontal edges and returns
// left, middle and right.
func (r Rect) SplitLeftRight(left, right float64) (Rect, Rect, Rect) {
	return RectFromXYWH(r.Origin.X, r.Origin.Y, left, r.Size.Height),
		RectFromXYWH(r.Origin.X+left, r.Origin.Y, r.Size.Width-(left+right), r.Size.Height),
		RectFromXYWH(r.MaxX()-right, r.Origin.Y, right, r.Size.Height)
}

// SplitTop cuts a row of height top off the top edge.
func (r Rect) SplitTop(top float64) (Rect, Rect) {
	return RectFromXYWH(r.Origin.X, r.Origin.Y, r.Size.Width, top),
		RectFromXYWH(r.Origin.X, r.Origin.Y+top, r.Size.Width, r.Size.Height-top)
}

// SplitBottom cuts a row of height bottom off the bottom edge.
func (r Rect) SplitBottom(bottom float64) (Rect, Rect) {
	return RectFromXYWH(r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height-bottom),
		RectFromXYWH(r.Origin.X, r.MaxY()-bottom, r.Size.Width, bottom)
}

// SplitTopBottom cuts rows off both vertical edges and returns
// top, middle and bottom.
func (r Rect) SplitTopBottom(top, bottom float64) (Rect, Rect, Rect) {
	return RectFromXYWH(r.Origin.X, r.Origin.Y, r.Size.Width, top),
		RectFromXYWH(r.Origin.X, r.Origin.Y+top, r.Size.Width, r.Size.Height-(top+bottom)),
		RectFromXYWH(r.Origin.X, r.MaxY()-bottom, r.Size.Width, bottom)
}

// AspectFit returns the largest rect with the proportions of size that fits
// inside r, centered.
func (r Rect) AspectFit(size Size) Rect {
	return r.aspect(size, math.Min)
}

// AspectFill returns the smallest rect with the proportions of size that
// covers r, centered.
func (r Rect) AspectFill(size Size) Rect {
	return r.aspect(size, math.Max)
}

func (r Rect) aspect(size Size, pick func(a, b float64) float64) Rect {
	iw, ih := math.Floor(size.Width), math.Floor(size.Height)
	if iw <= 0 || ih <= 0 {
		return RectFromXYWH(r.Center().X, r.Center().Y, 0, 0)
	}
	bw, bh := math.Floor(r.Size.Width), math.Floor(r.Size.Height)
	scale := pick(bw/iw, bh/ih)
	rw, rh := iw*scale, ih*scale
	return RectFromXYWH(r.Origin.X+(bw-rw)/2, r.Origin.Y+(bh-rh)/2, rw, rh)
}
