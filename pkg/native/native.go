// Package native defines the contract between the view engine and a
// platform rendering backend.
//
// The engine never talks to a platform toolkit directly. Each view asks a
// [Backend] for a [Handle] of its kind, positions it with SetFrame, attaches
// it to its parent's handle and pushes decorations through Apply. Handles are
// expensive to create, so views recycle them through the reuse cache.
package native

//go:generate mockgen -destination=nativemock/native_mock.go -package=nativemock github.com/go-drift/quickly/pkg/native Backend,Handle

import "github.com/go-drift/quickly/pkg/geometry"

// Handle is a native view object owned by the backend.
type Handle interface {
	// SetFrame positions the handle in its parent's coordinate space.
	SetFrame(frame geometry.Rect)

	// AddChild attaches child as the topmost subview.
	AddChild(child Handle)

	// RemoveFromParent detaches the handle from its parent, if any.
	RemoveFromParent()

	// Apply pushes decorations to the native object.
	Apply(style Style)
}

// Backend creates native handles.
type Backend interface {
	// NewHandle creates a handle for the given kind (e.g., "CustomView").
	NewHandle(kind string) Handle
}

// Color is a packed 0xRRGGBBAA color.
type Color uint32

// RGBA returns the color channels in [0, 255].
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Clear is a fully transparent color.
const Clear Color = 0x00000000

// Border describes a view outline.
type Border struct {
	Width float64
	Color Color
}

// CornerRadius describes rounded corners. Auto rounds to half the shortest
// side of the frame.
type CornerRadius struct {
	Auto  bool
	Value float64
}

// Resolve returns the radius for a frame of the given size.
func (c CornerRadius) Resolve(size geometry.Size) float64 {
	if c.Auto {
		return min(size.Width, size.Height) / 2
	}
	return c.Value
}

// Shadow describes a drop shadow.
type Shadow struct {
	Color   Color
	Opacity float64
	Radius  float64
	Offset  geometry.Point
}

// Style holds every decoration a view can push to its handle.
type Style struct {
	Name string

	// Text is the content of text handles, already fitted to the frame.
	Text         string
	Color        *Color
	Border       Border
	CornerRadius CornerRadius
	Shadow       *Shadow
	Alpha        float64
	Highlighted  bool
}

// IsOpaque reports whether the style fully covers what is behind it.
func (s Style) IsOpaque() bool {
	if s.Alpha < 1 || s.Color == nil {
		return false
	}
	_, _, _, a := s.Color.RGBA()
	return a == 0xff
}
