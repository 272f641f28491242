package view

import (
	"slices"

	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/reuse"
)

// CustomKind is the native handle kind and reuse identifier of CustomView.
const CustomKind = "CustomView"

var customReuse = reuse.Reusable[*CustomView, native.Handle]{
	ID: CustomKind,
	Create: func(v *CustomView) native.Handle {
		return v.env.Backend.NewHandle(CustomKind)
	},
	Configure: func(v *CustomView, h native.Handle) {
		h.SetFrame(v.frame)
		h.Apply(v.style)
	},
	Cleanup: func(v *CustomView, h native.Handle) {
		h.RemoveFromParent()
	},
}

// CustomView hosts a layout and its visible items.
type CustomView struct {
	env      *Environment
	layout   layout.Layout
	gestures []gesture.Recognizer
	style    native.Style

	handle     native.Handle
	parent     layout.Parent
	frame      geometry.Rect
	visible    []*layout.Item
	needLayout bool

	// OnAppear fires after the view attached its handle.
	OnAppear func()
	// OnDisappear fires after the view released its handle.
	OnDisappear func()
	// OnChangeStyle fires when the highlight state changes.
	OnChangeStyle func(userInteraction bool)
}

// NewCustom creates a detached view hosting l.
func NewCustom(env *Environment, name string, l layout.Layout) *CustomView {
	v := &CustomView{
		env:        env,
		layout:     l,
		style:      native.Style{Name: name, Alpha: 1},
		needLayout: true,
	}
	if l != nil {
		l.SetDelegate(v)
	}
	return v
}

// Environment returns the environment the view was created with.
func (v *CustomView) Environment() *Environment { return v.env }

// Name returns the diagnostic name.
func (v *CustomView) Name() string { return v.style.Name }

// Layout returns the hosted layout.
func (v *CustomView) Layout() layout.Layout { return v.layout }

// SetLayout replaces the hosted layout. Children of the old layout
// disappear on the next layout pass.
func (v *CustomView) SetLayout(l layout.Layout) {
	if v.layout != nil {
		v.layout.SetDelegate(nil)
	}
	v.layout = l
	if l != nil {
		l.SetDelegate(v)
	}
	v.LayoutNeedUpdate()
}

// Frame returns the frame assigned by the parent.
func (v *CustomView) Frame() geometry.Rect { return v.frame }

// Bounds returns the frame size at the origin.
func (v *CustomView) Bounds() geometry.Rect { return geometry.Rect{Size: v.frame.Size} }

// NativeHandle returns the handle while appeared, nil otherwise.
func (v *CustomView) NativeHandle() native.Handle { return v.handle }

// IsAppeared reports whether the view holds a handle.
func (v *CustomView) IsAppeared() bool { return v.handle != nil }

// Size measures the hosted layout.
func (v *CustomView) Size(available geometry.Size) geometry.Size {
	if v.layout == nil {
		return geometry.Size{}
	}
	return v.layout.Size(available)
}

// SetFrame positions the view. Negative sizes are clamped to zero.
func (v *CustomView) SetFrame(frame geometry.Rect) {
	frame = frame.Clamped()
	if frame.Equal(v.frame) {
		return
	}
	resized := !frame.Size.Equal(v.frame.Size)
	v.frame = frame
	if v.handle != nil {
		v.handle.SetFrame(frame)
	}
	if resized {
		v.needLayout = true
	}
}

// Appear obtains a handle from the reuse cache, attaches it to parent and
// lays out the visible children.
func (v *CustomView) Appear(parent layout.Parent) {
	if v.handle != nil {
		return
	}
	v.parent = parent
	v.handle = reuse.Get(v.env.Cache, customReuse, v)
	if parent != nil {
		if ph := parent.NativeHandle(); ph != nil {
			ph.AddChild(v.handle)
		}
	}
	v.needLayout = true
	v.LayoutIfNeeded()
	if v.OnAppear != nil {
		v.OnAppear()
	}
}

// Disappear releases the visible children and returns the handle to the
// reuse cache.
func (v *CustomView) Disappear() {
	if v.handle == nil {
		return
	}
	for _, item := range v.visible {
		item.View().Disappear()
	}
	v.visible = nil
	reuse.Set(v.env.Cache, customReuse, v, v.handle)
	v.handle = nil
	v.parent = nil
	v.needLayout = true
	if v.OnDisappear != nil {
		v.OnDisappear()
	}
}

// SetNeedLayout marks the view for a layout pass on the next flush.
func (v *CustomView) SetNeedLayout() {
	v.needLayout = true
}

// LayoutNeedUpdate implements layout.Delegate. The view relayouts on the
// next flush and asks its parent to remeasure.
func (v *CustomView) LayoutNeedUpdate() {
	v.needLayout = true
	if v.parent != nil {
		v.parent.SetNeedLayout()
	}
}

// LayoutUpdateIfNeeded implements layout.Delegate.
func (v *CustomView) LayoutUpdateIfNeeded() {
	v.LayoutIfNeeded()
}

// LayoutIfNeeded runs a pending layout pass, appears and disappears
// children as they enter and leave the bounds, and flushes the children.
func (v *CustomView) LayoutIfNeeded() {
	if v.handle == nil {
		return
	}
	if v.needLayout && v.layout != nil {
		v.needLayout = false
		bounds := v.Bounds()
		size := v.layout.Layout(bounds)
		if !size.Equal(bounds.Size) && v.parent != nil {
			v.parent.SetNeedLayout()
		}
		v.visible = Diff(v, v.visible, v.layout.Items(bounds))
	}
	for _, item := range v.visible {
		flush(item.View())
	}
}

// Diff appears the items entering the visible set under parent, disappears
// the ones leaving it and positions every visible item. It returns next.
func Diff(parent layout.Parent, previous, next []*layout.Item) []*layout.Item {
	for _, item := range previous {
		if !slices.Contains(next, item) {
			item.View().Disappear()
		}
	}
	for _, item := range next {
		child := item.View()
		child.SetFrame(item.Frame)
		if !child.IsAppeared() {
			child.Appear(parent)
		}
	}
	return next
}

// AddGesture attaches a recognizer.
func (v *CustomView) AddGesture(r gesture.Recognizer) {
	if !slices.Contains(v.gestures, r) {
		v.gestures = append(v.gestures, r)
	}
}

// RemoveGesture detaches a recognizer.
func (v *CustomView) RemoveGesture(r gesture.Recognizer) {
	v.gestures = slices.DeleteFunc(v.gestures, func(other gesture.Recognizer) bool { return other == r })
}

// Gestures returns the attached recognizers.
func (v *CustomView) Gestures() []gesture.Recognizer { return v.gestures }

// Style returns the current decorations.
func (v *CustomView) Style() native.Style { return v.style }

// SetColor sets the background color. Nil clears it.
func (v *CustomView) SetColor(color *native.Color) {
	v.style.Color = color
	v.applyStyle()
}

// SetBorder sets the outline.
func (v *CustomView) SetBorder(border native.Border) {
	v.style.Border = border
	v.applyStyle()
}

// SetCornerRadius sets the corner rounding.
func (v *CustomView) SetCornerRadius(radius native.CornerRadius) {
	v.style.CornerRadius = radius
	v.applyStyle()
}

// SetShadow sets the drop shadow. Nil clears it.
func (v *CustomView) SetShadow(shadow *native.Shadow) {
	v.style.Shadow = shadow
	v.applyStyle()
}

// SetAlpha sets the opacity, clamped to [0, 1].
func (v *CustomView) SetAlpha(alpha float64) {
	v.style.Alpha = min(max(alpha, 0), 1)
	v.applyStyle()
}

// IsHighlighted reports the highlight state.
func (v *CustomView) IsHighlighted() bool { return v.style.Highlighted }

// SetHighlighted changes the highlight state and notifies OnChangeStyle.
func (v *CustomView) SetHighlighted(highlighted, userInteraction bool) {
	if v.style.Highlighted == highlighted {
		return
	}
	v.style.Highlighted = highlighted
	v.applyStyle()
	if v.OnChangeStyle != nil {
		v.OnChangeStyle(userInteraction)
	}
}

func (v *CustomView) applyStyle() {
	if v.handle != nil {
		v.handle.Apply(v.style)
	}
}
