// Package layout computes the frames of a view's children.
//
// A [Layout] owns a list of [Item] values, each wrapping a child [View] with
// a frame that only the layout writes. Layout positions every item inside the
// given bounds and reports the size it actually occupied, Size measures
// without touching frames, and Items returns the subset of items whose frame
// intersects a visibility rectangle so the hosting view can appear and
// disappear native handles as content scrolls.
//
// Layouts notify their hosting view through a [Delegate]. The registration is
// an observer relation, not ownership: the host registers itself when it
// adopts a layout and unregisters when it lets it go.
package layout

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/native"
)

// View is the part of a view a layout needs: measurement, placement and the
// appear/disappear lifecycle driven by visibility.
type View interface {
	// Size returns the desired size for the available space.
	Size(available geometry.Size) geometry.Size

	// Appear attaches the view's native handle inside parent.
	Appear(parent Parent)

	// Disappear detaches the view's native handle and releases it.
	Disappear()

	// IsAppeared reports whether the view currently holds a native handle.
	IsAppeared() bool

	// SetFrame positions the view in its parent's coordinate space.
	SetFrame(frame geometry.Rect)
}

// Parent is the hosting side of an appeared child.
type Parent interface {
	// NativeHandle returns the handle children attach to, or nil when the
	// parent itself is not appeared.
	NativeHandle() native.Handle

	// SetNeedLayout asks the parent to run its layout pass again, typically
	// because a child's size no longer matches its frame.
	SetNeedLayout()
}

// Delegate observes a layout on behalf of the view that hosts it.
type Delegate interface {
	// LayoutNeedUpdate is called when the layout configuration changed.
	LayoutNeedUpdate()

	// LayoutUpdateIfNeeded is called when the layout wants a pending
	// update flushed immediately.
	LayoutUpdateIfNeeded()
}

// Layout computes item frames from bounds.
type Layout interface {
	// SetDelegate registers the observer. Pass nil to unregister.
	SetDelegate(delegate Delegate)

	// Delegate returns the registered observer, if any.
	Delegate() Delegate

	// SetNeedUpdate notifies the delegate that the layout changed.
	SetNeedUpdate()

	// UpdateIfNeeded asks the delegate to flush a pending update.
	UpdateIfNeeded()

	// Layout positions every item inside bounds and returns the occupied size.
	Layout(bounds geometry.Rect) geometry.Size

	// Size returns the desired size for available without changing frames.
	Size(available geometry.Size) geometry.Size

	// Items returns the items whose frame intersects bounds.
	Items(bounds geometry.Rect) []*Item
}

// Item wraps a view with the frame its owning layout assigned.
type Item struct {
	view  View
	Frame geometry.Rect
}

// NewItem wraps view in an item with an empty frame.
func NewItem(view View) *Item {
	return &Item{view: view}
}

// View returns the wrapped view.
func (i *Item) View() View {
	return i.view
}

// Size measures the wrapped view. A nil item measures as zero.
func (i *Item) Size(available geometry.Size) geometry.Size {
	if i == nil || i.view == nil {
		return geometry.Size{}
	}
	return i.view.Size(available)
}

// Base implements the delegate bookkeeping shared by every layout.
// Embed it and call SetNeedUpdate from configuration setters.
type Base struct {
	delegate Delegate
}

// SetDelegate registers the observer.
func (b *Base) SetDelegate(delegate Delegate) {
	b.delegate = delegate
}

// Delegate returns the registered observer.
func (b *Base) Delegate() Delegate {
	return b.delegate
}

// SetNeedUpdate notifies the delegate, if any.
func (b *Base) SetNeedUpdate() {
	if b.delegate != nil {
		b.delegate.LayoutNeedUpdate()
	}
}

// UpdateIfNeeded asks the delegate to flush, if any.
func (b *Base) UpdateIfNeeded() {
	if b.delegate != nil {
		b.delegate.LayoutUpdateIfNeeded()
	}
}

// Visible filters items down to those whose frame intersects bounds,
// preserving order. Nil items are skipped.
func Visible(bounds geometry.Rect, items ...*Item) []*Item {
	var result []*Item
	for _, item := range items {
		if item == nil {
			continue
		}
		if bounds.Intersects(item.Frame) {
			result = append(result, item)
		}
	}
	return result
}
