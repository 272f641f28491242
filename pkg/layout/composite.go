package layout

import (
	"math"

	"github.com/go-drift/quickly/pkg/geometry"
)

// Child pairs a typed view with the item a composite layout positions.
type Child[V View] struct {
	item *Item
	view V
}

// NewChild wraps view for use in a composite layout.
func NewChild[V View](view V) *Child[V] {
	return &Child[V]{item: NewItem(view), view: view}
}

// View returns the typed view.
func (c *Child[V]) View() V {
	return c.view
}

// Item returns the layout item, or nil for a nil child.
func (c *Child[V]) Item() *Item {
	if c == nil {
		return nil
	}
	return c.item
}

// extent measures a child inside inset and returns the measured size and
// the size including the inset. An absent child takes no space, inset
// included.
func extent(item *Item, available geometry.Size, inset geometry.Inset) (geometry.Size, geometry.Size) {
	if item == nil {
		return geometry.Size{}, geometry.Size{}
	}
	size := item.Size(available.Inset(inset))
	return size, size.Outset(inset)
}

// ContentValueLayout places a flexible content view and an optional
// value view on the trailing edge. The value is measured first and keeps
// its inset plus measured width; content takes the remainder. Without a
// value the content fills the bounds minus its inset.
type ContentValueLayout[C, V View] struct {
	Base
	background   *Item
	content      *Child[C]
	contentInset geometry.Inset
	value        *Child[V]
	valueInset   geometry.Inset
}

// NewContentValueLayout creates a layout with content and no value.
func NewContentValueLayout[C, V View](content C, contentInset geometry.Inset) *ContentValueLayout[C, V] {
	return &ContentValueLayout[C, V]{
		content:      NewChild(content),
		contentInset: contentInset,
	}
}

// Content returns the content child.
func (l *ContentValueLayout[C, V]) Content() *Child[C] { return l.content }

// Value returns the value child, or nil when absent.
func (l *ContentValueLayout[C, V]) Value() *Child[V] { return l.value }

// SetBackground sets an optional view filling the bounds. Nil removes it.
func (l *ContentValueLayout[C, V]) SetBackground(view View) {
	l.background = nil
	if view != nil {
		l.background = NewItem(view)
	}
	l.SetNeedUpdate()
}

// SetContent replaces the content view.
func (l *ContentValueLayout[C, V]) SetContent(content C, inset geometry.Inset) {
	l.content = NewChild(content)
	l.contentInset = inset
	l.SetNeedUpdate()
}

// SetValue installs the value view.
func (l *ContentValueLayout[C, V]) SetValue(value V, inset geometry.Inset) {
	l.value = NewChild(value)
	l.valueInset = inset
	l.SetNeedUpdate()
}

// RemoveValue drops the value view.
func (l *ContentValueLayout[C, V]) RemoveValue() {
	l.value = nil
	l.SetNeedUpdate()
}

func (l *ContentValueLayout[C, V]) Layout(bounds geometry.Rect) geometry.Size {
	if l.background != nil {
		l.background.Frame = bounds
	}
	if l.value == nil {
		l.content.item.Frame = bounds.Inset(l.contentInset)
		return bounds.Size
	}
	_, valueBounds := extent(l.value.item, bounds.Size, l.valueInset)
	content, value := bounds.SplitRight(valueBounds.Width)
	l.content.item.Frame = content.Inset(l.contentInset)
	l.value.item.Frame = value.Inset(l.valueInset)
	return bounds.Size
}

func (l *ContentValueLayout[C, V]) Size(available geometry.Size) geometry.Size {
	_, valueBounds := extent(l.value.Item(), available, l.valueInset)
	contentAvailable := geometry.Size{Width: available.Width - valueBounds.Width, Height: available.Height}
	_, contentBounds := extent(l.content.item, contentAvailable, l.contentInset)
	return geometry.Size{
		Width:  contentBounds.Width + valueBounds.Width,
		Height: math.Max(contentBounds.Height, valueBounds.Height),
	}
}

func (l *ContentValueLayout[C, V]) Items(bounds geometry.Rect) []*Item {
	return Visible(bounds, l.background, l.content.item, l.value.Item())
}

// IconContentDetailValueLayout places an optional icon on the leading
// edge, an optional value on the trailing edge and stacks content over an
// optional detail in the middle. Icon and value are measured first; content
// takes its measured height and detail the remainder of the middle column.
type IconContentDetailValueLayout[I, C, D, V View] struct {
	Base
	background   *Item
	icon         *Child[I]
	iconInset    geometry.Inset
	content      *Child[C]
	contentInset geometry.Inset
	detail       *Child[D]
	detailInset  geometry.Inset
	value        *Child[V]
	valueInset   geometry.Inset
}

// NewIconContentDetailValueLayout creates a layout with content only.
func NewIconContentDetailValueLayout[I, C, D, V View](content C, contentInset geometry.Inset) *IconContentDetailValueLayout[I, C, D, V] {
	return &IconContentDetailValueLayout[I, C, D, V]{
		content:      NewChild(content),
		contentInset: contentInset,
	}
}

func (l *IconContentDetailValueLayout[I, C, D, V]) Icon() *Child[I]    { return l.icon }
func (l *IconContentDetailValueLayout[I, C, D, V]) Content() *Child[C] { return l.content }
func (l *IconContentDetailValueLayout[I, C, D, V]) Detail() *Child[D]  { return l.detail }
func (l *IconContentDetailValueLayout[I, C, D, V]) Value() *Child[V]   { return l.value }

// SetBackground sets an optional view filling the bounds. Nil removes it.
func (l *IconContentDetailValueLayout[I, C, D, V]) SetBackground(view View) {
	l.background = nil
	if view != nil {
		l.background = NewItem(view)
	}
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) SetIcon(icon I, inset geometry.Inset) {
	l.icon, l.iconInset = NewChild(icon), inset
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) SetContent(content C, inset geometry.Inset) {
	l.content, l.contentInset = NewChild(content), inset
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) SetDetail(detail D, inset geometry.Inset) {
	l.detail, l.detailInset = NewChild(detail), inset
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) SetValue(value V, inset geometry.Inset) {
	l.value, l.valueInset = NewChild(value), inset
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) RemoveIcon() {
	l.icon = nil
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) RemoveDetail() {
	l.detail = nil
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) RemoveValue() {
	l.value = nil
	l.SetNeedUpdate()
}

func (l *IconContentDetailValueLayout[I, C, D, V]) Layout(bounds geometry.Rect) geometry.Size {
	if l.background != nil {
		l.background.Frame = bounds
	}
	_, iconBounds := extent(l.icon.Item(), bounds.Size, l.iconInset)
	_, valueBounds := extent(l.value.Item(), bounds.Size, l.valueInset)
	icon, middle, value := bounds.SplitLeftRight(iconBounds.Width, valueBounds.Width)
	if l.icon != nil {
		l.icon.item.Frame = icon.Inset(l.iconInset)
	}
	if l.value != nil {
		l.value.item.Frame = value.Inset(l.valueInset)
	}
	if l.detail == nil {
		l.content.item.Frame = middle.Inset(l.contentInset)
		return bounds.Size
	}
	_, contentBounds := extent(l.content.item, middle.Size, l.contentInset)
	content, detail := middle.SplitTop(contentBounds.Height)
	l.content.item.Frame = content.Inset(l.contentInset)
	l.detail.item.Frame = detail.Inset(l.detailInset)
	return bounds.Size
}

func (l *IconContentDetailValueLayout[I, C, D, V]) Size(available geometry.Size) geometry.Size {
	_, iconBounds := extent(l.icon.Item(), available, l.iconInset)
	_, valueBounds := extent(l.value.Item(), available, l.valueInset)
	middle := geometry.Size{
		Width:  available.Width - (iconBounds.Width + valueBounds.Width),
		Height: available.Height,
	}
	_, contentBounds := extent(l.content.item, middle, l.contentInset)
	_, detailBounds := extent(l.detail.Item(), middle, l.detailInset)
	return geometry.Size{
		Width:  iconBounds.Width + math.Max(contentBounds.Width, detailBounds.Width) + valueBounds.Width,
		Height: math.Max(math.Max(iconBounds.Height, contentBounds.Height+detailBounds.Height), valueBounds.Height),
	}
}

func (l *IconContentDetailValueLayout[I, C, D, V]) Items(bounds geometry.Rect) []*Item {
	return Visible(bounds, l.background, l.icon.Item(), l.content.item, l.detail.Item(), l.value.Item())
}
