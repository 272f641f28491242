package layout

import "github.com/go-drift/quickly/pkg/geometry"

// SingleLayout places one item inside the bounds minus an inset. Its
// desired size spans the available width and wraps the item's height.
type SingleLayout struct {
	Base
	inset geometry.Inset
	item  *Item
}

// NewSingleLayout creates a layout around item.
func NewSingleLayout(item *Item, inset geometry.Inset) *SingleLayout {
	return &SingleLayout{item: item, inset: inset}
}

// Item returns the wrapped item.
func (l *SingleLayout) Item() *Item {
	return l.item
}

// SetItem replaces the wrapped item.
func (l *SingleLayout) SetItem(item *Item) {
	l.item = item
	l.SetNeedUpdate()
}

// Inset returns the inset around the item.
func (l *SingleLayout) Inset() geometry.Inset {
	return l.inset
}

// SetInset changes the inset around the item.
func (l *SingleLayout) SetInset(inset geometry.Inset) {
	l.inset = inset
	l.SetNeedUpdate()
}

func (l *SingleLayout) Layout(bounds geometry.Rect) geometry.Size {
	if l.item != nil {
		l.item.Frame = bounds.Inset(l.inset)
	}
	return bounds.Size
}

func (l *SingleLayout) Size(available geometry.Size) geometry.Size {
	content := l.item.Size(available.Inset(l.inset))
	return geometry.Size{
		Width:  available.Width,
		Height: content.Height + l.inset.Vertical(),
	}
}

func (l *SingleLayout) Items(bounds geometry.Rect) []*Item {
	return Visible(bounds, l.item)
}
