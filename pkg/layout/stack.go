package layout

import (
	"math"
	"slices"

	"github.com/go-drift/quickly/pkg/geometry"
)

// Direction is the main axis of a StackLayout.
type Direction int

const (
	// Vertical stacks items top to bottom.
	Vertical Direction = iota
	// Horizontal stacks items leading to trailing.
	Horizontal
)

// StackLayout lines items up along one axis with an inset and spacing.
// Items stretch across the cross axis and take their measured extent on the
// main axis, measured against an unbounded main axis.
type StackLayout struct {
	Base
	direction Direction
	inset     geometry.Inset
	spacing   float64
	items     []*Item
}

// NewStackLayout creates a stack of items.
func NewStackLayout(direction Direction, inset geometry.Inset, spacing float64, items ...*Item) *StackLayout {
	return &StackLayout{
		direction: direction,
		inset:     inset,
		spacing:   spacing,
		items:     slices.Clone(items),
	}
}

// AllItems returns every item regardless of visibility.
func (l *StackLayout) AllItems() []*Item {
	return l.items
}

// SetItems replaces every item.
func (l *StackLayout) SetItems(items ...*Item) {
	l.items = slices.Clone(items)
	l.SetNeedUpdate()
}

// Insert adds items before index. Indexes outside the list append.
func (l *StackLayout) Insert(index int, items ...*Item) {
	if index < 0 || index > len(l.items) {
		index = len(l.items)
	}
	l.items = slices.Insert(l.items, index, items...)
	l.SetNeedUpdate()
}

// Delete removes items. Items not in the layout are ignored.
func (l *StackLayout) Delete(items ...*Item) {
	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(item *Item) bool {
		return slices.Contains(items, item)
	})
	if len(l.items) != n {
		l.SetNeedUpdate()
	}
}

// SetSpacing changes the gap between consecutive items.
func (l *StackLayout) SetSpacing(spacing float64) {
	l.spacing = spacing
	l.SetNeedUpdate()
}

// SetInset changes the inset around the stack.
func (l *StackLayout) SetInset(inset geometry.Inset) {
	l.inset = inset
	l.SetNeedUpdate()
}

func (l *StackLayout) Layout(bounds geometry.Rect) geometry.Size {
	return l.pass(bounds.Size, bounds.Origin, true)
}

func (l *StackLayout) Size(available geometry.Size) geometry.Size {
	return l.pass(available, geometry.Point{}, false)
}

func (l *StackLayout) Items(bounds geometry.Rect) []*Item {
	return Visible(bounds, l.items...)
}

// pass measures every item along the main axis and, when place is set,
// writes frames starting at origin.
func (l *StackLayout) pass(available geometry.Size, origin geometry.Point, place bool) geometry.Size {
	content := available.Inset(l.inset)
	x := origin.X + l.inset.Left
	y := origin.Y + l.inset.Top
	var extent, cross float64
	for i, item := range l.items {
		if i > 0 {
			extent += l.spacing
		}
		switch l.direction {
		case Horizontal:
			size := item.Size(geometry.Size{Width: math.Inf(1), Height: content.Height})
			if place {
				item.Frame = geometry.RectFromXYWH(x+extent, y, size.Width, finite(content.Height, size.Height))
			}
			extent += size.Width
			cross = math.Max(cross, size.Height)
		default:
			size := item.Size(geometry.Size{Width: content.Width, Height: math.Inf(1)})
			if place {
				item.Frame = geometry.RectFromXYWH(x, y+extent, finite(content.Width, size.Width), size.Height)
			}
			extent += size.Height
			cross = math.Max(cross, size.Width)
		}
	}
	if l.direction == Horizontal {
		height := available.Height
		if math.IsInf(height, 1) {
			height = cross + l.inset.Vertical()
		}
		return geometry.Size{Width: extent + l.inset.Horizontal(), Height: height}
	}
	width := available.Width
	if math.IsInf(width, 1) {
		width = cross + l.inset.Horizontal()
	}
	return geometry.Size{Width: width, Height: extent + l.inset.Vertical()}
}

func finite(value, fallback float64) float64 {
	if math.IsInf(value, 0) {
		return fallback
	}
	return value
}
