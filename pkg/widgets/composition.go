package widgets

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/view"
)

// Composition is a typed arrangement of the views inside a cell.
type Composition interface {
	Layout() layout.Layout
	// IsOpaque reports whether the cell should paint its own background.
	IsOpaque() bool
}

// NewCompositionCell creates a pressable cell whose content hosts the
// composition's layout.
func NewCompositionCell(env *view.Environment, name string, c Composition) *CellView {
	return NewCell(env, name, view.NewCustom(env, name+".Content", c.Layout()))
}

// ContentValueCell is a row with a flexible content view and an optional
// trailing value view over an optional background.
type ContentValueCell[B, C, V layout.View] struct {
	layout     *layout.ContentValueLayout[C, V]
	background *layout.Child[B]
}

// NewContentValueCell creates a composition with content only.
func NewContentValueCell[B, C, V layout.View](content C, contentInset geometry.Inset) *ContentValueCell[B, C, V] {
	return &ContentValueCell[B, C, V]{
		layout: layout.NewContentValueLayout[C, V](content, contentInset),
	}
}

func (c *ContentValueCell[B, C, V]) Layout() layout.Layout { return c.layout }

// IsOpaque reports true without a background view.
func (c *ContentValueCell[B, C, V]) IsOpaque() bool { return c.background == nil }

// Background returns the background view if one is set.
func (c *ContentValueCell[B, C, V]) Background() (B, bool) {
	return childView(c.background)
}

func (c *ContentValueCell[B, C, V]) SetBackground(background B) {
	c.background = layout.NewChild(background)
	c.layout.SetBackground(background)
}

func (c *ContentValueCell[B, C, V]) RemoveBackground() {
	c.background = nil
	c.layout.SetBackground(nil)
}

func (c *ContentValueCell[B, C, V]) Content() C {
	return c.layout.Content().View()
}

func (c *ContentValueCell[B, C, V]) SetContent(content C, inset geometry.Inset) {
	c.layout.SetContent(content, inset)
}

// Value returns the value view if one is set.
func (c *ContentValueCell[B, C, V]) Value() (V, bool) {
	return childView(c.layout.Value())
}

func (c *ContentValueCell[B, C, V]) SetValue(value V, inset geometry.Inset) {
	c.layout.SetValue(value, inset)
}

func (c *ContentValueCell[B, C, V]) RemoveValue() {
	c.layout.RemoveValue()
}

// IconContentDetailValueCell is a row with an optional leading icon, a
// content view over an optional detail view and an optional trailing value.
type IconContentDetailValueCell[B, I, C, D, V layout.View] struct {
	layout     *layout.IconContentDetailValueLayout[I, C, D, V]
	background *layout.Child[B]
}

// NewIconContentDetailValueCell creates a composition with content only.
func NewIconContentDetailValueCell[B, I, C, D, V layout.View](content C, contentInset geometry.Inset) *IconContentDetailValueCell[B, I, C, D, V] {
	return &IconContentDetailValueCell[B, I, C, D, V]{
		layout: layout.NewIconContentDetailValueLayout[I, C, D, V](content, contentInset),
	}
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) Layout() layout.Layout { return c.layout }

// IsOpaque reports true without a background view.
func (c *IconContentDetailValueCell[B, I, C, D, V]) IsOpaque() bool { return c.background == nil }

func (c *IconContentDetailValueCell[B, I, C, D, V]) Background() (B, bool) {
	return childView(c.background)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) SetBackground(background B) {
	c.background = layout.NewChild(background)
	c.layout.SetBackground(background)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) RemoveBackground() {
	c.background = nil
	c.layout.SetBackground(nil)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) Icon() (I, bool) {
	return childView(c.layout.Icon())
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) SetIcon(icon I, inset geometry.Inset) {
	c.layout.SetIcon(icon, inset)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) RemoveIcon() {
	c.layout.RemoveIcon()
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) Content() C {
	return c.layout.Content().View()
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) SetContent(content C, inset geometry.Inset) {
	c.layout.SetContent(content, inset)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) Detail() (D, bool) {
	return childView(c.layout.Detail())
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) SetDetail(detail D, inset geometry.Inset) {
	c.layout.SetDetail(detail, inset)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) RemoveDetail() {
	c.layout.RemoveDetail()
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) Value() (V, bool) {
	return childView(c.layout.Value())
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) SetValue(value V, inset geometry.Inset) {
	c.layout.SetValue(value, inset)
}

func (c *IconContentDetailValueCell[B, I, C, D, V]) RemoveValue() {
	c.layout.RemoveValue()
}

func childView[V layout.View](c *layout.Child[V]) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	return c.View(), true
}
