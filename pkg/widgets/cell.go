package widgets

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/view"
)

// CellView is a pressable row hosting one content view.
type CellView struct {
	*view.CustomView
	layout *layout.SingleLayout
	tap    *gesture.Tap

	// ShouldPressed gates OnPressed.
	ShouldPressed bool
	// OnPressed fires when a tap lands on the content.
	OnPressed func()
}

// NewCell creates a pressable cell around content.
func NewCell(env *view.Environment, name string, content layout.View) *CellView {
	c := &CellView{
		layout:        layout.NewSingleLayout(layout.NewItem(content), geometry.Inset{}),
		tap:           &gesture.Tap{},
		ShouldPressed: true,
	}
	c.CustomView = view.NewCustom(env, name, c.layout)
	c.tap.OnShouldBegin = func() bool {
		return c.ShouldPressed && contains(c.layout.Item(), c.tap.Location())
	}
	c.tap.OnTriggered = func() {
		if c.OnPressed != nil {
			c.OnPressed()
		}
	}
	c.AddGesture(c.tap)
	return c
}

// Content returns the content view.
func (c *CellView) Content() layout.View {
	return c.layout.Item().View()
}

// SetContent replaces the content view.
func (c *CellView) SetContent(content layout.View) {
	c.layout.SetItem(layout.NewItem(content))
}

// SetContentInset changes the inset around the content.
func (c *CellView) SetContentInset(inset geometry.Inset) {
	c.layout.SetInset(inset)
}

// TapGesture returns the press recognizer.
func (c *CellView) TapGesture() *gesture.Tap {
	return c.tap
}

// contains reports whether location, in the host's coordinates, falls on
// item.
func contains(item *layout.Item, location geometry.Point) bool {
	return item != nil && item.Frame.Contains(location)
}
