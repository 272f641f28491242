package widgets

import (
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/sidepanel"
	"github.com/go-drift/quickly/pkg/view"
)

// SwipeCellView is a pressable row that reveals leading and trailing
// action views when swiped horizontally. A tap while a panel is revealed
// closes it instead of pressing the cell.
type SwipeCellView struct {
	*view.CustomView
	layout  *layout.SidePanelLayout
	machine *sidepanel.Machine
	tap     *gesture.Tap
	pan     *gesture.Pan

	// ShouldPressed gates OnPressed.
	ShouldPressed bool
	// OnPressed fires when a tap lands on the content of an idle cell.
	OnPressed func()

	OnShowLeading  func()
	OnHideLeading  func()
	OnShowTrailing func()
	OnHideTrailing func()
}

// NewSwipeCell creates a swipe cell around content with no side views.
func NewSwipeCell(env *view.Environment, name string, content layout.View) *SwipeCellView {
	c := &SwipeCellView{
		layout:        layout.NewSidePanelLayout(layout.NewItem(content), false),
		tap:           &gesture.Tap{},
		pan:           &gesture.Pan{},
		ShouldPressed: true,
	}
	c.CustomView = view.NewCustom(env, name, c.layout)
	c.machine = sidepanel.New(c.layout, env.Runner)
	c.machine.SetHooks(layout.SideLeading, sidepanel.Hooks{
		DidShow: func(bool) { call(c.OnShowLeading) },
		DidHide: func(bool) { call(c.OnHideLeading) },
	})
	c.machine.SetHooks(layout.SideTrailing, sidepanel.Hooks{
		DidShow: func(bool) { call(c.OnShowTrailing) },
		DidHide: func(bool) { call(c.OnHideTrailing) },
	})

	c.tap.OnShouldBegin = func() bool {
		return c.ShouldPressed && contains(c.layout.Content(), c.tap.Location())
	}
	c.tap.OnTriggered = c.pressed
	c.pan.OnShouldBegin = func() bool {
		return c.machine.ShouldBeginDrag(c.pan.Translation())
	}
	c.pan.OnBegin = func() { c.machine.BeginDrag(c.pan.Location()) }
	c.pan.OnChange = func() { c.machine.ChangeDrag(c.pan.Location()) }
	c.pan.OnCancel = func() { c.machine.EndDrag(c.pan.Location(), true) }
	c.pan.OnEnd = func() { c.machine.EndDrag(c.pan.Location(), false) }
	c.AddGesture(c.tap)
	c.AddGesture(c.pan)
	return c
}

func (c *SwipeCellView) pressed() {
	if c.machine.Tap() {
		return
	}
	call(c.OnPressed)
}

// Content returns the content view.
func (c *SwipeCellView) Content() layout.View {
	return c.layout.Content().View()
}

// SetContent replaces the content view.
func (c *SwipeCellView) SetContent(content layout.View) {
	c.layout.SetContent(layout.NewItem(content))
}

// Leading returns the leading side view, or nil.
func (c *SwipeCellView) Leading() layout.View {
	return c.side(layout.SideLeading)
}

// SetLeading sets the leading side view and its options. A nil view
// removes the side.
func (c *SwipeCellView) SetLeading(v layout.View, options sidepanel.Options) {
	c.setSide(layout.SideLeading, v, options)
}

// Trailing returns the trailing side view, or nil.
func (c *SwipeCellView) Trailing() layout.View {
	return c.side(layout.SideTrailing)
}

// SetTrailing sets the trailing side view and its options. A nil view
// removes the side.
func (c *SwipeCellView) SetTrailing(v layout.View, options sidepanel.Options) {
	c.setSide(layout.SideTrailing, v, options)
}

func (c *SwipeCellView) side(side layout.Side) layout.View {
	item, _ := c.layout.Panel(side)
	if item == nil {
		return nil
	}
	return item.View()
}

func (c *SwipeCellView) setSide(side layout.Side, v layout.View, options sidepanel.Options) {
	var item *layout.Item
	if v != nil {
		item = layout.NewItem(v)
	}
	c.layout.SetPanel(side, item, options.Size)
	c.machine.SetOptions(side, options)
}

// State returns the revealed side and progress.
func (c *SwipeCellView) State() layout.SideState {
	return c.machine.State()
}

// IsShowedLeading reports whether the leading side is revealed at all.
func (c *SwipeCellView) IsShowedLeading() bool {
	return c.machine.State().Side == layout.SideLeading
}

// IsShowedTrailing reports whether the trailing side is revealed at all.
func (c *SwipeCellView) IsShowedTrailing() bool {
	return c.machine.State().Side == layout.SideTrailing
}

func (c *SwipeCellView) ShowLeading(animated bool, completion func()) {
	c.machine.Show(layout.SideLeading, animated, completion)
}

func (c *SwipeCellView) HideLeading(animated bool, completion func()) {
	c.machine.Hide(layout.SideLeading, animated, completion)
}

func (c *SwipeCellView) ShowTrailing(animated bool, completion func()) {
	c.machine.Show(layout.SideTrailing, animated, completion)
}

func (c *SwipeCellView) HideTrailing(animated bool, completion func()) {
	c.machine.Hide(layout.SideTrailing, animated, completion)
}

// TapGesture returns the press recognizer.
func (c *SwipeCellView) TapGesture() *gesture.Tap {
	return c.tap
}

// PanGesture returns the swipe recognizer.
func (c *SwipeCellView) PanGesture() *gesture.Pan {
	return c.pan
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
