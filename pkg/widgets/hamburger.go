package widgets

import (
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/sidepanel"
	"github.com/go-drift/quickly/pkg/view"
)

// Container is a screen with a presentation lifecycle. Prepare runs before
// a transition, Finish after it completes and Cancel when an interactive
// transition rolls back.
type Container interface {
	layout.View

	// ShouldInteractive reports whether drags may move the container.
	ShouldInteractive() bool

	PrepareShow(interactive bool)
	FinishShow(interactive bool)
	CancelShow(interactive bool)
	PrepareHide(interactive bool)
	FinishHide(interactive bool)
	CancelHide(interactive bool)
}

// Menu is a container revealed beside the content of a HamburgerContainer.
type Menu interface {
	Container

	// MenuOptions configures the side the menu is placed on.
	MenuOptions() sidepanel.Options
}

// HamburgerContainer hosts a content container and optional leading and
// trailing menus revealed by dragging the content or by the Show methods.
// A tap on the content while a menu is revealed closes the menu.
type HamburgerContainer struct {
	*view.CustomView
	layout   *layout.SidePanelLayout
	machine  *sidepanel.Machine
	content  Container
	leading  Menu
	trailing Menu
	tap      *gesture.Tap
	pan      *gesture.Pan
}

// NewHamburger creates a container filling its parent around content.
func NewHamburger(env *view.Environment, name string, content Container) *HamburgerContainer {
	c := &HamburgerContainer{
		layout:  layout.NewSidePanelLayout(layout.NewItem(content), true),
		content: content,
		tap:     &gesture.Tap{},
		pan:     &gesture.Pan{},
	}
	c.CustomView = view.NewCustom(env, name, c.layout)
	c.machine = sidepanel.New(c.layout, env.Runner)
	c.machine.SetHooks(layout.SideLeading, c.hooks(layout.SideLeading))
	c.machine.SetHooks(layout.SideTrailing, c.hooks(layout.SideTrailing))

	c.tap.OnShouldBegin = func() bool {
		return !c.machine.State().IsIdle() && contains(c.layout.Content(), c.tap.Location())
	}
	c.tap.OnTriggered = func() { c.machine.Tap() }
	c.pan.OnShouldBegin = func() bool {
		return c.content.ShouldInteractive() && c.machine.ShouldBeginDrag(c.pan.Translation())
	}
	c.pan.OnBegin = func() { c.machine.BeginDrag(c.pan.Location()) }
	c.pan.OnChange = func() { c.machine.ChangeDrag(c.pan.Location()) }
	c.pan.OnCancel = func() { c.machine.EndDrag(c.pan.Location(), true) }
	c.pan.OnEnd = func() { c.machine.EndDrag(c.pan.Location(), false) }
	c.AddGesture(c.tap)
	c.AddGesture(c.pan)
	return c
}

// hooks forwards the machine lifecycle of side to the menu placed there.
func (c *HamburgerContainer) hooks(side layout.Side) sidepanel.Hooks {
	with := func(fn func(m Menu, interactive bool)) func(bool) {
		return func(interactive bool) {
			if m := c.menu(side); m != nil {
				fn(m, interactive)
			}
		}
	}
	return sidepanel.Hooks{
		WillShow:   with(Menu.PrepareShow),
		DidShow:    with(Menu.FinishShow),
		CancelShow: with(Menu.CancelShow),
		WillHide:   with(Menu.PrepareHide),
		DidHide:    with(Menu.FinishHide),
		CancelHide: with(Menu.CancelHide),
	}
}

func (c *HamburgerContainer) menu(side layout.Side) Menu {
	switch side {
	case layout.SideLeading:
		return c.leading
	case layout.SideTrailing:
		return c.trailing
	default:
		return nil
	}
}

// Content returns the content container.
func (c *HamburgerContainer) Content() Container {
	return c.content
}

// SetContent replaces the content container. While the hamburger is
// appeared the old content is hidden and the new one shown without
// animation.
func (c *HamburgerContainer) SetContent(content Container) {
	if content == c.content {
		return
	}
	old := c.content
	presented := c.IsAppeared()
	if presented && old != nil {
		old.PrepareHide(false)
		old.FinishHide(false)
	}
	c.content = content
	c.layout.SetContent(layout.NewItem(content))
	if presented {
		content.PrepareShow(false)
		content.FinishShow(false)
	}
}

// Leading returns the leading menu, or nil.
func (c *HamburgerContainer) Leading() Menu { return c.leading }

// SetLeading places m on the leading side. Nil removes the side.
func (c *HamburgerContainer) SetLeading(m Menu) { c.setMenu(layout.SideLeading, m) }

// Trailing returns the trailing menu, or nil.
func (c *HamburgerContainer) Trailing() Menu { return c.trailing }

// SetTrailing places m on the trailing side. Nil removes the side.
func (c *HamburgerContainer) SetTrailing(m Menu) { c.setMenu(layout.SideTrailing, m) }

func (c *HamburgerContainer) setMenu(side layout.Side, m Menu) {
	old := c.menu(side)
	if old == m {
		return
	}
	open := c.machine.State().Side == side
	if open && old != nil {
		old.PrepareHide(false)
		old.FinishHide(false)
	}
	switch side {
	case layout.SideLeading:
		c.leading = m
	case layout.SideTrailing:
		c.trailing = m
	}
	if m == nil {
		c.layout.SetPanel(side, nil, 0)
		if open {
			c.machine.Layout().SetState(layout.Idle)
		}
		return
	}
	options := m.MenuOptions()
	c.layout.SetPanel(side, layout.NewItem(m), options.Size)
	c.machine.SetOptions(side, options)
	if open {
		m.PrepareShow(false)
		m.FinishShow(false)
	}
}

// State returns the revealed side and progress.
func (c *HamburgerContainer) State() layout.SideState {
	return c.machine.State()
}

func (c *HamburgerContainer) ShowLeading(animated bool, completion func()) {
	c.machine.Show(layout.SideLeading, animated, completion)
}

func (c *HamburgerContainer) HideLeading(animated bool, completion func()) {
	c.machine.Hide(layout.SideLeading, animated, completion)
}

func (c *HamburgerContainer) ShowTrailing(animated bool, completion func()) {
	c.machine.Show(layout.SideTrailing, animated, completion)
}

func (c *HamburgerContainer) HideTrailing(animated bool, completion func()) {
	c.machine.Hide(layout.SideTrailing, animated, completion)
}

// TapGesture returns the close-on-tap recognizer.
func (c *HamburgerContainer) TapGesture() *gesture.Tap { return c.tap }

// PanGesture returns the reveal recognizer.
func (c *HamburgerContainer) PanGesture() *gesture.Pan { return c.pan }

// ShouldInteractive delegates to the content.
func (c *HamburgerContainer) ShouldInteractive() bool {
	return c.content.ShouldInteractive()
}

// PrepareShow forwards to the content and the revealed menu.
func (c *HamburgerContainer) PrepareShow(interactive bool) {
	c.forward(interactive, Container.PrepareShow)
}

func (c *HamburgerContainer) FinishShow(interactive bool) {
	c.forward(interactive, Container.FinishShow)
}

func (c *HamburgerContainer) CancelShow(interactive bool) {
	c.forward(interactive, Container.CancelShow)
}

func (c *HamburgerContainer) PrepareHide(interactive bool) {
	c.forward(interactive, Container.PrepareHide)
}

func (c *HamburgerContainer) FinishHide(interactive bool) {
	c.forward(interactive, Container.FinishHide)
}

func (c *HamburgerContainer) CancelHide(interactive bool) {
	c.forward(interactive, Container.CancelHide)
}

func (c *HamburgerContainer) forward(interactive bool, fn func(Container, bool)) {
	fn(c.content, interactive)
	if m := c.menu(c.machine.State().Side); m != nil {
		fn(m, interactive)
	}
}

// Screen is a Container and Menu backed by a custom view with lifecycle
// callbacks.
type Screen struct {
	*view.CustomView

	// Interactive is returned by ShouldInteractive.
	Interactive bool
	// Options places the screen when used as a menu.
	Options sidepanel.Options

	OnPrepareShow func(interactive bool)
	OnFinishShow  func(interactive bool)
	OnCancelShow  func(interactive bool)
	OnPrepareHide func(interactive bool)
	OnFinishHide  func(interactive bool)
	OnCancelHide  func(interactive bool)

	visible bool
}

// NewScreen creates an interactive screen hosting l.
func NewScreen(env *view.Environment, name string, l layout.Layout) *Screen {
	return &Screen{CustomView: view.NewCustom(env, name, l), Interactive: true}
}

// IsVisible reports whether the last finished transition showed the screen.
func (s *Screen) IsVisible() bool { return s.visible }

func (s *Screen) ShouldInteractive() bool        { return s.Interactive }
func (s *Screen) MenuOptions() sidepanel.Options { return s.Options }

func (s *Screen) PrepareShow(interactive bool) { notify(s.OnPrepareShow, interactive) }
func (s *Screen) CancelShow(interactive bool)  { notify(s.OnCancelShow, interactive) }
func (s *Screen) PrepareHide(interactive bool) { notify(s.OnPrepareHide, interactive) }
func (s *Screen) CancelHide(interactive bool)  { notify(s.OnCancelHide, interactive) }

func (s *Screen) FinishShow(interactive bool) {
	s.visible = true
	notify(s.OnFinishShow, interactive)
}

func (s *Screen) FinishHide(interactive bool) {
	s.visible = false
	notify(s.OnFinishHide, interactive)
}

func notify(fn func(bool), interactive bool) {
	if fn != nil {
		fn(interactive)
	}
}
