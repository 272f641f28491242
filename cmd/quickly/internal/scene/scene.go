// Package scene builds a view tree from a config.Scene: a hamburger
// container with an optional menu whose content scrolls a list of swipe
// cells.
package scene

import (
	"fmt"

	"github.com/go-drift/quickly/cmd/quickly/internal/config"
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/view"
	"github.com/go-drift/quickly/pkg/widgets"
)

// Colors applied to the built views.
var (
	RowColor      = native.Color(0x1e1e2eff)
	MenuColor     = native.Color(0x313244ff)
	LeadingColor  = native.Color(0xa6e3a1ff)
	TrailingColor = native.Color(0xf38ba8ff)
)

// Scene is a built view tree.
type Scene struct {
	Config    *config.Scene
	Env       *view.Environment
	Container *widgets.HamburgerContainer
	Content   *widgets.Screen
	Menu      *widgets.Screen
	List      *widgets.ScrollView
	Rows      []*widgets.SwipeCellView

	// OnEvent receives a line for every user-visible transition.
	OnEvent func(event string)
}

// Build creates the views for cfg in env.
func Build(env *view.Environment, cfg *config.Scene) *Scene {
	s := &Scene{Config: cfg, Env: env}

	items := make([]*layout.Item, 0, len(cfg.Rows))
	for i, row := range cfg.Rows {
		cell := s.buildRow(i, row)
		s.Rows = append(s.Rows, cell)
		items = append(items, layout.NewItem(cell))
	}
	stack := layout.NewStackLayout(layout.Vertical, geometry.Inset{}, float64(cfg.Spacing), items...)
	s.List = widgets.NewScroll(env, "List", stack, widgets.ScrollVertical)

	s.Content = widgets.NewScreen(env, contentName(cfg), layout.NewSingleLayout(layout.NewItem(s.List), geometry.Inset{}))
	s.Container = widgets.NewHamburger(env, "Hamburger", s.Content)
	if cfg.Menu != nil {
		title := widgets.NewLabel(env, cfg.Menu.Title)
		s.Menu = widgets.NewScreen(env, "Menu", layout.NewSingleLayout(layout.NewItem(title), geometry.Inset{Left: 1, Right: 1}))
		s.Menu.Options = cfg.Menu.Options
		s.Menu.SetColor(&MenuColor)
		s.Menu.OnFinishShow = func(bool) { s.emit("menu shown") }
		s.Menu.OnFinishHide = func(bool) { s.emit("menu hidden") }
		s.Container.SetLeading(s.Menu)
	}
	return s
}

func contentName(cfg *config.Scene) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	return "Content"
}

func (s *Scene) buildRow(i int, row config.Row) *widgets.SwipeCellView {
	env := s.Env
	name := fmt.Sprintf("Row%d", i)
	pad := max(s.Config.RowHeight-1, 0)
	inset := geometry.Inset{Top: float64(pad / 2), Bottom: float64(pad - pad/2), Left: 1, Right: 1}

	composition := widgets.NewContentValueCell[*widgets.Label, *widgets.Label, *widgets.Label](widgets.NewLabel(env, row.Title), inset)
	if row.Value != "" {
		composition.SetValue(widgets.NewLabel(env, row.Value), inset)
	}
	content := view.NewCustom(env, name+".Content", composition.Layout())
	content.SetColor(&RowColor)

	cell := widgets.NewSwipeCell(env, name, content)
	if row.Leading != nil {
		cell.SetLeading(panelLabel(env, row.Leading, LeadingColor), row.Leading.Options)
	}
	if row.Trailing != nil {
		cell.SetTrailing(panelLabel(env, row.Trailing, TrailingColor), row.Trailing.Options)
	}
	title := row.Title
	cell.OnPressed = func() { s.emit(title + ": pressed") }
	cell.OnShowLeading = func() { s.emit(title + ": leading shown") }
	cell.OnHideLeading = func() { s.emit(title + ": leading hidden") }
	cell.OnShowTrailing = func() { s.emit(title + ": trailing shown") }
	cell.OnHideTrailing = func() { s.emit(title + ": trailing hidden") }
	return cell
}

func panelLabel(env *view.Environment, p *config.Panel, color native.Color) *widgets.Label {
	label := widgets.NewLabel(env, p.Title)
	label.SetColor(&color)
	return label
}

func (s *Scene) emit(event string) {
	if s.OnEvent != nil {
		s.OnEvent(event)
	}
}

// Size returns the configured scene size.
func (s *Scene) Size() geometry.Size {
	return geometry.Size{Width: float64(s.Config.Width), Height: float64(s.Config.Height)}
}

// Row returns the cell at index, or an error naming the valid range.
func (s *Scene) Row(index int) (*widgets.SwipeCellView, error) {
	if index < 0 || index >= len(s.Rows) {
		return nil, fmt.Errorf("row %d out of range [0, %d)", index, len(s.Rows))
	}
	return s.Rows[index], nil
}

// Reveal shows side of the row at index.
func (s *Scene) Reveal(index int, side layout.Side, animated bool) error {
	cell, err := s.Row(index)
	if err != nil {
		return err
	}
	switch side {
	case layout.SideLeading:
		cell.ShowLeading(animated, nil)
	case layout.SideTrailing:
		cell.ShowTrailing(animated, nil)
	default:
		return fmt.Errorf("row %d: no side to reveal", index)
	}
	return nil
}

// Swipe moves the row at index one step toward side: a revealed opposite
// side is hidden, otherwise side is shown.
func (s *Scene) Swipe(index int, side layout.Side) error {
	cell, err := s.Row(index)
	if err != nil {
		return err
	}
	state := cell.State()
	switch {
	case state.Side == side:
		return nil
	case state.Side == layout.SideLeading:
		cell.HideLeading(true, nil)
	case state.Side == layout.SideTrailing:
		cell.HideTrailing(true, nil)
	default:
		return s.Reveal(index, side, true)
	}
	return nil
}

// Press taps the content of the row at index.
func (s *Scene) Press(index int) error {
	cell, err := s.Row(index)
	if err != nil {
		return err
	}
	at := cell.Bounds().Center()
	if content, ok := cell.Content().(view.View); ok {
		at = content.Frame().Center()
	}
	cell.TapGesture().Handle(gesture.Event{Phase: gesture.PhaseEnded, Location: at})
	return nil
}

// ToggleMenu shows the menu when idle and hides it otherwise.
func (s *Scene) ToggleMenu(animated bool) {
	if s.Menu == nil {
		return
	}
	if s.Container.State().IsIdle() {
		s.Container.ShowLeading(animated, nil)
	} else {
		s.Container.HideLeading(animated, nil)
	}
}

// ScrollTo scrolls the minimum distance that brings the row at index fully
// into view.
func (s *Scene) ScrollTo(index int) error {
	cell, err := s.Row(index)
	if err != nil {
		return err
	}
	top, ok := s.List.ContentOffsetFor(cell, widgets.AlignLeading, widgets.AlignLeading)
	if !ok {
		return nil
	}
	bottom, _ := s.List.ContentOffsetFor(cell, widgets.AlignLeading, widgets.AlignTrailing)
	offset := s.List.ContentOffset()
	switch {
	case offset.Y > top.Y:
		offset.Y = top.Y
	case offset.Y < bottom.Y:
		offset.Y = bottom.Y
	default:
		return nil
	}
	s.List.SetContentOffset(offset, true)
	return nil
}
