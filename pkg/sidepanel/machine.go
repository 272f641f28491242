// Package sidepanel implements the interactive state machine behind swipe
// cells and hamburger containers.
//
// A [Machine] drives a [layout.SidePanelLayout] between idle and one fully
// revealed side. Programmatic transitions ([Machine.Show], [Machine.Hide])
// and drag gestures ([Machine.BeginDrag], [Machine.ChangeDrag],
// [Machine.EndDrag]) share one animation slot, so a new transition always
// supersedes the one in flight.
//
// Only one side is open at a time. Showing a side while the opposite one is
// open first hides it; the show waits as a [Request] (see [Machine.Pending])
// until the hide completes.
//
// Every Will hook is closed by exactly one Did or Cancel hook of the same
// side. A transition superseded mid-flight gets its Cancel hook, unless the
// new one heads the same way, which keeps the open hook. Completions of
// superseded calls run when the machine comes to rest.
//
// Example:
//
//	m := sidepanel.New(panelLayout, env.Runner)
//	m.Configure(layout.SideTrailing, sidepanel.DefaultOptions(80), sidepanel.Hooks{
//	    DidShow: func(bool) { fmt.Println("actions revealed") },
//	})
//	m.Show(layout.SideTrailing, true, nil)
package sidepanel

import (
	"github.com/go-drift/quickly/pkg/animation"
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
)

// Hooks observe the lifecycle of one side. Every hook receives whether the
// transition was driven by user interaction. Nil hooks are skipped.
type Hooks struct {
	WillShow   func(interactive bool)
	DidShow    func(interactive bool)
	CancelShow func(interactive bool)
	WillHide   func(interactive bool)
	DidHide    func(interactive bool)
	CancelHide func(interactive bool)
}

func fire(hook func(bool), interactive bool) {
	if hook != nil {
		hook(interactive)
	}
}

// Request is a show waiting for the opposite side to finish hiding.
type Request struct {
	Side       layout.Side
	Animated   bool
	Completion func()

	interactive bool
}

type panel struct {
	options Options
	hooks   Hooks
}

// bracket is a Will hook that fired and waits for its Did or Cancel hook.
type bracket struct {
	side        layout.Side
	showing     bool
	interactive bool
}

// Machine drives a SidePanelLayout. It is confined to the UI thread like the
// runner it schedules on.
type Machine struct {
	layout      *layout.SidePanelLayout
	slot        *animation.Slot
	panels      [3]panel
	pending     *Request
	drag        *drag
	open        *bracket
	completions []func() // callers waiting for the transition in flight
}

// New creates a machine for l scheduling animations on runner.
func New(l *layout.SidePanelLayout, runner *animation.Runner) *Machine {
	return &Machine{
		layout: l,
		slot:   animation.NewSlot(runner),
	}
}

// Layout returns the driven layout.
func (m *Machine) Layout() *layout.SidePanelLayout {
	return m.layout
}

// State returns the layout state.
func (m *Machine) State() layout.SideState {
	return m.layout.State()
}

// Configure sets the options and hooks of side and resizes its panel.
func (m *Machine) Configure(side layout.Side, options Options, hooks Hooks) {
	if side == layout.SideNone {
		return
	}
	m.panels[side] = panel{options: options, hooks: hooks}
	m.layout.SetPanelSize(side, options.Size)
}

// Options returns the options of side.
func (m *Machine) Options(side layout.Side) Options {
	return m.panels[side].options
}

// SetOptions changes the options of side, keeping its hooks.
func (m *Machine) SetOptions(side layout.Side, options Options) {
	m.Configure(side, options, m.panels[side].hooks)
}

// SetHooks changes the hooks of side, keeping its options.
func (m *Machine) SetHooks(side layout.Side, hooks Hooks) {
	if side == layout.SideNone {
		return
	}
	m.panels[side].hooks = hooks
}

// Pending returns the show waiting for the opposite side to hide.
func (m *Machine) Pending() (Request, bool) {
	if m.pending == nil {
		return Request{}, false
	}
	return *m.pending, true
}

// IsAnimating reports whether a transition is in flight.
func (m *Machine) IsAnimating() bool {
	return m.slot.IsRunning()
}

// IsShown reports whether side is fully revealed and at rest.
func (m *Machine) IsShown(side layout.Side) bool {
	return m.layout.State().IsOpen(side) && !m.slot.IsRunning()
}

func (m *Machine) present(side layout.Side) bool {
	if side == layout.SideNone {
		return false
	}
	item, _ := m.layout.Panel(side)
	return item != nil
}

func (m *Machine) setState(state layout.SideState) {
	m.layout.SetState(state)
	m.layout.UpdateIfNeeded()
}

// Show reveals side. Without a panel on side the completion runs at once.
// With the opposite side open, that side is hidden first.
func (m *Machine) Show(side layout.Side, animated bool, completion func()) {
	completion = join(m.interrupt(), completion)
	m.show(side, animated, false, completion)
}

// Hide dismisses side. When side is not revealed the completion runs at
// once.
func (m *Machine) Hide(side layout.Side, animated bool, completion func()) {
	completion = join(m.interrupt(), completion)
	m.hide(side, animated, false, completion)
}

// Tap closes the revealed side with an interactive animation and reports
// true, or reports false when idle so the caller can run its own action.
func (m *Machine) Tap() bool {
	state := m.layout.State()
	if state.IsIdle() {
		return false
	}
	m.hide(state.Side, true, true, m.interrupt())
	return true
}

// interrupt abandons a drag and a chained show, returning the completion of
// the latter so the superseding call still runs it.
func (m *Machine) interrupt() func() {
	m.drag = nil
	r := m.pending
	m.pending = nil
	if r == nil {
		return nil
	}
	return r.Completion
}

func (m *Machine) show(side layout.Side, animated, interactive bool, completion func()) {
	if !m.present(side) {
		m.rest(completion)
		return
	}
	state := m.layout.State()
	if !state.IsIdle() && state.Side != side {
		m.pending = &Request{Side: side, Animated: animated, Completion: completion, interactive: interactive}
		m.hide(state.Side, animated, interactive, m.resume)
		return
	}
	if m.IsShown(side) {
		m.rest(completion)
		return
	}
	m.begin(side, true, interactive)
	from := 0.0
	if state.Side == side {
		from = state.Progress
	}
	m.run(side, animated, from, forward, layout.SideState{Side: side, Progress: 1}, true, completion)
}

func (m *Machine) hide(side layout.Side, animated, interactive bool, completion func()) {
	state := m.layout.State()
	if !m.present(side) || state.Side != side {
		m.rest(completion)
		return
	}
	m.begin(side, false, interactive)
	m.run(side, animated, 1-state.Progress, backward, layout.Idle, true, completion)
}

// resume starts the pending show once the opposite side finished hiding.
func (m *Machine) resume() {
	r := m.pending
	m.pending = nil
	if r != nil {
		m.show(r.Side, r.Animated, r.interactive, r.Completion)
	}
}

// begin fires the Will hook of a transition of side, closing a bracket
// left open by a superseded transition with its Cancel hook. A bracket for
// the same side and direction stays open.
func (m *Machine) begin(side layout.Side, showing, interactive bool) {
	if o := m.open; o != nil {
		if o.side == side && o.showing == showing {
			return
		}
		m.finish(false)
	}
	m.open = &bracket{side: side, showing: showing, interactive: interactive}
	hooks := m.panels[side].hooks
	if showing {
		fire(hooks.WillShow, interactive)
	} else {
		fire(hooks.WillHide, interactive)
	}
}

// finish closes the open bracket with its Did hook when the transition
// reached its end, or its Cancel hook otherwise.
func (m *Machine) finish(done bool) {
	o := m.open
	if o == nil {
		return
	}
	m.open = nil
	hooks := m.panels[o.side].hooks
	switch {
	case done && o.showing:
		fire(hooks.DidShow, o.interactive)
	case done:
		fire(hooks.DidHide, o.interactive)
	case o.showing:
		fire(hooks.CancelShow, o.interactive)
	default:
		fire(hooks.CancelHide, o.interactive)
	}
}

// rest runs completion for a call that needs no animation. A bracket left
// open by an abandoned drag is closed against the current state first.
func (m *Machine) rest(completion func()) {
	if o := m.open; o != nil && !m.slot.IsRunning() {
		state := m.layout.State()
		m.finish(o.showing && state.IsOpen(o.side) || !o.showing && state.IsIdle())
	}
	call(completion)
}

// settle ends the transition in flight at state and runs every completion
// queued for it.
func (m *Machine) settle(state layout.SideState, done bool) {
	m.setState(state)
	m.finish(done)
	completions := m.completions
	m.completions = nil
	for _, fn := range completions {
		fn()
	}
}

func forward(q float64) float64  { return q }
func backward(q float64) float64 { return 1 - q }

// run animates side over the full panel travel starting at travelled, a
// fraction of the panel size already covered, and settles at end. progress
// maps the task progress onto the layout progress of side. A transition
// from rest follows the side's curve; one resumed mid-way continues
// linearly so the speed matches.
func (m *Machine) run(side layout.Side, animated bool, travelled float64, progress func(float64) float64, end layout.SideState, done bool, completion func()) {
	if completion != nil {
		m.completions = append(m.completions, completion)
	}
	opts := m.panels[side].options
	a := animation.Animation{
		Processing: func(q float64) {
			m.setState(layout.SideState{Side: side, Progress: progress(q)})
		},
		Completion: func() { m.settle(end, done) },
	}
	if animated {
		a.Duration = opts.travel(opts.Size)
		a.Elapsed = opts.travel(travelled * opts.Size)
		if a.Elapsed == 0 {
			a.Curve = opts.curve()
		}
	}
	m.slot.Run(a)
}

func join(a, b func()) func() {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func() {
		a()
		b()
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// ShouldBeginDrag reports whether a pan with translation may drive the
// machine: a panel allowing interaction exists, the movement is mostly
// horizontal and no transition is in flight.
func (m *Machine) ShouldBeginDrag(translation geometry.Point) bool {
	if m.slot.IsRunning() {
		return false
	}
	if !m.interactive(layout.SideLeading) && !m.interactive(layout.SideTrailing) {
		return false
	}
	return abs(translation.X) >= abs(translation.Y)
}

func (m *Machine) interactive(side layout.Side) bool {
	return m.present(side) && m.panels[side].options.Interactive
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
