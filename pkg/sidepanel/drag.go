package sidepanel

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
)

// drag is the snapshot taken when an interactive drag begins.
type drag struct {
	origin geometry.Point
	begin  layout.SideState
}

// IsDragging reports whether a drag is in progress.
func (m *Machine) IsDragging() bool {
	return m.drag != nil
}

// BeginDrag snapshots the state and the drag origin. It is ignored while a
// transition is in flight.
func (m *Machine) BeginDrag(location geometry.Point) {
	if m.slot.IsRunning() {
		m.drag = nil
		return
	}
	m.pending = nil
	m.drag = &drag{origin: location, begin: m.layout.State()}
}

// ChangeDrag maps the horizontal travel since BeginDrag onto the revealed
// progress. From idle, positive travel reveals the leading side and negative
// travel the trailing side. From an open side only travel toward closing
// has an effect. Travel that switches sides cancels the side revealed so
// far before the other one begins.
func (m *Machine) ChangeDrag(location geometry.Point) {
	d := m.drag
	if d == nil {
		return
	}
	side, closing, distance := m.resolve(d, location.X-d.origin.X)
	if side == layout.SideNone {
		m.setState(d.begin)
		return
	}
	m.begin(side, !closing, true)
	p := m.panels[side].options.progress(distance)
	if closing {
		p = 1 - p
	}
	m.setState(layout.SideState{Side: side, Progress: p})
}

// EndDrag finishes the drag at location. Travel past the side's limit
// commits to the opposite end unless cancelled; shorter travel rolls back to
// the state the drag began in. Either way the animation resumes from the
// distance already covered.
func (m *Machine) EndDrag(location geometry.Point, cancelled bool) {
	d := m.drag
	if d == nil {
		return
	}
	m.drag = nil
	side, closing, distance := m.resolve(d, location.X-d.origin.X)
	if side == layout.SideNone {
		m.setState(d.begin)
		m.finish(false)
		return
	}
	m.begin(side, !closing, true)
	opts := m.panels[side].options
	distance = min(distance, max(opts.Size, 0))
	commit := !cancelled && (distance >= opts.limit() || opts.Size <= 0)

	travelled := opts.progress(distance)
	open := layout.SideState{Side: side, Progress: 1}
	switch {
	case commit && !closing:
		m.run(side, true, travelled, forward, open, true, nil)
	case commit && closing:
		m.run(side, true, travelled, backward, layout.Idle, true, nil)
	case !closing:
		m.run(side, true, 1-travelled, backward, layout.Idle, false, nil)
	default:
		m.run(side, true, 1-travelled, forward, open, false, nil)
	}
}

// resolve returns the side a drag with horizontal travel dx acts on,
// whether it closes that side and the travel distance toward closing or
// opening. SideNone means the travel has no effect.
func (m *Machine) resolve(d *drag, dx float64) (side layout.Side, closing bool, distance float64) {
	switch d.begin.Side {
	case layout.SideNone:
		if dx > 0 && m.interactive(layout.SideLeading) {
			return layout.SideLeading, false, dx
		}
		if dx < 0 && m.interactive(layout.SideTrailing) {
			return layout.SideTrailing, false, -dx
		}
	case layout.SideLeading:
		if dx < 0 && m.interactive(layout.SideLeading) {
			return layout.SideLeading, true, -dx
		}
	case layout.SideTrailing:
		if dx > 0 && m.interactive(layout.SideTrailing) {
			return layout.SideTrailing, true, dx
		}
	}
	return layout.SideNone, false, 0
}
