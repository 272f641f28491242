package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/quickly/pkg/geometry"
)

// Side identifies which side panel a state refers to.
type Side int

const (
	// SideNone means no panel is involved.
	SideNone Side = iota
	// SideLeading is the panel revealed by dragging content toward the trailing edge.
	SideLeading
	// SideTrailing is the panel revealed by dragging content toward the leading edge.
	SideTrailing
)

func (s Side) String() string {
	switch s {
	case SideLeading:
		return "leading"
	case SideTrailing:
		return "trailing"
	default:
		return "none"
	}
}

// SideState is the interactive state of a side panel layout: idle, or one
// side revealed by Progress in [0, 1].
type SideState struct {
	Side     Side
	Progress float64
}

// Idle is the state with both panels hidden.
var Idle = SideState{}

// Leading returns the leading state at progress, clamped to [0, 1].
func Leading(progress float64) SideState {
	return SideState{Side: SideLeading, Progress: clampUnit(progress)}
}

// Trailing returns the trailing state at progress, clamped to [0, 1].
func Trailing(progress float64) SideState {
	return SideState{Side: SideTrailing, Progress: clampUnit(progress)}
}

// IsIdle reports whether no panel is involved.
func (s SideState) IsIdle() bool {
	return s.Side == SideNone
}

// IsOpen reports whether side is fully revealed.
func (s SideState) IsOpen(side Side) bool {
	return side != SideNone && s.Side == side && s.Progress >= 1
}

func (s SideState) String() string {
	if s.Side == SideNone {
		return "idle"
	}
	return fmt.Sprintf("%s(%.3g)", s.Side, s.Progress)
}

func clampUnit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// SidePanelLayout positions a content item and at most one revealed side
// panel. The panel sits entirely outside the bounds at progress 0 and flush
// against the displaced content edge at progress 1; the content slides by
// the panel size. Frames between the two are linear interpolations.
//
// With FillAvailable set the layout measures as the whole available space
// (a container); otherwise it wraps the content height (a cell).
type SidePanelLayout struct {
	Base
	state         SideState
	content       *Item
	leading       *Item
	leadingSize   float64
	trailing      *Item
	trailingSize  float64
	fillAvailable bool
}

// NewSidePanelLayout creates an idle layout around content.
func NewSidePanelLayout(content *Item, fillAvailable bool) *SidePanelLayout {
	return &SidePanelLayout{content: content, fillAvailable: fillAvailable}
}

// State returns the current interactive state.
func (l *SidePanelLayout) State() SideState {
	return l.state
}

// SetState changes the interactive state.
func (l *SidePanelLayout) SetState(state SideState) {
	l.state = state
	l.SetNeedUpdate()
}

// Content returns the content item.
func (l *SidePanelLayout) Content() *Item {
	return l.content
}

// SetContent replaces the content item.
func (l *SidePanelLayout) SetContent(item *Item) {
	l.content = item
	l.SetNeedUpdate()
}

// Panel returns the item and size configured for side.
func (l *SidePanelLayout) Panel(side Side) (*Item, float64) {
	switch side {
	case SideLeading:
		return l.leading, l.leadingSize
	case SideTrailing:
		return l.trailing, l.trailingSize
	default:
		return nil, 0
	}
}

// SetPanel configures the item and size for side. A nil item removes the
// panel.
func (l *SidePanelLayout) SetPanel(side Side, item *Item, size float64) {
	switch side {
	case SideLeading:
		l.leading, l.leadingSize = item, size
	case SideTrailing:
		l.trailing, l.trailingSize = item, size
	default:
		return
	}
	l.SetNeedUpdate()
}

// SetPanelSize changes only the size of side.
func (l *SidePanelLayout) SetPanelSize(side Side, size float64) {
	item, _ := l.Panel(side)
	l.SetPanel(side, item, size)
}

// Frames returns the begin and end frames of the content and the panel for
// side inside bounds. Progress interpolates from begin to end.
func (l *SidePanelLayout) Frames(side Side, bounds geometry.Rect) (contentBegin, contentEnd, panelBegin, panelEnd geometry.Rect) {
	_, size := l.Panel(side)
	contentBegin = bounds
	contentEnd = bounds
	switch side {
	case SideLeading:
		contentEnd = bounds.Translate(size, 0)
		panelBegin = geometry.RectFromXYWH(bounds.MinX()-size, bounds.MinY(), size, bounds.Size.Height)
		panelEnd = geometry.RectFromXYWH(bounds.MinX(), bounds.MinY(), size, bounds.Size.Height)
	case SideTrailing:
		contentEnd = bounds.Translate(-size, 0)
		panelBegin = geometry.RectFromXYWH(bounds.MaxX(), bounds.MinY(), size, bounds.Size.Height)
		panelEnd = geometry.RectFromXYWH(bounds.MaxX()-size, bounds.MinY(), size, bounds.Size.Height)
	}
	return contentBegin, contentEnd, panelBegin, panelEnd
}

func (l *SidePanelLayout) Layout(bounds geometry.Rect) geometry.Size {
	panel, _ := l.Panel(l.state.Side)
	if panel == nil {
		if l.content != nil {
			l.content.Frame = bounds
		}
		return bounds.Size
	}
	contentBegin, contentEnd, panelBegin, panelEnd := l.Frames(l.state.Side, bounds)
	if l.content != nil {
		l.content.Frame = contentBegin.Lerp(contentEnd, l.state.Progress)
	}
	panel.Frame = panelBegin.Lerp(panelEnd, l.state.Progress)
	return bounds.Size
}

func (l *SidePanelLayout) Size(available geometry.Size) geometry.Size {
	if l.fillAvailable {
		return available
	}
	content := l.content.Size(available)
	height := content.Height
	if panel, size := l.Panel(l.state.Side); panel != nil {
		height = math.Max(height, panel.Size(geometry.Size{Width: size, Height: content.Height}).Height)
	}
	return geometry.Size{Width: available.Width, Height: height}
}

// Items returns the revealed panel first, so it sits beneath the content,
// followed by the content.
func (l *SidePanelLayout) Items(bounds geometry.Rect) []*Item {
	panel, _ := l.Panel(l.state.Side)
	return Visible(bounds, panel, l.content)
}
