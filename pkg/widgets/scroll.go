package widgets

import (
	"math"
	"time"

	"github.com/go-drift/quickly/pkg/animation"
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/gesture"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/view"
)

// ScrollDirection is a set of axes a ScrollView scrolls along.
type ScrollDirection uint

const (
	ScrollHorizontal ScrollDirection = 1 << iota
	ScrollVertical
)

// Has reports whether d includes axis.
func (d ScrollDirection) Has(axis ScrollDirection) bool {
	return d&axis != 0
}

// ScrollAlignment selects where ContentOffsetFor places a view.
type ScrollAlignment int

const (
	AlignLeading ScrollAlignment = iota
	AlignCenter
	AlignTrailing
)

// ScrollView shows a window onto a content layout larger than itself. Only
// the content items intersecting the window are appeared, so long lists
// reuse a small set of native handles while scrolling.
//
// The content offset is the content point shown at the view's top-left
// corner. At rest the offset is the negated top-left content inset.
type ScrollView struct {
	*view.CustomView
	layout    *scrollLayout
	pan       *gesture.Pan
	slot      *animation.Slot
	direction ScrollDirection
	inset     geometry.Inset
	offset    geometry.Point
	dragStart geometry.Point
	scrolling bool

	OnBeginScrolling func()
	OnScrolling      func()
	OnEndScrolling   func()
}

// NewScroll creates a scroll view over content.
func NewScroll(env *view.Environment, name string, content layout.Layout, direction ScrollDirection) *ScrollView {
	s := &ScrollView{
		pan:       &gesture.Pan{},
		slot:      animation.NewSlot(env.Runner),
		direction: direction,
	}
	s.layout = newScrollLayout(s, content)
	s.CustomView = view.NewCustom(env, name, s.layout)

	s.pan.OnShouldBegin = func() bool { return s.accepts(s.pan.Translation()) }
	s.pan.OnBegin = s.beginScrolling
	s.pan.OnChange = func() {
		t := s.pan.Translation()
		s.SetContentOffset(s.dragStart.Sub(s.mask(t)), true)
	}
	s.pan.OnCancel = s.endScrolling
	s.pan.OnEnd = s.endScrolling
	s.AddGesture(s.pan)
	return s
}

// Direction returns the scrolling axes.
func (s *ScrollView) Direction() ScrollDirection { return s.direction }

// SetDirection changes the scrolling axes.
func (s *ScrollView) SetDirection(direction ScrollDirection) {
	s.direction = direction
	s.layout.SetNeedUpdate()
}

// ContentLayout returns the content layout.
func (s *ScrollView) ContentLayout() layout.Layout { return s.layout.content }

// SetContentLayout replaces the content layout.
func (s *ScrollView) SetContentLayout(content layout.Layout) {
	s.layout.setContent(content)
}

// ContentInset returns the inset around the content.
func (s *ScrollView) ContentInset() geometry.Inset { return s.inset }

// SetContentInset changes the inset around the content. The offset is
// kept and renormalized.
func (s *ScrollView) SetContentInset(inset geometry.Inset) {
	s.inset = inset
	s.layout.SetNeedUpdate()
	s.SetContentOffset(s.offset, true)
}

// ContentOffset returns the content point at the top-left corner.
func (s *ScrollView) ContentOffset() geometry.Point { return s.offset }

// SetContentOffset scrolls to offset. Normalized offsets are clamped so the
// content plus inset covers the view wherever possible.
func (s *ScrollView) SetContentOffset(offset geometry.Point, normalized bool) {
	if normalized {
		offset = s.normalize(offset)
	}
	if offset.Equal(s.offset) {
		return
	}
	s.offset = offset
	s.layout.SetNeedUpdate()
	s.layout.UpdateIfNeeded()
	call(s.OnScrolling)
}

// ContentSize returns the measured size of the content.
func (s *ScrollView) ContentSize() geometry.Size {
	return s.layout.measure(s.Bounds().Size)
}

// IsScrolling reports whether a drag is moving the content.
func (s *ScrollView) IsScrolling() bool { return s.scrolling }

// PanGesture returns the scrolling recognizer.
func (s *ScrollView) PanGesture() *gesture.Pan { return s.pan }

// EstimatedContentOffset returns the content distance left past the
// bottom-right corner of the view.
func (s *ScrollView) EstimatedContentOffset() geometry.Point {
	size := s.Bounds().Size
	content := s.ContentSize()
	return geometry.Point{
		X: (s.inset.Left + content.Width + s.inset.Right) - (s.offset.X + size.Width),
		Y: (s.inset.Top + content.Height + s.inset.Bottom) - (s.offset.Y + size.Height),
	}
}

// ScrollToTop moves the offset back to rest. The animation speed is one
// view length per second along the longer side.
func (s *ScrollView) ScrollToTop(animated bool, completion func()) {
	begin := s.offset
	end := geometry.Point{X: -s.inset.Left, Y: -s.inset.Top}
	distance := begin.Distance(end)
	size := s.Bounds().Size
	velocity := math.Max(size.Width, size.Height)
	if !animated || distance <= 0 || velocity <= 0 {
		s.slot.Cancel()
		s.SetContentOffset(end, false)
		call(completion)
		return
	}
	s.slot.Run(animation.Animation{
		Duration: time.Duration(distance / velocity * float64(time.Second)),
		Curve:    animation.QuadraticInOut,
		Processing: func(p float64) {
			s.SetContentOffset(begin.Lerp(end, p), false)
		},
		Completion: completion,
	})
}

// ContentOffsetFor returns the normalized offset that places v at the
// given alignments, using frames from the last layout pass. It reports
// false when v is not an item of a content layout that lists its items.
func (s *ScrollView) ContentOffsetFor(v layout.View, horizontal, vertical ScrollAlignment) (geometry.Point, bool) {
	lister, ok := s.layout.content.(interface{ AllItems() []*layout.Item })
	if !ok {
		return geometry.Point{}, false
	}
	for _, item := range lister.AllItems() {
		if item.View() != v {
			continue
		}
		size := s.Bounds().Size
		f := item.Frame
		return s.normalize(geometry.Point{
			X: align(horizontal, f.MinX(), f.MaxX(), size.Width, s.inset.Left, s.inset.Right),
			Y: align(vertical, f.MinY(), f.MaxY(), size.Height, s.inset.Top, s.inset.Bottom),
		}), true
	}
	return geometry.Point{}, false
}

func align(a ScrollAlignment, lo, hi, length, leading, trailing float64) float64 {
	switch a {
	case AlignCenter:
		return (lo+hi)/2 - length/2
	case AlignTrailing:
		return hi - length + trailing
	default:
		return lo - leading
	}
}

func (s *ScrollView) normalize(offset geometry.Point) geometry.Point {
	size := s.Bounds().Size
	content := s.ContentSize()
	clamp := func(v, lo, extent, trailing, length float64) float64 {
		hi := math.Max(lo, extent+trailing-length)
		return math.Min(math.Max(v, lo), hi)
	}
	return geometry.Point{
		X: clamp(offset.X, -s.inset.Left, content.Width, s.inset.Right, size.Width),
		Y: clamp(offset.Y, -s.inset.Top, content.Height, s.inset.Bottom, size.Height),
	}
}

func (s *ScrollView) mask(p geometry.Point) geometry.Point {
	if !s.direction.Has(ScrollHorizontal) {
		p.X = 0
	}
	if !s.direction.Has(ScrollVertical) {
		p.Y = 0
	}
	return p
}

func (s *ScrollView) accepts(translation geometry.Point) bool {
	dx, dy := math.Abs(translation.X), math.Abs(translation.Y)
	switch {
	case s.direction.Has(ScrollHorizontal) && s.direction.Has(ScrollVertical):
		return true
	case s.direction.Has(ScrollVertical):
		return dy >= dx
	case s.direction.Has(ScrollHorizontal):
		return dx >= dy
	default:
		return false
	}
}

func (s *ScrollView) beginScrolling() {
	s.slot.Cancel()
	s.dragStart = s.offset
	s.scrolling = true
	call(s.OnBeginScrolling)
}

func (s *ScrollView) endScrolling() {
	if !s.scrolling {
		return
	}
	s.scrolling = false
	call(s.OnEndScrolling)
}

// scrollLayout lays the content out at its measured size and hands the
// view the visible content items shifted by the offset. Shifted items are
// kept per content item so visible-item diffing sees stable identities.
type scrollLayout struct {
	layout.Base
	owner   *ScrollView
	content layout.Layout
	shifted map[*layout.Item]*layout.Item
}

func newScrollLayout(owner *ScrollView, content layout.Layout) *scrollLayout {
	l := &scrollLayout{owner: owner, shifted: make(map[*layout.Item]*layout.Item)}
	l.setContent(content)
	return l
}

func (l *scrollLayout) setContent(content layout.Layout) {
	if l.content != nil {
		l.content.SetDelegate(nil)
	}
	l.content = content
	clear(l.shifted)
	if content != nil {
		content.SetDelegate(l)
	}
	l.SetNeedUpdate()
}

// LayoutNeedUpdate implements layout.Delegate for the content.
func (l *scrollLayout) LayoutNeedUpdate() { l.SetNeedUpdate() }

// LayoutUpdateIfNeeded implements layout.Delegate for the content.
func (l *scrollLayout) LayoutUpdateIfNeeded() { l.UpdateIfNeeded() }

// measure sizes the content against viewport, unbounded along the
// scrolling axes.
func (l *scrollLayout) measure(viewport geometry.Size) geometry.Size {
	if l.content == nil {
		return geometry.Size{}
	}
	available := viewport.Inset(l.owner.inset)
	if l.owner.direction.Has(ScrollHorizontal) {
		available.Width = math.Inf(1)
	}
	if l.owner.direction.Has(ScrollVertical) {
		available.Height = math.Inf(1)
	}
	size := l.content.Size(available)
	if math.IsInf(size.Width, 0) {
		size.Width = viewport.Width
	}
	if math.IsInf(size.Height, 0) {
		size.Height = viewport.Height
	}
	return size.Clamped()
}

func (l *scrollLayout) Layout(bounds geometry.Rect) geometry.Size {
	if l.content != nil {
		l.content.Layout(geometry.Rect{Size: l.measure(bounds.Size)})
	}
	return bounds.Size
}

func (l *scrollLayout) Size(available geometry.Size) geometry.Size {
	return available
}

func (l *scrollLayout) Items(bounds geometry.Rect) []*layout.Item {
	if l.content == nil {
		return nil
	}
	offset := l.owner.offset
	window := geometry.Rect{Origin: offset, Size: bounds.Size}
	visible := l.content.Items(window)
	result := make([]*layout.Item, 0, len(visible))
	next := make(map[*layout.Item]*layout.Item, len(visible))
	for _, item := range visible {
		proxy, ok := l.shifted[item]
		if !ok {
			proxy = layout.NewItem(item.View())
		}
		proxy.Frame = item.Frame.Translate(-offset.X, -offset.Y)
		next[item] = proxy
		result = append(result, proxy)
	}
	l.shifted = next
	return result
}
