package widgets

import (
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/reuse"
	"github.com/go-drift/quickly/pkg/view"
	"github.com/mattn/go-runewidth"
)

// LabelKind is the native handle kind and reuse identifier of Label.
const LabelKind = "Label"

// Ellipsis marks text truncated to fit its frame.
const Ellipsis = "…"

// Metrics converts text columns into points. Text is measured in display
// columns, so wide runes count twice.
type Metrics struct {
	// Advance is the width of one column.
	Advance float64 `yaml:"advance"`
	// LineHeight is the height of the single line.
	LineHeight float64 `yaml:"lineHeight"`
}

// CellMetrics measures one point per terminal cell.
var CellMetrics = Metrics{Advance: 1, LineHeight: 1}

var labelReuse = reuse.Reusable[*Label, native.Handle]{
	ID: LabelKind,
	Create: func(l *Label) native.Handle {
		return l.env.Backend.NewHandle(LabelKind)
	},
	Configure: func(l *Label, h native.Handle) {
		h.SetFrame(l.frame)
		h.Apply(l.nativeStyle())
	},
	Cleanup: func(l *Label, h native.Handle) {
		h.RemoveFromParent()
	},
}

// Label is a single line of text.
type Label struct {
	env     *view.Environment
	text    string
	metrics Metrics
	style   native.Style
	frame   geometry.Rect
	handle  native.Handle
	parent  layout.Parent
}

// NewLabel creates a label measured with CellMetrics.
func NewLabel(env *view.Environment, text string) *Label {
	return &Label{
		env:     env,
		text:    text,
		metrics: CellMetrics,
		style:   native.Style{Name: LabelKind, Alpha: 1},
	}
}

// Text returns the full text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and asks the parent to remeasure.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.apply()
	if l.parent != nil {
		l.parent.SetNeedLayout()
	}
}

// Metrics returns the measuring metrics.
func (l *Label) Metrics() Metrics { return l.metrics }

// SetMetrics changes the measuring metrics.
func (l *Label) SetMetrics(m Metrics) {
	l.metrics = m
	if l.parent != nil {
		l.parent.SetNeedLayout()
	}
}

// SetColor sets the text color. Nil uses the backend default.
func (l *Label) SetColor(color *native.Color) {
	l.style.Color = color
	l.apply()
}

// Columns returns the display width of the full text.
func (l *Label) Columns() int {
	return runewidth.StringWidth(l.text)
}

// Fitted returns the text truncated with Ellipsis to the frame width.
func (l *Label) Fitted() string {
	if l.metrics.Advance <= 0 {
		return l.text
	}
	columns := int(l.frame.Size.Width / l.metrics.Advance)
	return runewidth.Truncate(l.text, columns, Ellipsis)
}

func (l *Label) Size(available geometry.Size) geometry.Size {
	width := float64(l.Columns()) * l.metrics.Advance
	return geometry.Size{
		Width:  max(min(width, available.Width), 0),
		Height: l.metrics.LineHeight,
	}
}

func (l *Label) Frame() geometry.Rect { return l.frame }

func (l *Label) SetFrame(frame geometry.Rect) {
	l.frame = frame.Clamped()
	if l.handle != nil {
		l.handle.SetFrame(l.frame)
		l.apply()
	}
}

func (l *Label) Appear(parent layout.Parent) {
	if l.handle != nil {
		return
	}
	l.parent = parent
	l.handle = reuse.Get(l.env.Cache, labelReuse, l)
	if parent != nil {
		if ph := parent.NativeHandle(); ph != nil {
			ph.AddChild(l.handle)
		}
	}
}

func (l *Label) Disappear() {
	if l.handle == nil {
		return
	}
	reuse.Set(l.env.Cache, labelReuse, l, l.handle)
	l.handle = nil
	l.parent = nil
}

func (l *Label) IsAppeared() bool { return l.handle != nil }

func (l *Label) nativeStyle() native.Style {
	s := l.style
	s.Text = l.Fitted()
	return s
}

func (l *Label) apply() {
	if l.handle != nil {
		l.handle.Apply(l.nativeStyle())
	}
}
