// Package preview renders a view tree held by a native.MemoryBackend into
// a terminal and drives it interactively with bubbletea.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/widgets"
)

type cell struct {
	r          rune
	tail       bool
	foreground *native.Color
	background *native.Color
	selected   bool
}

// Canvas is a grid of terminal cells painted from a memory handle tree.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// Paint draws the subtree of root into a width x height canvas. Nodes are
// clipped to their ancestors; text nodes print their text and nodes with
// an opaque color fill their frame. Cells covered by selected are marked
// for highlighting.
func Paint(root *native.MemoryHandle, width, height int, selected *native.MemoryHandle) *Canvas {
	c := &Canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([]cell, c.width*c.height)
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	if root != nil {
		bounds := geometry.RectFromXYWH(0, 0, float64(c.width), float64(c.height))
		c.paint(root, geometry.Point{}, bounds, selected)
	}
	return c
}

func (c *Canvas) paint(node *native.MemoryHandle, base geometry.Point, clip geometry.Rect, selected *native.MemoryHandle) {
	frame := geometry.Rect{Origin: base.Add(node.Frame.Origin), Size: node.Frame.Size}
	clip = clip.Intersect(frame)
	if clip.Size.IsZero() {
		return
	}
	x0, y0, x1, y1 := cellRange(clip)
	text := node.Kind == widgets.LabelKind
	if node.Style.IsOpaque() && !text {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				*c.at(x, y) = cell{r: ' ', background: node.Style.Color}
			}
		}
	}
	if text {
		c.text(node.Style.Text, node.Style.Color, int(math.Round(frame.MinX())), int(math.Round(frame.MinY())), x0, y0, x1, y1)
	}
	if node == selected {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.at(x, y).selected = true
			}
		}
	}
	for _, child := range node.Children {
		c.paint(child, frame.Origin, clip, selected)
	}
}

func (c *Canvas) text(s string, color *native.Color, x, y, x0, y0, x1, y1 int) {
	if y < y0 || y >= y1 {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= x0 && x+w <= x1 {
			target := c.at(x, y)
			target.r = r
			target.tail = false
			target.foreground = color
			for i := 1; i < w; i++ {
				tail := c.at(x+i, y)
				tail.r = 0
				tail.tail = true
			}
		}
		x += w
		if x >= x1 {
			return
		}
	}
}

func cellRange(r geometry.Rect) (x0, y0, x1, y1 int) {
	return int(math.Round(r.MinX())), int(math.Round(r.MinY())), int(math.Round(r.MaxX())), int(math.Round(r.MaxY()))
}

func (c *Canvas) at(x, y int) *cell {
	return &c.cells[y*c.width+x]
}

// Lines returns the plain text of every row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := range lines {
		var b strings.Builder
		for x := 0; x < c.width; x++ {
			if cl := c.at(x, y); !cl.tail {
				b.WriteRune(cl.r)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Render returns the canvas with colors applied. Selected cells are drawn
// with highlight.
func (c *Canvas) Render(highlight lipgloss.Style) string {
	lines := make([]string, c.height)
	for y := range lines {
		var b, run strings.Builder
		var current look
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(current.style(highlight).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.width; x++ {
			cl := c.at(x, y)
			if cl.tail {
				continue
			}
			if l := cl.look(); l != current {
				flush()
				current = l
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// look is the styling of a cell as a comparable value.
type look struct {
	foreground string
	background string
	selected   bool
}

func (cl *cell) look() look {
	return look{foreground: hex(cl.foreground), background: hex(cl.background), selected: cl.selected}
}

func (l look) style(highlight lipgloss.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if l.selected {
		s = highlight
	}
	if l.foreground != "" {
		s = s.Foreground(lipgloss.Color(l.foreground))
	}
	if l.background != "" && !l.selected {
		s = s.Background(lipgloss.Color(l.background))
	}
	return s
}

func hex(c *native.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
