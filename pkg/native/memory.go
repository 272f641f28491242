package native

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-drift/quickly/pkg/geometry"
)

// MemoryBackend is a headless Backend that keeps every handle as an
// in-memory node. It backs the command-line tools and tests that need a real
// tree rather than call expectations.
type MemoryBackend struct {
	mu      sync.Mutex
	created map[string]int
	roots   []*MemoryHandle
}

// NewMemoryBackend creates an empty headless backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{created: make(map[string]int)}
}

// NewHandle creates a detached node of the given kind.
func (b *MemoryBackend) NewHandle(kind string) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.created[kind]++
	return &MemoryHandle{Kind: kind, ID: b.created[kind]}
}

// Created returns how many handles of kind were ever created.
func (b *MemoryBackend) Created(kind string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created[kind]
}

// Root returns a fresh root node that the caller attaches views to.
func (b *MemoryBackend) Root(size geometry.Size) *MemoryHandle {
	root := &MemoryHandle{Kind: "Root", Frame: geometry.Rect{Size: size}}
	b.mu.Lock()
	b.roots = append(b.roots, root)
	b.mu.Unlock()
	return root
}

// MemoryHandle is a node in a MemoryBackend tree.
type MemoryHandle struct {
	Kind     string
	ID       int
	Frame    geometry.Rect
	Style    Style
	Parent   *MemoryHandle
	Children []*MemoryHandle
}

// SetFrame records the frame.
func (h *MemoryHandle) SetFrame(frame geometry.Rect) {
	h.Frame = frame
}

// AddChild appends child, detaching it from its previous parent first.
// Handles from other backends are ignored.
func (h *MemoryHandle) AddChild(child Handle) {
	c, ok := child.(*MemoryHandle)
	if !ok || c == h {
		return
	}
	c.RemoveFromParent()
	c.Parent = h
	h.Children = append(h.Children, c)
}

// RemoveFromParent detaches the node.
func (h *MemoryHandle) RemoveFromParent() {
	p := h.Parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == h {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	h.Parent = nil
}

// Apply records the style.
func (h *MemoryHandle) Apply(style Style) {
	h.Style = style
}

// Walk visits the node and its descendants depth first. The origin passed
// to fn is the node's frame translated into root coordinates.
func (h *MemoryHandle) Walk(fn func(node *MemoryHandle, depth int, origin geometry.Point)) {
	h.walk(fn, 0, geometry.Point{})
}

func (h *MemoryHandle) walk(fn func(*MemoryHandle, int, geometry.Point), depth int, base geometry.Point) {
	origin := base.Add(h.Frame.Origin)
	fn(h, depth, origin)
	for _, c := range h.Children {
		c.walk(fn, depth+1, origin)
	}
}

// Dump writes an indented frame listing of the subtree to w.
func (h *MemoryHandle) Dump(w io.Writer) error {
	var err error
	h.Walk(func(node *MemoryHandle, depth int, origin geometry.Point) {
		if err != nil {
			return
		}
		name := node.Kind
		if node.Style.Name != "" {
			name = node.Style.Name
		}
		if node.Style.Text != "" {
			name += fmt.Sprintf(" %q", node.Style.Text)
		}
		_, err = fmt.Fprintf(w, "%s%s (%g,%g %gx%g)\n",
			strings.Repeat("  ", depth), name,
			origin.X, origin.Y, node.Frame.Size.Width, node.Frame.Size.Height)
	})
	return err
}
