// Package view implements the retained view tree on top of layouts, the
// reuse cache and the animation runner.
//
// A [CustomView] owns a [layout.Layout], hosts the layout's visible items as
// children and holds a native handle only while it is appeared. The handle
// comes from the environment's reuse cache on appear and goes back on
// disappear, so scrolling a long list recycles a small, stable set of native
// objects.
//
// Views never reach for global state. Everything shared (backend, reuse
// cache, runner) travels in an [Environment] passed to constructors.
package view

import (
	"github.com/go-drift/quickly/pkg/animation"
	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/reuse"
)

// Environment carries the process-wide collaborators of a view tree.
type Environment struct {
	Backend native.Backend
	Cache   *reuse.Cache
	Runner  *animation.Runner
}

// NewEnvironment creates an environment with a fresh cache and a runner
// reading clock. A nil clock uses the system clock.
func NewEnvironment(backend native.Backend, clock animation.Clock) *Environment {
	return &Environment{
		Backend: backend,
		Cache:   reuse.New(),
		Runner:  animation.NewRunner(clock),
	}
}

// View is a node of the retained tree.
type View interface {
	layout.View

	// Frame returns the frame last assigned by the parent layout.
	Frame() geometry.Rect
}

// Flusher is implemented by views that defer layout until flushed.
type Flusher interface {
	LayoutIfNeeded()
}

// flush runs a pending layout pass on view if it supports one.
func flush(v layout.View) {
	if f, ok := v.(Flusher); ok {
		f.LayoutIfNeeded()
	}
}

// Root hosts the top view of a tree inside a native handle supplied by the
// platform (a window, a terminal screen).
type Root struct {
	handle     native.Handle
	size       geometry.Size
	content    layout.View
	needLayout bool
}

// NewRoot creates a root of the given size attached to handle.
func NewRoot(handle native.Handle, size geometry.Size) *Root {
	return &Root{handle: handle, size: size}
}

// Mount makes v the content, replacing the previous content.
func (r *Root) Mount(v layout.View) {
	if r.content != nil && r.content.IsAppeared() {
		r.content.Disappear()
	}
	r.content = v
	if v == nil {
		return
	}
	v.SetFrame(geometry.Rect{Size: r.size})
	v.Appear(r)
	r.needLayout = false
}

// Content returns the mounted view.
func (r *Root) Content() layout.View {
	return r.content
}

// Size returns the root size.
func (r *Root) Size() geometry.Size {
	return r.size
}

// Resize changes the root size.
func (r *Root) Resize(size geometry.Size) {
	r.size = size
	r.needLayout = true
}

// NativeHandle returns the platform handle.
func (r *Root) NativeHandle() native.Handle {
	return r.handle
}

// SetNeedLayout marks the root dirty.
func (r *Root) SetNeedLayout() {
	r.needLayout = true
}

// Flush applies pending frame and layout changes down the tree.
func (r *Root) Flush() {
	if r.content == nil {
		return
	}
	if r.needLayout {
		r.needLayout = false
		r.content.SetFrame(geometry.Rect{Size: r.size})
	}
	flush(r.content)
}

// Unmount disappears the content and forgets it.
func (r *Root) Unmount() {
	r.Mount(nil)
}
