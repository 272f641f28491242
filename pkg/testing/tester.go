package testing

import (
	"errors"
	"io"
	"time"

	"github.com/go-drift/quickly/pkg/geometry"
	"github.com/go-drift/quickly/pkg/layout"
	"github.com/go-drift/quickly/pkg/native"
	"github.com/go-drift/quickly/pkg/view"
)

// ErrSettleTimeout is returned by PumpAndSettle when animations are still
// running after the timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: runner did not settle")

// FrameDuration is the clock advance applied by each Pump.
const FrameDuration = 16 * time.Millisecond

// ViewTester hosts a view tree on an in-memory backend with a fake clock.
type ViewTester struct {
	clock   *FakeClock
	backend *native.MemoryBackend
	env     *view.Environment
	root    *view.Root
}

// NewViewTester creates a tester whose root has the given size.
func NewViewTester(size geometry.Size) *ViewTester {
	clock := NewFakeClock()
	backend := native.NewMemoryBackend()
	return &ViewTester{
		clock:   clock,
		backend: backend,
		env:     view.NewEnvironment(backend, clock),
		root:    view.NewRoot(backend.Root(size), size),
	}
}

// Env returns the environment views under test should be created with.
func (vt *ViewTester) Env() *view.Environment {
	return vt.env
}

// Clock returns the fake clock driving the runner.
func (vt *ViewTester) Clock() *FakeClock {
	return vt.clock
}

// Backend returns the in-memory backend.
func (vt *ViewTester) Backend() *native.MemoryBackend {
	return vt.backend
}

// Root returns the root hosting the mounted view.
func (vt *ViewTester) Root() *view.Root {
	return vt.root
}

// Mount makes v the root content and flushes layout.
func (vt *ViewTester) Mount(v layout.View) {
	vt.root.Mount(v)
	vt.root.Flush()
}

// Pump advances the clock by one frame, steps the runner and flushes layout.
func (vt *ViewTester) Pump() {
	vt.clock.Advance(FrameDuration)
	vt.env.Runner.Frame()
	vt.root.Flush()
}

// PumpFrames pumps n frames.
func (vt *ViewTester) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		vt.Pump()
	}
}

// PumpAndSettle pumps frames until no animation is running or timeout of
// fake time elapses.
func (vt *ViewTester) PumpAndSettle(timeout time.Duration) error {
	vt.root.Flush()
	var elapsed time.Duration
	for vt.env.Runner.IsAnimating() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		vt.Pump()
		elapsed += FrameDuration
	}
	return nil
}

// Dump writes the backend tree under the root with frames in root
// coordinates.
func (vt *ViewTester) Dump(w io.Writer) error {
	h, ok := vt.root.NativeHandle().(*native.MemoryHandle)
	if !ok {
		return nil
	}
	return h.Dump(w)
}
