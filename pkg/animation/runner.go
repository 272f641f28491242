// Package animation drives progress-based interpolations from a frame loop.
//
// # Core Components
//
//   - [Runner]: the shared scheduler. It owns every active [Task] and advances
//     them once per display refresh through [Runner.Frame] or [Runner.Step].
//
//   - [Task]: one interpolation with a duration, a starting elapsed time, an
//     easing [Curve], a processing callback receiving eased progress and a
//     completion callback fired exactly once at 100%.
//
//   - [Slot]: a logical transition (e.g., "side panel of this cell"). Running
//     a new animation in a slot cancels the one it supersedes without firing
//     its completion.
//
//   - [Tween]: maps progress onto geometry values.
//
// A Runner is process-wide state confined to the UI thread. It is injected by
// reference into the views that animate, so tests construct their own runner
// with a fake clock instead of sharing hidden globals.
//
// # Basic Usage
//
//	runner := animation.NewRunner(animation.SystemClock{})
//	runner.Run(animation.Animation{
//	    Duration:   300 * time.Millisecond,
//	    Curve:      animation.QuadraticInOut,
//	    Processing: func(p float64) { layout.SetState(layout.Leading(p)) },
//	    Completion: func() { fmt.Println("shown") },
//	})
//
//	// Once per display refresh:
//	runner.Frame()
package animation

import (
	"slices"
	"time"

	"github.com/go-drift/quickly/pkg/errors"
)

// Animation configures a Task.
type Animation struct {
	// Duration is the total length. Zero or negative runs synchronously.
	Duration time.Duration
	// Elapsed is where the animation starts, for resuming mid-flight.
	Elapsed time.Duration
	// Curve eases progress. Nil means LinearCurve.
	Curve Curve
	// Processing receives eased progress on every tick.
	Processing func(progress float64)
	// Completion fires once after the final Processing call.
	Completion func()
}

// Task is an active interpolation owned by a Runner.
type Task struct {
	runner     *Runner
	duration   time.Duration
	elapsed    time.Duration
	curve      Curve
	processing func(float64)
	completion func()
	active     bool
}

// IsRunning reports whether the task is still scheduled.
func (t *Task) IsRunning() bool {
	return t != nil && t.active
}

// Elapsed returns the time the task has advanced so far.
func (t *Task) Elapsed() time.Duration {
	return t.elapsed
}

// Progress returns the linear progress in [0, 1], before easing.
func (t *Task) Progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	return clampUnit(float64(t.elapsed) / float64(t.duration))
}

// Cancel stops future ticks without firing the completion.
func (t *Task) Cancel() {
	if t == nil || !t.active {
		return
	}
	t.active = false
	t.runner.remove(t)
}

// Runner advances every active task once per frame.
//
// A Runner is not safe for concurrent use; confine it to the UI thread.
// Callbacks may call Run and Cancel re-entrantly: each step iterates over a
// snapshot, and tasks added during a step are first ticked on the next one.
type Runner struct {
	clock Clock
	tasks []*Task
	last  time.Time
}

// NewRunner creates a runner reading frame times from clock. A nil clock
// uses SystemClock.
func NewRunner(clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Runner{clock: clock}
}

// Run schedules an animation. With a non-positive duration the processing
// callback receives curve(1) and the completion fires before Run returns.
func (r *Runner) Run(a Animation) *Task {
	t := r.newTask(a)
	r.start(t)
	return t
}

// IsAnimating reports whether any task is scheduled.
func (r *Runner) IsAnimating() bool {
	return len(r.tasks) > 0
}

// Len returns the number of scheduled tasks.
func (r *Runner) Len() int {
	return len(r.tasks)
}

// Frame advances every task by the clock time since the previous frame, or
// since the runner left the idle state.
func (r *Runner) Frame() {
	if len(r.tasks) == 0 {
		return
	}
	now := r.clock.Now()
	dt := now.Sub(r.last)
	r.last = now
	r.Step(dt)
}

// Step advances every task by dt.
func (r *Runner) Step(dt time.Duration) {
	if len(r.tasks) == 0 {
		return
	}
	tasks := slices.Clone(r.tasks)
	for _, t := range tasks {
		if t.active {
			r.tick(t, dt)
		}
	}
	r.tasks = slices.DeleteFunc(r.tasks, func(t *Task) bool { return !t.active })
}

func (r *Runner) newTask(a Animation) *Task {
	curve := a.Curve
	if curve == nil {
		curve = LinearCurve
	}
	return &Task{
		runner:     r,
		duration:   a.Duration,
		elapsed:    max(a.Elapsed, 0),
		curve:      curve,
		processing: a.Processing,
		completion: a.Completion,
	}
}

func (r *Runner) start(t *Task) {
	if t.duration <= 0 {
		r.finish(t)
		return
	}
	if len(r.tasks) == 0 {
		r.last = r.clock.Now()
	}
	t.active = true
	r.tasks = append(r.tasks, t)
}

func (r *Runner) tick(t *Task, dt time.Duration) {
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.active = false
		r.finish(t)
		return
	}
	defer errors.RecoverWithCallback("animation.Runner.Step", func(any) {
		t.active = false
	})
	if t.processing != nil {
		t.processing(t.curve(t.Progress()))
	}
}

// finish delivers the final progress and the completion. The task is
// already inactive so a completion that restarts its slot never sees it.
func (r *Runner) finish(t *Task) {
	defer errors.Recover("animation.Runner.finish")
	if t.processing != nil {
		t.processing(t.curve(1))
	}
	if t.completion != nil {
		t.completion()
	}
}

func (r *Runner) remove(t *Task) {
	r.tasks = slices.DeleteFunc(r.tasks, func(other *Task) bool { return other == t })
}
