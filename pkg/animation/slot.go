package animation

// Slot holds the in-flight task of one logical transition. Running a new
// animation in the slot cancels the superseded task without firing its
// completion.
type Slot struct {
	runner *Runner
	task   *Task
}

// NewSlot creates an empty slot scheduling on runner.
func NewSlot(runner *Runner) *Slot {
	return &Slot{runner: runner}
}

// Run supersedes the current task with a.
//
// The slot records the new task before starting it, so a synchronous
// completion may chain another Run on the same slot.
func (s *Slot) Run(a Animation) *Task {
	s.Cancel()
	t := s.runner.newTask(a)
	s.task = t
	s.runner.start(t)
	return t
}

// Cancel stops the current task, if any, without firing its completion.
func (s *Slot) Cancel() {
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
}

// IsRunning reports whether the slot's task is still scheduled.
func (s *Slot) IsRunning() bool {
	return s.task.IsRunning()
}
