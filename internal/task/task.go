// Package task holds the per-script state shared between the process
// runners (writers) and the display manager (reader).
package task

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultWindow is the number of recent output lines retained for a
// task that has not failed.
const DefaultWindow = 3

// Status is the lifecycle state of a supervised script.
type Status int

const (
	// Running means the script has not yet exited.
	Running Status = iota
	// Succeeded means the script exited with code 0.
	Succeeded
	// Failed means the script exited non-zero or could not be run.
	Failed
)

// String returns the status label used in the rendered block.
func (s Status) String() string {
	switch s {
	case Succeeded:
		return "Finished ✓"
	case Failed:
		return "Failed 𐄂"
	default:
		return "Processing..."
	}
}

// Task is the mutable state for one supervised script. It is written by
// exactly one runner goroutine and read concurrently by the display
// manager; all mutable fields are guarded by mu.
type Task struct {
	name   string
	runID  string
	window int

	mu       sync.Mutex
	status   Status
	exitInfo string
	failed   bool
	lines    []string
	evicted  []string
	hidden   int
}

// New creates a task in the Running state with the given retention
// window. A window of 0 or less falls back to DefaultWindow.
func New(name string, window int) *Task {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Task{
		name:   name,
		runID:  uuid.New().String(),
		window: window,
	}
}

// Name returns the task identifier. Immutable after creation.
func (t *Task) Name() string { return t.name }

// RunID returns the unique identifier for this run attempt.
func (t *Task) RunID() string { return t.runID }

// Append records one completed output line. While the task has not
// failed the window bound applies: the oldest visible line moves to the
// evicted buffer and the hidden count is incremented. Once the task has
// failed every line is retained unbounded.
func (t *Task) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failed {
		t.lines = append(t.lines, line)
		return
	}
	if len(t.lines) < t.window {
		t.lines = append(t.lines, line)
		return
	}
	t.evicted = append(t.evicted, t.lines[0])
	copy(t.lines, t.lines[1:])
	t.lines[len(t.lines)-1] = line
	t.hidden++
}

// Finish records the terminal status. On failure the unbounded-retention
// latch is set so interleaved or later Append calls keep every line, and
// exitInfo (a decimal exit code or the "EXC" sentinel) is recorded.
// Lines evicted by the window are spliced back in front of the visible
// ones, so a failed task's final render shows its full captured output.
// Called exactly once per task by contract.
func (t *Task) Finish(success bool, exitInfo string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if success {
		t.status = Succeeded
		t.evicted = nil
		return
	}
	t.status = Failed
	t.failed = true
	t.exitInfo = exitInfo
	if len(t.evicted) > 0 {
		t.lines = append(t.evicted, t.lines...)
		t.evicted = nil
	}
}

// Snapshot is an immutable copy of the fields the renderer needs.
type Snapshot struct {
	Name     string
	RunID    string
	Status   Status
	ExitInfo string
	Failed   bool
	Lines    []string
	Hidden   int
}

// Snapshot copies the task state under the lock. The renderer works
// from the copy so it never holds a task lock across terminal I/O.
func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, len(t.lines))
	copy(lines, t.lines)
	return Snapshot{
		Name:     t.name,
		RunID:    t.runID,
		Status:   t.status,
		ExitInfo: t.exitInfo,
		Failed:   t.failed,
		Lines:    lines,
		Hidden:   t.hidden,
	}
}
