// Package display renders the task block in place: every cycle it
// snapshots all tasks, moves the cursor up over the previous block,
// and rewrites it, clearing each line's leftover tail.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/veilwork/orca/internal/task"
)

// DefaultInterval is the redraw period when none is configured.
const DefaultInterval = 200 * time.Millisecond

const (
	cursorUp   = "\033[%dA" // move cursor up N lines
	clearToEOL = "\033[K"   // clear from cursor to end of line
	indent     = "    "
)

// Manager periodically renders all tasks as one terminal block. It is
// the only writer to the output for the duration of a run. Lifecycle is
// Start once, Stop once; no restart.
type Manager struct {
	tasks    []*task.Task
	out      io.Writer
	interval time.Duration

	// interactive gates the ANSI protocol. When the writer is not a
	// terminal the periodic loop stays silent and only the final block
	// is printed, without cursor movement.
	interactive bool

	stop chan struct{}
	done chan struct{}

	// height is the line count of the previously rendered block. Only
	// the render loop (and Stop, after the loop has drained) touch it.
	height int
}

// New creates a manager over the given tasks, rendered in order.
// An interval of 0 or less falls back to DefaultInterval.
func New(tasks []*task.Task, out io.Writer, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manager{
		tasks:       tasks,
		out:         out,
		interval:    interval,
		interactive: isTerminal(out),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the render loop. The loop renders immediately, then on
// every interval tick, until Stop is called.
func (m *Manager) Start() {
	go m.loop()
}

// Stop signals the loop, waits for it to drain, and performs one final
// render so the block reflects every task's terminal status. The signal
// is cooperative: the loop observes it at its next iteration.
func (m *Manager) Stop() {
	close(m.stop)
	<-m.done
	m.render(true)
}

func (m *Manager) loop() {
	defer close(m.done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.render(false)
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.render(false)
		}
	}
}

// render snapshots every task and rewrites the block. In interactive
// mode it first moves the cursor up over the previous block so the new
// one overdraws it; each line carries a clear-to-end-of-line so shorter
// lines leave no residue. In non-interactive mode only the final render
// prints, as a plain block.
func (m *Manager) render(final bool) {
	if !m.interactive {
		if final {
			fmt.Fprint(m.out, m.plainBlock())
		}
		return
	}

	var b strings.Builder
	if m.height > 0 {
		fmt.Fprintf(&b, cursorUp, m.height)
	}

	lines := 0
	for _, t := range m.tasks {
		for _, line := range blockLines(t.Snapshot()) {
			b.WriteString(line)
			b.WriteString(clearToEOL)
			b.WriteByte('\n')
			lines++
		}
	}

	fmt.Fprint(m.out, b.String())
	m.height = lines
}

// plainBlock renders the block without any control sequences.
func (m *Manager) plainBlock() string {
	var b strings.Builder
	for _, t := range m.tasks {
		for _, line := range blockLines(t.Snapshot()) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blockLines lays out one task: a status line, then the hidden-count
// hint for tasks still subject to the window, then the retained output
// indented. Failed tasks show everything and no hint.
func blockLines(s task.Snapshot) []string {
	status := fmt.Sprintf("%s [%s]", s.Name, s.Status)
	if s.Status == task.Failed && s.ExitInfo != "" {
		status += " " + s.ExitInfo
	}

	lines := make([]string, 0, len(s.Lines)+2)
	lines = append(lines, status)
	if !s.Failed && s.Hidden > 0 {
		lines = append(lines, fmt.Sprintf("%s...%d more lines not shown", indent, s.Hidden))
	}
	for _, line := range s.Lines {
		lines = append(lines, indent+line)
	}
	return lines
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
