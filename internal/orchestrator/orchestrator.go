// Package orchestrator owns the lifecycle of a supervised run: it
// creates the task states, starts the display manager, runs every
// script concurrently, and shuts the display down after the last exit.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/veilwork/orca/internal/display"
	"github.com/veilwork/orca/internal/runner"
	"github.com/veilwork/orca/internal/task"
)

// Options configures a run.
type Options struct {
	// Scripts is the ordered list of task identifiers to run.
	Scripts []string

	// Window is the per-task output retention window. 0 means the default.
	Window int

	// Interval is the redraw period. 0 means the default.
	Interval time.Duration

	// Interpreter is an optional argv prefix for launching scripts.
	Interpreter []string

	// Dir is the working directory for launched scripts.
	Dir string

	// Out receives the rendered block and the trailing summary line.
	Out io.Writer
}

// Summary reports the outcome of a completed run.
type Summary struct {
	Results []*runner.Result
	Failed  int
}

// Run supervises all scripts to completion. Individual script failures
// are recorded on their tasks and never abort the run; Run returns an
// error only for an empty script list.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if len(opts.Scripts) == 0 {
		return nil, fmt.Errorf("no scripts to run")
	}

	tasks := make([]*task.Task, len(opts.Scripts))
	for i, script := range opts.Scripts {
		tasks[i] = task.New(script, opts.Window)
	}

	dm := display.New(tasks, opts.Out, opts.Interval)
	dm.Start()

	r := &runner.Runner{Dir: opts.Dir, Interpreter: opts.Interpreter}
	results := make([]*runner.Result, len(tasks))

	var wg sync.WaitGroup
	for i, script := range opts.Scripts {
		wg.Add(1)
		go func(i int, script string) {
			defer wg.Done()
			results[i] = r.Run(ctx, tasks[i], script)
		}(i, script)
	}
	wg.Wait()

	// All runners have reported; the final render shows terminal state.
	dm.Stop()
	fmt.Fprintln(opts.Out, "\nAll scripts finished.")

	sum := &Summary{Results: results}
	for _, t := range tasks {
		if t.Snapshot().Status == task.Failed {
			sum.Failed++
		}
	}
	return sum, nil
}
