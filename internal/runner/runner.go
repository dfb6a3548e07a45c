// Package runner launches one external script per task, feeds its
// merged output stream into the task state, and records the outcome.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/veilwork/orca/internal/task"
)

// ExitSentinel marks a task that failed before or outside normal
// process exit (launch error, broken pipe) rather than with an exit code.
const ExitSentinel = "EXC"

// Runner executes scripts and finalizes their task state. One Run call
// per task; calls are independent and safe to make concurrently.
type Runner struct {
	// Dir is the working directory for launched scripts. Empty means
	// the caller's working directory.
	Dir string

	// Interpreter is an optional argv prefix, e.g. ["python3", "-u"].
	// When empty the script path is executed directly.
	Interpreter []string
}

// Run launches the script, streams its combined stdout/stderr through
// the line feeder into t, waits for exit, and finishes t with
// success = (exit code == 0). Failures never propagate: a non-zero exit
// records the decimal code, and a launch or I/O error appends the error
// text as an output line and records the ExitSentinel marker.
func (r *Runner) Run(ctx context.Context, t *task.Task, script string) *Result {
	res := &Result{RunID: t.RunID(), Script: script}

	argv := append(append([]string{}, r.Interpreter...), script)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return r.fail(t, res, fmt.Errorf("opening output pipe: %w", err))
	}
	// Merge stderr into the stdout pipe so the feeder sees one stream.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return r.fail(t, res, fmt.Errorf("starting %s: %w", script, err))
	}

	if err := feed(pipe, t.Append); err != nil {
		// The process is already running; reap it before reporting.
		_ = cmd.Wait()
		return r.fail(t, res, fmt.Errorf("reading output of %s: %w", script, err))
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			res.ExitCode = code
			t.Finish(false, strconv.Itoa(code))
			return res
		}
		return r.fail(t, res, fmt.Errorf("waiting for %s: %w", script, err))
	}

	t.Finish(true, "")
	return res
}

// fail records an unrecoverable launch/IO error on the task: the error
// text becomes a visible output line and the task finishes with the
// sentinel marker instead of a numeric exit code.
func (r *Runner) fail(t *task.Task, res *Result, err error) *Result {
	t.Append(err.Error())
	t.Finish(false, ExitSentinel)
	res.Errored = true
	return res
}
