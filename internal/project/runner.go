package project

import (
	"context"

	"github.com/simonhull/solidified/fledge/exec"
)

// ExecRunner runs commands through a fledge executor. With a spinner, the
// command's own output is hidden behind a progress indicator.
type ExecRunner struct {
	executor *exec.Executor
	spinner  bool
}

// NewExecRunner wraps an executor.
func NewExecRunner(e *exec.Executor, spinner bool) *ExecRunner {
	return &ExecRunner{executor: e, spinner: spinner}
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return r.executor.Output(ctx, name, args...)
}

func (r *ExecRunner) RunIn(ctx context.Context, dir, name string, args ...string) error {
	e := r.executor.WithDir(dir)
	if r.spinner {
		return e.RunWithSpinner(ctx, "Running "+name, name, args...)
	}
	return e.Run(ctx, name, args...)
}
