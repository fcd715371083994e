// Package exec runs external commands for the scaffolder.
//
// The Executor knows nothing about git or package managers; callers pass
// the command name and arguments:
//
//	executor := exec.NewExecutor(nil)
//	version, err := executor.Output(ctx, "bun", "--version")
//	err = executor.WithDir(projectDir).Run(ctx, "git", "init")
//
// RunWithSpinner renders a bubbletea spinner while the command runs and is
// meant for interactive terminals only.
//
// Command construction goes through a replaceable function so tests can
// substitute a helper process instead of real binaries.
package exec
