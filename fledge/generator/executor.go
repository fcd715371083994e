package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	// Force lets write operations replace existing files.
	Force  bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute validates every operation, then runs them in order and reports
// each one to opts.Writer. Nothing is written when any validation fails.
// A cancelled context stops before the next operation.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := op.Execute(ctx); err != nil {
			return fmt.Errorf("execution failed: %s: %w", op.Description(), err)
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}
