package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// Some operations may have side effects during validation (e.g., creating parent directories).
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create src/app.css (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a new file with content.
//
// Validation behavior:
//   - Creates parent directories if they don't exist (via os.MkdirAll)
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	mode := op.Mode
	if mode == 0 {
		mode = 0644
	}
	return os.WriteFile(op.Path, op.Content, mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// PatchFunc transforms the current content of a file.
type PatchFunc func(content string) (string, error)

// PatchFileOp rewrites an existing file through a PatchFunc.
//
// The file must exist. When the patch returns the content unchanged the file
// is left untouched and Changed reports false.
type PatchFileOp struct {
	Path  string
	Patch PatchFunc

	changed bool
}

func (op *PatchFileOp) Validate(ctx context.Context, force bool) error {
	if op.Patch == nil {
		return fmt.Errorf("patch is nil for file: %s", op.Path)
	}
	info, err := os.Stat(op.Path)
	if err != nil {
		return fmt.Errorf("cannot patch %s: %w", op.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot patch %s: is a directory", op.Path)
	}
	return nil
}

func (op *PatchFileOp) Execute(ctx context.Context) error {
	info, err := os.Stat(op.Path)
	if err != nil {
		return err
	}
	current, err := os.ReadFile(op.Path)
	if err != nil {
		return err
	}

	next, err := op.Patch(string(current))
	if err != nil {
		return fmt.Errorf("patch %s: %w", op.Path, err)
	}
	if next == string(current) {
		op.changed = false
		return nil
	}

	op.changed = true
	return os.WriteFile(op.Path, []byte(next), info.Mode().Perm())
}

// Changed reports whether the last Execute modified the file.
func (op *PatchFileOp) Changed() bool {
	return op.changed
}

func (op *PatchFileOp) Description() string {
	if !op.changed {
		return fmt.Sprintf("Unchanged %s", op.Path)
	}
	return fmt.Sprintf("Update %s", op.Path)
}
