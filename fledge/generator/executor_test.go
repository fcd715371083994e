package generator_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/solidified/fledge/generator"
)

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(tmpDir, "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "test.txt"))
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("wrong content: got %q, want %q", content, "hello")
	}
	if !strings.Contains(buf.String(), "✓ Create") {
		t.Errorf("expected create line, got: %s", buf.String())
	}
}

func TestExecute_ForceOverwrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.txt")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	ops := []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: []byte("new"), Mode: 0644},
	}

	var buf bytes.Buffer
	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf}); err == nil {
		t.Error("expected error when file exists without force")
	}

	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: true, Writer: &buf}); err != nil {
		t.Fatalf("execute with force failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("file not overwritten: got %q", content)
	}
}

func TestExecute_PartialValidationFailure(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []generator.Operation{
		&generator.WriteFileOp{Path: filepath.Join(tmpDir, "new1.txt"), Content: []byte("1"), Mode: 0644},
		&generator.WriteFileOp{Path: filepath.Join(tmpDir, "bad.txt"), Content: nil, Mode: 0644},
		&generator.WriteFileOp{Path: filepath.Join(tmpDir, "new2.txt"), Content: []byte("2"), Mode: 0644},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("unexpected error: %v", err)
	}

	for _, name := range []string{"new1.txt", "new2.txt"} {
		if _, err := os.Stat(filepath.Join(tmpDir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should not exist after validation failure", name)
		}
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "test.txt")
	ops := []generator.Operation{
		&generator.WriteFileOp{Path: path, Content: []byte("x"), Mode: 0644},
	}

	var buf bytes.Buffer
	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Writer: &buf})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file written after cancellation")
	}
}

func TestWriteFileOp_NestedDirectories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "src", "routes", "api", "trpc", "[trpc].ts")

	op := &generator.WriteFileOp{Path: path, Content: []byte("export {}"), Mode: 0644}
	if err := op.Validate(ctx, false); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if err := op.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("nested file not created: %v", err)
	}
}

func TestWriteFileOp_EmptyContent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), ".gitkeep")

	op := &generator.WriteFileOp{Path: path, Content: []byte{}, Mode: 0644}
	if err := op.Validate(ctx, false); err != nil {
		t.Fatalf("empty content should be valid: %v", err)
	}
	if err := op.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriteFileOp_ErrorMessageNoCLIHints(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	op := &generator.WriteFileOp{Path: path, Content: []byte("new"), Mode: 0644}
	err := op.Validate(ctx, false)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if strings.Contains(err.Error(), "--force") {
		t.Errorf("error message should not mention CLI flags: %v", err)
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error message should describe the problem: %v", err)
	}
}

func TestPatchFileOp(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vite.config.ts")
	if err := os.WriteFile(path, []byte("plugins: []"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	op := &generator.PatchFileOp{
		Path: path,
		Patch: func(content string) (string, error) {
			return strings.Replace(content, "[]", "[solid()]", 1), nil
		},
	}

	var buf bytes.Buffer
	if err := generator.Execute(ctx, []generator.Operation{op}, generator.ExecuteOptions{Writer: &buf}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "plugins: [solid()]" {
		t.Errorf("unexpected content: %q", content)
	}
	if !op.Changed() {
		t.Error("expected Changed() to be true")
	}
	if !strings.Contains(buf.String(), "Update") {
		t.Errorf("expected update line, got: %s", buf.String())
	}

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode changed: %v", info.Mode().Perm())
	}
}

func TestPatchFileOp_NoChange(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.config.ts")
	if err := os.WriteFile(path, []byte("same"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	op := &generator.PatchFileOp{
		Path:  path,
		Patch: func(content string) (string, error) { return content, nil },
	}
	if err := op.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if op.Changed() {
		t.Error("expected Changed() to be false")
	}
	if !strings.HasPrefix(op.Description(), "Unchanged") {
		t.Errorf("unexpected description: %s", op.Description())
	}
}

func TestPatchFileOp_MissingFile(t *testing.T) {
	op := &generator.PatchFileOp{
		Path:  filepath.Join(t.TempDir(), "missing.ts"),
		Patch: func(content string) (string, error) { return content, nil },
	}
	if err := op.Validate(context.Background(), true); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPatchFileOp_PatchError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	op := &generator.PatchFileOp{
		Path:  path,
		Patch: func(string) (string, error) { return "", errors.New("bad json") },
	}
	err := op.Execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "bad json") {
		t.Fatalf("expected patch error, got %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "{" {
		t.Errorf("file modified despite patch error: %q", content)
	}
}

func TestExecute_NamesFailingOperation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.config.ts")
	if err := os.WriteFile(path, []byte("export default {}"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	ops := []generator.Operation{
		&generator.PatchFileOp{
			Path:  path,
			Patch: func(string) (string, error) { return "", errors.New("no defineConfig") },
		},
	}
	err := generator.Execute(context.Background(), ops, generator.ExecuteOptions{Writer: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "execution failed: ") || !strings.Contains(err.Error(), "no defineConfig") {
		t.Errorf("unexpected error: %v", err)
	}
}
