// Package workspace holds the file primitives generators use to mutate a
// project directory. Writes are expressed as fledge/generator operations.
package workspace

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/solidified/fledge/generator"
	"github.com/simonhull/solidified/fledge/output"
)

// File is one file to write relative to the project root.
type File struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

// opWriter receives operation descriptions. They are only shown in verbose mode.
func opWriter() io.Writer {
	if output.IsVerbose() {
		return output.Writer()
	}
	return io.Discard
}

func execute(ctx context.Context, ops ...generator.Operation) error {
	return generator.Execute(ctx, ops, generator.ExecuteOptions{
		Force:  true,
		Writer: opWriter(),
	})
}

// Path joins a project-relative path onto dir.
func Path(dir, rel string) string {
	return filepath.Join(dir, filepath.FromSlash(rel))
}

// Exists reports whether rel exists in dir.
func Exists(dir, rel string) bool {
	_, err := os.Stat(Path(dir, rel))
	return err == nil
}

// ReadFile returns the content of rel.
func ReadFile(dir, rel string) (string, error) {
	b, err := os.ReadFile(Path(dir, rel))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", rel, err)
	}
	return string(b), nil
}

// WriteFile writes rel, creating parent directories and replacing any existing file.
func WriteFile(ctx context.Context, dir, rel, content string) error {
	return WriteFiles(ctx, dir, File{Path: rel, Content: content})
}

// WriteFiles writes every file after validating all of them.
func WriteFiles(ctx context.Context, dir string, files ...File) error {
	ops := make([]generator.Operation, len(files))
	for i, f := range files {
		mode := f.Mode
		if mode == 0 {
			mode = 0644
		}
		ops[i] = &generator.WriteFileOp{
			Path:    Path(dir, f.Path),
			Content: []byte(f.Content),
			Mode:    mode,
		}
	}
	return execute(ctx, ops...)
}

// UpdateFile rewrites rel through patch. It reports whether the content changed.
func UpdateFile(ctx context.Context, dir, rel string, patch generator.PatchFunc) (bool, error) {
	op := &generator.PatchFileOp{Path: Path(dir, rel), Patch: patch}
	if err := execute(ctx, op); err != nil {
		return false, err
	}
	return op.Changed(), nil
}

// PrependFile inserts text and a newline before the existing content.
func PrependFile(ctx context.Context, dir, rel, text string) error {
	_, err := UpdateFile(ctx, dir, rel, func(content string) (string, error) {
		return text + "\n" + content, nil
	})
	return err
}

// AppendFile adds a newline and text after the existing content.
func AppendFile(ctx context.Context, dir, rel, text string) error {
	_, err := UpdateFile(ctx, dir, rel, func(content string) (string, error) {
		return content + "\n" + text, nil
	})
	return err
}
