package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// dotfiles are stored without their leading dot so they survive embedding
// and are not picked up by tooling in this repository.
var dotfiles = map[string]string{
	"_gitignore": ".gitignore",
	"_env":       ".env",
}

// CopyTemplate copies every file of fsys into dir, overwriting existing files.
func CopyTemplate(ctx context.Context, fsys fs.FS, dir string) error {
	var files []File
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		files = append(files, File{Path: templatePath(p), Content: string(content)})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("template is empty")
	}

	if err := WriteFiles(ctx, dir, files...); err != nil {
		return fmt.Errorf("failed to copy template: %w", err)
	}
	return nil
}

func templatePath(p string) string {
	base := path.Base(p)
	if real, ok := dotfiles[base]; ok {
		return strings.TrimSuffix(p, base) + real
	}
	return p
}
