// Package templates embeds the base project trees and the file bodies the
// feature generators write.
//
// Files ending in .tmpl are rendered with "[[" and "]]" delimiters so JSX
// object literals pass through untouched.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/simonhull/solidified/fledge/generator"
	"github.com/simonhull/solidified/internal/config"
)

//go:embed all:base all:features
var templatesFS embed.FS

var renderer = generator.NewRendererWithDelims("[[", "]]")

// Data is the value feature templates are rendered with.
type Data struct {
	Name         string
	Database     config.Database
	HasDatabase  bool
	DevPort      int
	DevCommand   string
	BuildCommand string
	EnvPrefix    string
	RoutesDir    string
}

// Base returns the base project tree for a framework.
func Base(fw config.Framework) (fs.FS, error) {
	dir := path.Join("base", string(fw))
	if _, err := fs.Stat(templatesFS, dir); err != nil {
		return nil, fmt.Errorf("no base template for %s: %w", fw, err)
	}
	return fs.Sub(templatesFS, dir)
}

// Feature returns a feature file body, rendering it when it is a template.
// name is relative to the features directory ("database/drizzle/schema.ts").
func Feature(name string, data Data) ([]byte, error) {
	p := path.Join("features", name)
	if strings.HasSuffix(p, ".tmpl") {
		out, err := renderer.RenderFS(templatesFS, p, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		return out, nil
	}
	b, err := fs.ReadFile(templatesFS, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return b, nil
}

// MustFeature is Feature for static bodies known to be embedded.
func MustFeature(name string) string {
	b, err := Feature(name, Data{})
	if err != nil {
		panic(err)
	}
	return string(b)
}
