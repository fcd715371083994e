// Package homepage composes the demo homepage from the selected features
// and wraps the app entry with the providers those features need. It runs
// after every feature generator.
package homepage

import (
	"context"
	"path"
	"strings"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

type Generator struct{}

func (Generator) Name() string { return "homepage" }

func (Generator) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	page, err := Render(BuildSections(cfg), a.RoutesDir)
	if err != nil {
		return err
	}
	if err := workspace.WriteFile(ctx, dir, path.Join(a.RoutesDir, "index.tsx"), page); err != nil {
		return err
	}

	providers := BuildProviders(cfg)
	if len(providers) == 0 {
		return nil
	}
	_, err = workspace.UpdateFile(ctx, dir, a.EntryPath, func(content string) (string, error) {
		return WrapWithProviders(content, providers), nil
	})
	return err
}

// Render produces the homepage source. Without sections it is a welcome page.
func Render(sections []Section, routesDir string) (string, error) {
	if len(sections) == 0 {
		b, err := templates.Feature("homepage/welcome.tsx.tmpl", templates.Data{RoutesDir: routesDir})
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	var imports, components, cards []string
	for _, s := range sections {
		imports = append(imports, s.Imports...)
		if s.Component != "" {
			components = append(components, s.Component)
		}
		cards = append(cards, s.Markup)
	}

	var b strings.Builder
	if merged := MergeImports(imports); len(merged) > 0 {
		b.WriteString(strings.Join(merged, "\n"))
		b.WriteString("\n\n")
	}
	if len(components) > 0 {
		b.WriteString(strings.Join(components, "\n\n"))
		b.WriteString("\n\n")
	}
	b.WriteString("export default function Home() {\n  return (\n    <div class=\"features\">\n")
	b.WriteString(strings.Join(cards, "\n\n"))
	b.WriteString("\n    </div>\n  );\n}\n")
	return b.String(), nil
}
