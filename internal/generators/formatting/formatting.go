// Package formatting adds Prettier. Biome formatting lives in the linting package.
package formatting

import (
	"context"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

type Prettier struct{}

func (Prettier) Name() string { return "prettier" }

func (Prettier) Apply(ctx context.Context, dir string, _ *config.ProjectConfig) error {
	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "prettier", Value: "^3"}}, true); err != nil {
		return err
	}
	scripts := workspace.Pairs{
		{Key: "format", Value: "prettier --write ."},
		{Key: "format:check", Value: "prettier --check ."},
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}
	return workspace.WriteFiles(ctx, dir,
		workspace.File{Path: ".prettierrc", Content: templates.MustFeature("formatting/prettier/prettierrc")},
		workspace.File{Path: ".prettierignore", Content: templates.MustFeature("formatting/prettier/prettierignore")},
	)
}
