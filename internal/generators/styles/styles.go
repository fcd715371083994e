// Package styles adds a CSS engine: Tailwind, UnoCSS or Sass.
package styles

import (
	"context"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/merge"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

// sassOptions selects the modern Sass compiler API.
const sassOptions = `{
    preprocessorOptions: {
      scss: {
        api: "modern-compiler",
      },
    },
  }`

type Tailwind struct{}

func (Tailwind) Name() string { return "tailwind" }

func (Tailwind) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	deps := workspace.Pairs{
		{Key: "tailwindcss", Value: "^4"},
		{Key: "@tailwindcss/vite", Value: "^4"},
	}
	if err := workspace.AddDependencies(ctx, dir, deps, true); err != nil {
		return err
	}
	if err := workspace.PrependFile(ctx, dir, a.CSSEntryPath, `@import "tailwindcss";`); err != nil {
		return err
	}
	return a.AddPlugin(ctx, dir, merge.Import{Name: "tailwindcss", From: "@tailwindcss/vite", Default: true}, "tailwindcss()")
}

type UnoCSS struct{}

func (UnoCSS) Name() string { return "unocss" }

func (UnoCSS) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	deps := workspace.Pairs{
		{Key: "unocss", Value: "^66"},
		{Key: "@unocss/vite", Value: "^66"},
	}
	if err := workspace.AddDependencies(ctx, dir, deps, true); err != nil {
		return err
	}
	if err := workspace.WriteFile(ctx, dir, "uno.config.ts", templates.MustFeature("styles/unocss/uno.config.ts")); err != nil {
		return err
	}
	if err := workspace.PrependFile(ctx, dir, a.CSSEntryPath, `@import "@unocss/reset/tailwind.css";`); err != nil {
		return err
	}
	return a.AddPlugin(ctx, dir, merge.Import{Name: "UnoCSS", From: "@unocss/vite", Default: true}, "UnoCSS()")
}

type Sass struct{}

func (Sass) Name() string { return "sass" }

func (Sass) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "sass", Value: "^1"}}, true); err != nil {
		return err
	}
	return a.AddConfig(ctx, dir, "css", sassOptions)
}
