// Package testrunner adds unit (Vitest) or end-to-end (Playwright) testing.
package testrunner

import (
	"context"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

type Vitest struct{}

func (Vitest) Name() string { return "vitest" }

func (Vitest) Apply(ctx context.Context, dir string, _ *config.ProjectConfig) error {
	deps := workspace.Pairs{
		{Key: "vitest", Value: "^3"},
		{Key: "jsdom", Value: "^26"},
		{Key: "@solidjs/testing-library", Value: "^0.8"},
		{Key: "@testing-library/jest-dom", Value: "^6"},
	}
	if err := workspace.AddDependencies(ctx, dir, deps, true); err != nil {
		return err
	}
	scripts := workspace.Pairs{
		{Key: "test", Value: "vitest"},
		{Key: "test:ui", Value: "vitest --ui"},
		{Key: "test:coverage", Value: "vitest --coverage"},
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}

	return workspace.WriteFiles(ctx, dir,
		workspace.File{Path: "vitest.config.ts", Content: templates.MustFeature("testing/vitest/vitest.config.ts")},
		workspace.File{Path: "src/test/setup.ts", Content: templates.MustFeature("testing/vitest/setup.ts")},
		workspace.File{Path: "src/test/example.test.ts", Content: templates.MustFeature("testing/vitest/example.test.ts")},
	)
}

type Playwright struct{}

func (Playwright) Name() string { return "playwright" }

func (Playwright) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "@playwright/test", Value: "^1"}}, true); err != nil {
		return err
	}
	scripts := workspace.Pairs{
		{Key: "test:e2e", Value: "playwright test"},
		{Key: "test:e2e:ui", Value: "playwright test --ui"},
		{Key: "test:e2e:headed", Value: "playwright test --headed"},
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}

	// webServer runs the dev script with the chosen package manager
	playwrightConfig, err := templates.Feature("testing/playwright/playwright.config.ts.tmpl", templates.NewData(cfg, a))
	if err != nil {
		return err
	}
	return workspace.WriteFiles(ctx, dir,
		workspace.File{Path: "playwright.config.ts", Content: string(playwrightConfig)},
		workspace.File{Path: "e2e/example.spec.ts", Content: templates.MustFeature("testing/playwright/example.spec.ts")},
	)
}
