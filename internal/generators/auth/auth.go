// Package auth adds Better Auth or Clerk.
package auth

import (
	"context"
	"fmt"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

type BetterAuth struct{}

func (BetterAuth) Name() string { return "better-auth" }

func (BetterAuth) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "better-auth", Value: "^1.2"}}, false); err != nil {
		return err
	}

	url := fmt.Sprintf("http://localhost:%d", a.DevPort)
	env := workspace.Pairs{
		{Key: "BETTER_AUTH_SECRET", Value: "your-secret-key-here"},
		{Key: "BETTER_AUTH_URL", Value: url},
		{Key: a.EnvVar("BETTER_AUTH_URL"), Value: url},
	}
	for _, e := range env {
		if err := workspace.SetEnv(ctx, dir, e.Key, e.Value); err != nil {
			return err
		}
	}

	files := []templates.File{
		{Path: "src/lib/auth/server.ts", Template: "auth/better-auth/server.ts.tmpl"},
		{Path: "src/lib/auth/client.ts", Template: "auth/better-auth/client.ts.tmpl"},
	}
	if cfg.Framework.ServerCapable() {
		files = append(files, templates.File{
			Path:     a.RoutesDir + "/api/auth/[...auth].ts",
			Template: "auth/better-auth/route.ts",
		})
	}
	rendered, err := templates.Render(templates.NewData(cfg, a), files...)
	if err != nil {
		return err
	}
	return workspace.WriteFiles(ctx, dir, rendered...)
}

// Clerk writes ClerkWrapper; the homepage generator wraps the app with it.
type Clerk struct{}

func (Clerk) Name() string { return "clerk" }

func (Clerk) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "clerk-solidjs", Value: "^0.5"}}, false); err != nil {
		return err
	}
	if err := workspace.SetEnv(ctx, dir, a.EnvVar("CLERK_PUBLISHABLE_KEY"), "pk_test_your-publishable-key"); err != nil {
		return err
	}
	if err := workspace.SetEnv(ctx, dir, "CLERK_SECRET_KEY", "sk_test_your-secret-key"); err != nil {
		return err
	}

	rendered, err := templates.Render(templates.NewData(cfg, a),
		templates.File{Path: "src/lib/clerk.tsx", Template: "auth/clerk/clerk.tsx.tmpl"},
	)
	if err != nil {
		return err
	}
	return workspace.WriteFiles(ctx, dir, rendered...)
}
