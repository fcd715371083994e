// Package api adds a typed API layer: tRPC or Hono. The generated server
// code reads from the selected database when there is one.
package api

import (
	"context"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

type TRPC struct{}

func (TRPC) Name() string { return "trpc" }

func (TRPC) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	deps := workspace.Pairs{
		{Key: "@trpc/server", Value: "^11"},
		{Key: "@trpc/client", Value: "^11"},
		{Key: "@tanstack/solid-query", Value: "^5"},
		{Key: "zod", Value: "^4.3.5"},
	}
	return install(ctx, dir, cfg, deps, "api/trpc/route.ts", "/api/trpc/[...trpc].ts",
		templates.File{Path: "src/lib/trpc/server.ts", Template: "api/trpc/server.ts"},
		templates.File{Path: "src/lib/trpc/router.ts", Template: "api/trpc/router.ts.tmpl"},
		templates.File{Path: "src/lib/trpc/client.ts", Template: "api/trpc/client.ts"},
		templates.File{Path: "src/lib/trpc/QueryProvider.tsx", Template: "api/trpc/QueryProvider.tsx"},
		templates.File{Path: "src/lib/trpc/hooks.ts", Template: "api/trpc/hooks.ts.tmpl"},
	)
}

type Hono struct{}

func (Hono) Name() string { return "hono" }

func (Hono) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	deps := workspace.Pairs{{Key: "hono", Value: "^4"}}
	return install(ctx, dir, cfg, deps, "api/hono/route.ts", "/api/[...path].ts",
		templates.File{Path: "src/lib/api/server.ts", Template: "api/hono/server.ts.tmpl"},
		templates.File{Path: "src/lib/api/client.ts", Template: "api/hono/client.ts.tmpl"},
	)
}

// install adds deps and writes files. Server-capable frameworks also get a
// native catch-all route under the routes directory.
func install(ctx context.Context, dir string, cfg *config.ProjectConfig, deps workspace.Pairs, routeTemplate, route string, files ...templates.File) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	if err := workspace.AddDependencies(ctx, dir, deps, false); err != nil {
		return err
	}

	if cfg.Framework.ServerCapable() {
		files = append(files, templates.File{Path: a.RoutesDir + route, Template: routeTemplate})
	}
	rendered, err := templates.Render(templates.NewData(cfg, a), files...)
	if err != nil {
		return err
	}
	return workspace.WriteFiles(ctx, dir, rendered...)
}
