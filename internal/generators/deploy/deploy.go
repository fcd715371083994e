// Package deploy configures a hosting target. Server-capable frameworks get a
// server preset; client-only builds get static SPA routing files.
package deploy

import (
	"context"

	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

// cloudflareRollup keeps Workers-provided modules out of the server bundle.
const cloudflareRollup = `    rollupConfig: {
      external: ["__STATIC_CONTENT_MANIFEST", "node:async_hooks"],
    },`

// Target is one hosting provider.
type Target struct {
	name   string
	preset string
	extra  string
	// written alongside the preset
	server []templates.File
	// written for client-only builds
	static []templates.File
}

func (t Target) Name() string { return t.name }

func (t Target) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	a, err := adapter.Get(cfg.Framework)
	if err != nil {
		return err
	}

	files := t.static
	if cfg.Framework.ServerCapable() {
		if err := a.SetServerPreset(ctx, dir, t.preset, t.extra); err != nil {
			return err
		}
		files = t.server
	}
	if len(files) == 0 {
		return nil
	}

	rendered, err := templates.Render(templates.NewData(cfg, a), files...)
	if err != nil {
		return err
	}
	return workspace.WriteFiles(ctx, dir, rendered...)
}

// Vercel targets Vercel.
func Vercel() Target {
	return Target{
		name:   "vercel",
		preset: "vercel",
		static: []templates.File{{Path: "vercel.json", Template: "deploy/vercel/vercel.json"}},
	}
}

// Netlify targets Netlify.
func Netlify() Target {
	return Target{
		name:   "netlify",
		preset: "netlify",
		static: []templates.File{{Path: "netlify.toml", Template: "deploy/netlify/netlify.toml.tmpl"}},
	}
}

// Cloudflare targets Cloudflare Pages.
func Cloudflare() Target {
	return Target{
		name:   "cloudflare",
		preset: "cloudflare-pages",
		extra:  cloudflareRollup,
		server: []templates.File{{Path: "wrangler.toml", Template: "deploy/cloudflare/wrangler.toml.tmpl"}},
		static: []templates.File{
			{Path: "public/_routes.json", Template: "deploy/cloudflare/routes.json"},
			{Path: "public/_headers", Template: "deploy/cloudflare/headers"},
			{Path: "public/_redirects", Template: "deploy/cloudflare/redirects"},
		},
	}
}
