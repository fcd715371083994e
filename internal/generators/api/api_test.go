package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/testing/testutil"
)

func TestTRPC(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, TRPC{}.Apply(context.Background(), p.Root, p.Config))

	deps := p.Pairs("dependencies")
	for _, dep := range []string{"@trpc/server", "@trpc/client", "@tanstack/solid-query", "zod"} {
		_, ok := deps.Get(dep)
		assert.True(t, ok, dep)
	}
	assert.Equal(t, deps.Sorted(), deps)

	for _, f := range []string{"server.ts", "router.ts", "client.ts", "QueryProvider.tsx", "hooks.ts"} {
		assert.True(t, p.FileExists("src/lib/trpc/"+f), f)
	}
	assert.Contains(t, p.ReadFile("src/routes/api/trpc/[...trpc].ts"), "fetchRequestHandler")

	router := p.ReadFile("src/lib/trpc/router.ts")
	assert.NotContains(t, router, "users:")
	assert.NotContains(t, p.ReadFile("src/lib/trpc/hooks.ts"), "useUsers")
}

func TestTRPC_WithDatabase(t *testing.T) {
	tests := []struct {
		db    config.Database
		query string
	}{
		{config.DatabaseDrizzle, "db.select().from(users).limit(10)"},
		{config.DatabasePrisma, "prisma.user.findMany({ take: 10 })"},
	}

	for _, tt := range tests {
		t.Run(string(tt.db), func(t *testing.T) {
			cfg := config.Default()
			cfg.Database = tt.db
			p := testutil.NewTestProject(t, cfg)

			require.NoError(t, TRPC{}.Apply(context.Background(), p.Root, p.Config))

			assert.Contains(t, p.ReadFile("src/lib/trpc/router.ts"), tt.query)
			assert.Contains(t, p.ReadFile("src/lib/trpc/hooks.ts"), "export function useUsers()")
		})
	}
}

func TestTRPC_ClientOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Framework = config.ViteSolidRouter
	p := testutil.NewTestProject(t, cfg)

	require.NoError(t, TRPC{}.Apply(context.Background(), p.Root, p.Config))

	assert.True(t, p.FileExists("src/lib/trpc/router.ts"))
	assert.False(t, p.FileExists("src/routes/api/trpc/[...trpc].ts"))
}

func TestHono(t *testing.T) {
	cfg := config.Default()
	cfg.Database = config.DatabaseDrizzle
	p := testutil.NewTestProject(t, cfg)

	require.NoError(t, Hono{}.Apply(context.Background(), p.Root, p.Config))

	v, ok := p.Pairs("dependencies").Get("hono")
	assert.True(t, ok)
	assert.Equal(t, "^4", v)

	server := p.ReadFile("src/lib/api/server.ts")
	assert.Contains(t, server, `.get("/users"`)
	assert.Contains(t, server, "export type AppType = typeof routes;")
	assert.Contains(t, p.ReadFile("src/lib/api/client.ts"), "client.api.users.$get()")
	assert.Contains(t, p.ReadFile("src/routes/api/[...path].ts"), "export const PATCH = handler;")
}

func TestHono_NoDatabase(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, Hono{}.Apply(context.Background(), p.Root, p.Config))

	server := p.ReadFile("src/lib/api/server.ts")
	assert.NotContains(t, server, "/users")
	assert.Contains(t, server, `return c.json({ message: `+"`Hello ${name}!`"+` });`)
}
