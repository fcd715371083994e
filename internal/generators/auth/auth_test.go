package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/testing/testutil"
)

func TestBetterAuth_SolidStart(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, BetterAuth{}.Apply(context.Background(), p.Root, p.Config))

	_, ok := p.Pairs("dependencies").Get("better-auth")
	assert.True(t, ok)

	env := p.Env()
	assert.Equal(t, "your-secret-key-here", env["BETTER_AUTH_SECRET"])
	assert.Equal(t, "http://localhost:3000", env["BETTER_AUTH_URL"])
	assert.Equal(t, "http://localhost:3000", env["VITE_BETTER_AUTH_URL"])

	assert.Contains(t, p.ReadFile("src/lib/auth/server.ts"), `"http://localhost:3000"`)
	assert.Contains(t, p.ReadFile("src/lib/auth/client.ts"), "import.meta.env.VITE_BETTER_AUTH_URL")
	assert.Contains(t, p.ReadFile("src/routes/api/auth/[...auth].ts"), "toSolidStartHandler(auth)")
}

func TestBetterAuth_ClientOnlySkipsRoute(t *testing.T) {
	cfg := config.Default()
	cfg.Framework = config.ViteSolidRouter
	p := testutil.NewTestProject(t, cfg)

	require.NoError(t, BetterAuth{}.Apply(context.Background(), p.Root, p.Config))

	assert.True(t, p.FileExists("src/lib/auth/client.ts"))
	assert.False(t, p.FileExists("src/routes/api/auth/[...auth].ts"))
	assert.Equal(t, "http://localhost:5173", p.Env()["BETTER_AUTH_URL"])
}

func TestClerk(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, Clerk{}.Apply(context.Background(), p.Root, p.Config))

	env := p.Env()
	assert.Equal(t, "pk_test_your-publishable-key", env["VITE_CLERK_PUBLISHABLE_KEY"])
	assert.Equal(t, "sk_test_your-secret-key", env["CLERK_SECRET_KEY"])

	clerk := p.ReadFile("src/lib/clerk.tsx")
	assert.Contains(t, clerk, "export function ClerkWrapper")
	assert.Contains(t, clerk, "import.meta.env.VITE_CLERK_PUBLISHABLE_KEY")
	assert.Contains(t, clerk, "{props.children}")
}
