package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

// TestProject is a temporary project seeded from an embedded base template
type TestProject struct {
	Root   string
	Config *config.ProjectConfig
	t      *testing.T
}

// NewTestProject copies the base template of cfg.Framework into a temp dir.
// A nil cfg means the default configuration named "test-app".
func NewTestProject(t *testing.T, cfg *config.ProjectConfig) *TestProject {
	t.Helper()

	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.Name == "" {
		cfg.Name = "test-app"
	}
	cfg.Normalize()

	root := t.TempDir()
	base, err := templates.Base(cfg.Framework)
	require.NoError(t, err)
	require.NoError(t, workspace.CopyTemplate(context.Background(), base, root))

	return &TestProject{Root: root, Config: cfg, t: t}
}

// FileExists checks if a file exists in the project
func (p *TestProject) FileExists(path string) bool {
	p.t.Helper()
	_, err := os.Stat(filepath.Join(p.Root, filepath.FromSlash(path)))
	return err == nil
}

// ReadFile reads a project file, failing the test when it is missing
func (p *TestProject) ReadFile(path string) string {
	p.t.Helper()
	content, err := os.ReadFile(filepath.Join(p.Root, filepath.FromSlash(path)))
	require.NoError(p.t, err)
	return string(content)
}

// WriteFile replaces a project file
func (p *TestProject) WriteFile(path, content string) {
	p.t.Helper()
	full := filepath.Join(p.Root, filepath.FromSlash(path))
	require.NoError(p.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(p.t, os.WriteFile(full, []byte(content), 0644))
}

// Manifest parses package.json
func (p *TestProject) Manifest() *workspace.Manifest {
	p.t.Helper()
	m, err := workspace.ReadManifest(p.Root)
	require.NoError(p.t, err)
	return m
}

// Pairs returns a manifest map such as "scripts" or "devDependencies"
func (p *TestProject) Pairs(key string) workspace.Pairs {
	p.t.Helper()
	pairs, err := p.Manifest().Pairs(key)
	require.NoError(p.t, err)
	return pairs
}

// Env parses the project's .env file
func (p *TestProject) Env() map[string]string {
	p.t.Helper()
	env, err := workspace.ReadEnv(p.Root)
	require.NoError(p.t, err)
	return env
}
