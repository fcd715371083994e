package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/solidified/internal/config"
)

func resolveArgs(t *testing.T, args ...string) error {
	t.Helper()
	opts := &newOptions{values: map[config.Axis]*string{}}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags(args))
	_, _, err := resolveConfig(cmd, cmd.Flags().Args(), opts)
	return err
}

func TestResolveConfig_Flags(t *testing.T) {
	opts := &newOptions{values: map[config.Axis]*string{}}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"my-app", "--framework", "vite-solid-router", "--git-hooks", "husky", "--dir", "out", "--yes"}))

	cfg, fixed, err := resolveConfig(cmd, cmd.Flags().Args(), opts)
	require.NoError(t, err)

	assert.Equal(t, "my-app", cfg.Name)
	assert.Equal(t, "out", cfg.Directory)
	assert.Equal(t, config.ViteSolidRouter, cfg.Framework)
	assert.Equal(t, config.GitHooksHusky, cfg.GitHooks)
	assert.Equal(t, config.APINone, cfg.API)
	assert.Equal(t, map[config.Axis]bool{config.AxisFramework: true, config.AxisGitHooks: true}, fixed)
}

func TestResolveConfig_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.yml")
	require.NoError(t, os.WriteFile(path, []byte("framework: solid-start\napi: trpc\ndatabase: drizzle\n"), 0644))

	opts := &newOptions{values: map[config.Axis]*string{}}
	cmd := newCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"app", "--preset", path, "--api", "hono"}))

	cfg, fixed, err := resolveConfig(cmd, cmd.Flags().Args(), opts)
	require.NoError(t, err)

	assert.Equal(t, config.APIHono, cfg.API, "flags override the preset")
	assert.Equal(t, config.DatabaseDrizzle, cfg.Database)
	assert.Equal(t, config.StyleNone, cfg.Style)
	assert.Len(t, fixed, len(config.Axes))
}

func TestResolveConfig_MissingPreset(t *testing.T) {
	err := resolveArgs(t, "app", "--preset", filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorContains(t, err, "not found")
}

func TestResolveConfig_NameRequiredWithYes(t *testing.T) {
	err := resolveArgs(t, "--yes")
	assert.ErrorContains(t, err, "project name is required")
}

func TestNewCmd_AxisFlags(t *testing.T) {
	cmd := NewCmd()
	for _, axis := range config.Axes {
		assert.NotNil(t, cmd.Flags().Lookup(flagName(axis)), axis)
	}
	assert.NotNil(t, cmd.Flags().Lookup("package-manager"))
}

func TestListOptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listOptions(&buf, config.ViteSolidRouter, "api"))

	out := buf.String()
	assert.Contains(t, out, "api:\n")
	assert.Contains(t, out, "unavailable: Requires server routes; Vite template is client-only.")
	assert.NotContains(t, out, "database:")
}

func TestListOptions_DashedCategory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listOptions(&buf, config.SolidStart, "git-hooks"))
	assert.Contains(t, buf.String(), "husky")
}

func TestListOptions_All(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listOptions(&buf, config.SolidStart, ""))
	for _, axis := range config.Axes {
		assert.Contains(t, buf.String(), string(axis)+":\n")
	}
	assert.NotContains(t, buf.String(), "Requires server")
}

func TestListOptions_UnknownCategory(t *testing.T) {
	err := listOptions(&bytes.Buffer{}, config.SolidStart, "orm")
	assert.EqualError(t, err, `unknown category "orm"`)
}

func TestOptionsCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := OptionsCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--framework", "vite-solid-router", "--category", "auth"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "clerk")
	assert.Contains(t, buf.String(), "better-auth")
}

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, isEmptyDir(dir))
	assert.True(t, isEmptyDir(filepath.Join(dir, "missing")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0644))
	assert.False(t, isEmptyDir(dir))
}
