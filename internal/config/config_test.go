package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	cfg.Name = "my-app"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, SolidStart, cfg.Framework)
	assert.Equal(t, NPM, cfg.PackageManager)
	for _, axis := range Axes {
		if axis == AxisFramework || axis == AxisPackageManager {
			continue
		}
		assert.Equal(t, None, cfg.Get(axis), "axis %s", axis)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProjectConfig
		wantDir string
		wantPkg string
	}{
		{"plain", ProjectConfig{Name: "my-app"}, "my-app", "my-app"},
		{"spaces and case", ProjectConfig{Name: "  My Solid App "}, "my-solid-app", "my-solid-app"},
		{"explicit directory", ProjectConfig{Name: "app", Directory: "./apps/web"}, "./apps/web", "app"},
		{"unsluggable name", ProjectConfig{Name: "!!!"}, "solid-app", "solid-app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Normalize()
			assert.Equal(t, tt.wantDir, cfg.Directory)
			assert.Equal(t, tt.wantPkg, cfg.PackageName())
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()
	for _, axis := range Axes {
		values := Values(axis)
		require.NotEmpty(t, values, "axis %s has no options", axis)

		last := values[len(values)-1]
		cfg.Set(axis, last)
		assert.Equal(t, last, cfg.Get(axis))
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Name = "app"
	cfg.Style = "bootstrap"
	cfg.PackageManager = "pip"

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "style")
	assert.Contains(t, verr.Fields, "package_manager")
	assert.Contains(t, verr.Fields["style"], "none, tailwind, unocss, sass")
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate_RequiresName(t *testing.T) {
	err := Default().Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The field 'name' is required.", verr.Fields["name"])
}

func TestUsesBiome(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.UsesBiome())

	cfg.Formatting = FormattingBiome
	assert.True(t, cfg.UsesBiome())

	cfg.Formatting = FormattingPrettier
	cfg.Linting = LintingBiome
	assert.True(t, cfg.UsesBiome())
}

func TestServerCapable(t *testing.T) {
	assert.False(t, ViteSolidRouter.ServerCapable())
	assert.True(t, SolidStart.ServerCapable())
	assert.True(t, TanStackStart.ServerCapable())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PresetAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	preset := "framework: vite-solid-router\nstyle: tailwind\ntesting: vitest\n"
	require.NoError(t, os.WriteFile(path, []byte(preset), 0644))

	t.Setenv("SOLIDIFIED_TESTING", "playwright")
	t.Setenv("SOLIDIFIED_PACKAGE_MANAGER", "bun")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ViteSolidRouter, cfg.Framework)
	assert.Equal(t, StyleTailwind, cfg.Style)
	assert.Equal(t, TestingPlaywright, cfg.Testing)
	assert.Equal(t, Bun, cfg.PackageManager)
	assert.Equal(t, DatabaseNone, cfg.Database)
}

func TestLoad_MissingPreset(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSavePreset_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Name = "keep-out"
	cfg.Directory = "keep-out"
	cfg.Framework = SolidStart
	cfg.API = APITRPC
	cfg.Database = DatabaseDrizzle
	cfg.Deployment = DeploymentCloudflare

	path := filepath.Join(t.TempDir(), "solid.yaml")
	require.NoError(t, SavePreset(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "keep-out")

	loaded, err := ParsePreset(data)
	require.NoError(t, err)
	assert.Equal(t, APITRPC, loaded.API)
	assert.Equal(t, DatabaseDrizzle, loaded.Database)
	assert.Equal(t, DeploymentCloudflare, loaded.Deployment)
	assert.Empty(t, loaded.Name)

	viaViper, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, loaded, viaViper)
}
