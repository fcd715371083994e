package linting

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/testing/testutil"
)

func TestESLint(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, ESLint{}.Apply(context.Background(), p.Root, p.Config))

	_, ok := p.Pairs("devDependencies").Get("eslint-plugin-solid")
	assert.True(t, ok)
	lint, _ := p.Pairs("scripts").Get("lint")
	assert.Equal(t, "eslint .", lint)
	assert.True(t, p.FileExists("eslint.config.mjs"))
}

func TestOxlint(t *testing.T) {
	p := testutil.NewTestProject(t, nil)
	require.NoError(t, Oxlint{}.Apply(context.Background(), p.Root, p.Config))

	fix, _ := p.Pairs("scripts").Get("lint:fix")
	assert.Equal(t, "oxlint --fix", fix)
	assert.True(t, p.FileExists(".oxlintrc.json"))
}

func TestBiome(t *testing.T) {
	tests := []struct {
		name       string
		linting    config.Linting
		formatting config.Formatting
		scripts    []string
		sections   []string
		absent     []string
	}{
		{
			name:     "lint only",
			linting:  config.LintingBiome,
			scripts:  []string{"lint"},
			sections: []string{"linter"},
			absent:   []string{"formatter", "javascript"},
		},
		{
			name:       "format only",
			formatting: config.FormattingBiome,
			linting:    config.LintingESLint,
			scripts:    []string{"format"},
			sections:   []string{"formatter", "javascript"},
			absent:     []string{"linter"},
		},
		{
			name:       "both",
			linting:    config.LintingBiome,
			formatting: config.FormattingBiome,
			scripts:    []string{"lint", "format", "check"},
			sections:   []string{"linter", "formatter", "javascript"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Linting = tt.linting
			if tt.formatting != "" {
				cfg.Formatting = tt.formatting
			}
			p := testutil.NewTestProject(t, cfg)

			require.NoError(t, Biome{}.Apply(context.Background(), p.Root, p.Config))

			scripts := p.Pairs("scripts")
			for _, s := range tt.scripts {
				_, ok := scripts.Get(s)
				assert.True(t, ok, s)
			}

			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(p.ReadFile("biome.json")), &doc))
			assert.Equal(t, "https://biomejs.dev/schemas/1.9.4/schema.json", doc["$schema"])
			for _, s := range tt.sections {
				assert.Contains(t, doc, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, doc, s)
			}
		})
	}
}

func TestBiomeConfigKeyOrder(t *testing.T) {
	out, err := biomeConfig(true, false)
	require.NoError(t, err)
	assert.Equal(t, `{
  "$schema": "https://biomejs.dev/schemas/1.9.4/schema.json",
  "vcs": {
    "enabled": true,
    "clientKind": "git",
    "useIgnoreFile": true
  },
  "organizeImports": {
    "enabled": true
  },
  "linter": {
    "enabled": true,
    "rules": {
      "recommended": true
    }
  }
}
`, out)
}
