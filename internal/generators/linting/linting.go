// Package linting adds ESLint, Oxlint or Biome. Biome also serves the
// formatting axis and is generated once for both.
package linting

import (
	"context"
	"encoding/json"

	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

type ESLint struct{}

func (ESLint) Name() string { return "eslint" }

func (ESLint) Apply(ctx context.Context, dir string, _ *config.ProjectConfig) error {
	deps := workspace.Pairs{
		{Key: "eslint", Value: "^9"},
		{Key: "@eslint/js", Value: "^9"},
		{Key: "typescript-eslint", Value: "^8"},
		{Key: "eslint-plugin-solid", Value: "^0.14"},
		{Key: "globals", Value: "^15"},
	}
	if err := workspace.AddDependencies(ctx, dir, deps, true); err != nil {
		return err
	}
	scripts := workspace.Pairs{
		{Key: "lint", Value: "eslint ."},
		{Key: "lint:fix", Value: "eslint . --fix"},
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}
	return workspace.WriteFile(ctx, dir, "eslint.config.mjs", templates.MustFeature("linting/eslint/eslint.config.mjs"))
}

type Oxlint struct{}

func (Oxlint) Name() string { return "oxlint" }

func (Oxlint) Apply(ctx context.Context, dir string, _ *config.ProjectConfig) error {
	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "oxlint", Value: "^1"}}, true); err != nil {
		return err
	}
	scripts := workspace.Pairs{
		{Key: "lint", Value: "oxlint"},
		{Key: "lint:fix", Value: "oxlint --fix"},
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}
	return workspace.WriteFile(ctx, dir, ".oxlintrc.json", templates.MustFeature("linting/oxlint/oxlintrc.json"))
}

// Biome is shared by the linting and formatting axes. Which sections it
// writes is read from the configuration, not from the axis that selected it.
type Biome struct{}

func (Biome) Name() string { return "biome" }

func (Biome) Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	lint := cfg.Linting == config.LintingBiome
	format := cfg.Formatting == config.FormattingBiome

	if err := workspace.AddDependencies(ctx, dir, workspace.Pairs{{Key: "@biomejs/biome", Value: "^1.9"}}, true); err != nil {
		return err
	}

	var scripts workspace.Pairs
	if lint {
		scripts = append(scripts, workspace.Pair{Key: "lint", Value: "biome lint ."})
	}
	if format {
		scripts = append(scripts, workspace.Pair{Key: "format", Value: "biome format --write ."})
	}
	if lint && format {
		scripts = append(scripts, workspace.Pair{Key: "check", Value: "biome check --write ."})
	}
	if err := workspace.AddScripts(ctx, dir, scripts); err != nil {
		return err
	}

	content, err := biomeConfig(lint, format)
	if err != nil {
		return err
	}
	return workspace.WriteFile(ctx, dir, "biome.json", content)
}

type biomeFile struct {
	Schema          string           `json:"$schema"`
	VCS             biomeVCS         `json:"vcs"`
	OrganizeImports biomeToggle      `json:"organizeImports"`
	Linter          *biomeLinter     `json:"linter,omitempty"`
	Formatter       *biomeFormatter  `json:"formatter,omitempty"`
	JavaScript      *biomeJavaScript `json:"javascript,omitempty"`
}

type biomeVCS struct {
	Enabled       bool   `json:"enabled"`
	ClientKind    string `json:"clientKind"`
	UseIgnoreFile bool   `json:"useIgnoreFile"`
}

type biomeToggle struct {
	Enabled bool `json:"enabled"`
}

type biomeLinter struct {
	Enabled bool `json:"enabled"`
	Rules   struct {
		Recommended bool `json:"recommended"`
	} `json:"rules"`
}

type biomeFormatter struct {
	Enabled     bool   `json:"enabled"`
	IndentStyle string `json:"indentStyle"`
	IndentWidth int    `json:"indentWidth"`
}

type biomeJavaScript struct {
	Formatter struct {
		QuoteStyle string `json:"quoteStyle"`
		Semicolons string `json:"semicolons"`
	} `json:"formatter"`
}

func biomeConfig(lint, format bool) (string, error) {
	f := biomeFile{
		Schema:          "https://biomejs.dev/schemas/1.9.4/schema.json",
		VCS:             biomeVCS{Enabled: true, ClientKind: "git", UseIgnoreFile: true},
		OrganizeImports: biomeToggle{Enabled: true},
	}
	if lint {
		f.Linter = &biomeLinter{Enabled: true}
		f.Linter.Rules.Recommended = true
	}
	if format {
		f.Formatter = &biomeFormatter{Enabled: true, IndentStyle: "space", IndentWidth: 2}
		f.JavaScript = &biomeJavaScript{}
		f.JavaScript.Formatter.QuoteStyle = "double"
		f.JavaScript.Formatter.Semicolons = "always"
	}

	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
