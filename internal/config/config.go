package config

import (
	"strings"

	"github.com/gosimple/slug"
)

// ProjectConfig is one value per axis plus the project identity.
// It is built once by the CLI and read-only afterwards.
type ProjectConfig struct {
	Name           string         `yaml:"name,omitempty" mapstructure:"name" validate:"required"`
	Directory      string         `yaml:"directory,omitempty" mapstructure:"directory"`
	PackageManager PackageManager `yaml:"package_manager" mapstructure:"package_manager" validate:"oneof=npm pnpm yarn bun"`
	Framework      Framework      `yaml:"framework" mapstructure:"framework" validate:"oneof=vite-solid-router solid-start tanstack-start"`
	Style          Style          `yaml:"style" mapstructure:"style" validate:"oneof=none tailwind unocss sass"`
	Database       Database       `yaml:"database" mapstructure:"database" validate:"oneof=none drizzle prisma"`
	Auth           Auth           `yaml:"auth" mapstructure:"auth" validate:"oneof=none better-auth clerk"`
	API            API            `yaml:"api" mapstructure:"api" validate:"oneof=none trpc hono"`
	Testing        Testing        `yaml:"testing" mapstructure:"testing" validate:"oneof=none vitest playwright"`
	Linting        Linting        `yaml:"linting" mapstructure:"linting" validate:"oneof=none biome eslint oxlint"`
	Formatting     Formatting     `yaml:"formatting" mapstructure:"formatting" validate:"oneof=none biome prettier"`
	GitHooks       GitHooks       `yaml:"git_hooks" mapstructure:"git_hooks" validate:"oneof=none husky"`
	Deployment     Deployment     `yaml:"deployment" mapstructure:"deployment" validate:"oneof=none vercel netlify cloudflare"`
}

// Default returns a configuration with every feature axis set to none.
func Default() *ProjectConfig {
	return &ProjectConfig{
		PackageManager: NPM,
		Framework:      SolidStart,
		Style:          StyleNone,
		Database:       DatabaseNone,
		Auth:           AuthNone,
		API:            APINone,
		Testing:        TestingNone,
		Linting:        LintingNone,
		Formatting:     FormattingNone,
		GitHooks:       GitHooksNone,
		Deployment:     DeploymentNone,
	}
}

// Normalize trims the name and derives the directory when it is unset.
func (c *ProjectConfig) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Directory = strings.TrimSpace(c.Directory)
	if c.Directory == "" && c.Name != "" {
		c.Directory = c.PackageName()
	}
}

// PackageName is the manifest-safe form of the project name.
func (c *ProjectConfig) PackageName() string {
	name := slug.Make(c.Name)
	if name == "" {
		return "solid-app"
	}
	return name
}

// Get returns the selected value of an axis.
func (c *ProjectConfig) Get(axis Axis) string {
	switch axis {
	case AxisFramework:
		return string(c.Framework)
	case AxisPackageManager:
		return string(c.PackageManager)
	case AxisStyle:
		return string(c.Style)
	case AxisDatabase:
		return string(c.Database)
	case AxisAuth:
		return string(c.Auth)
	case AxisAPI:
		return string(c.API)
	case AxisTesting:
		return string(c.Testing)
	case AxisLinting:
		return string(c.Linting)
	case AxisFormatting:
		return string(c.Formatting)
	case AxisGitHooks:
		return string(c.GitHooks)
	case AxisDeployment:
		return string(c.Deployment)
	}
	return ""
}

// Set assigns the value of an axis. Unknown values are caught by Validate.
func (c *ProjectConfig) Set(axis Axis, value string) {
	switch axis {
	case AxisFramework:
		c.Framework = Framework(value)
	case AxisPackageManager:
		c.PackageManager = PackageManager(value)
	case AxisStyle:
		c.Style = Style(value)
	case AxisDatabase:
		c.Database = Database(value)
	case AxisAuth:
		c.Auth = Auth(value)
	case AxisAPI:
		c.API = API(value)
	case AxisTesting:
		c.Testing = Testing(value)
	case AxisLinting:
		c.Linting = Linting(value)
	case AxisFormatting:
		c.Formatting = Formatting(value)
	case AxisGitHooks:
		c.GitHooks = GitHooks(value)
	case AxisDeployment:
		c.Deployment = Deployment(value)
	}
}

// UsesBiome reports whether either linting or formatting selected biome.
func (c *ProjectConfig) UsesBiome() bool {
	return c.Linting == LintingBiome || c.Formatting == FormattingBiome
}
