// Package generators selects the feature generators a configuration needs
// and runs them against a project directory.
package generators

import (
	"context"
	"fmt"

	"github.com/simonhull/solidified/fledge/output"
	"github.com/simonhull/solidified/internal/compat"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/generators/api"
	"github.com/simonhull/solidified/internal/generators/auth"
	"github.com/simonhull/solidified/internal/generators/database"
	"github.com/simonhull/solidified/internal/generators/deploy"
	"github.com/simonhull/solidified/internal/generators/formatting"
	"github.com/simonhull/solidified/internal/generators/githooks"
	"github.com/simonhull/solidified/internal/generators/homepage"
	"github.com/simonhull/solidified/internal/generators/linting"
	"github.com/simonhull/solidified/internal/generators/styles"
	"github.com/simonhull/solidified/internal/generators/testrunner"
)

// Generator applies one feature to a project directory.
type Generator interface {
	Name() string
	Apply(ctx context.Context, dir string, cfg *config.ProjectConfig) error
}

// BiomeSlot is the position of the shared Biome generator in AxisOrder.
// It is not a configuration axis: linting and formatting both select it.
const BiomeSlot config.Axis = "biome"

// AxisOrder is the order generators run in. Later generators may read
// files earlier ones wrote (git hooks reads the final linting scripts).
var AxisOrder = []config.Axis{
	config.AxisStyle,
	config.AxisDatabase,
	config.AxisTesting,
	config.AxisLinting,
	config.AxisFormatting,
	BiomeSlot,
	config.AxisGitHooks,
	config.AxisAuth,
	config.AxisAPI,
	config.AxisDeployment,
}

// Registry maps axis values to generators.
type Registry struct {
	byAxis   map[config.Axis]map[string]Generator
	biome    Generator
	homepage Generator
}

// NewRegistry creates a registry with the shared biome generator and the
// homepage generator that always runs last.
func NewRegistry(biome, home Generator) *Registry {
	return &Registry{
		byAxis:   make(map[config.Axis]map[string]Generator),
		biome:    biome,
		homepage: home,
	}
}

// Register binds an axis value to a generator.
func (r *Registry) Register(axis config.Axis, value string, g Generator) {
	if r.byAxis[axis] == nil {
		r.byAxis[axis] = make(map[string]Generator)
	}
	r.byAxis[axis][value] = g
}

// Default is the registry of every built-in feature generator.
func Default() *Registry {
	r := NewRegistry(linting.Biome{}, homepage.Generator{})

	r.Register(config.AxisStyle, string(config.StyleTailwind), styles.Tailwind{})
	r.Register(config.AxisStyle, string(config.StyleUnoCSS), styles.UnoCSS{})
	r.Register(config.AxisStyle, string(config.StyleSass), styles.Sass{})

	r.Register(config.AxisDatabase, string(config.DatabaseDrizzle), database.Drizzle{})
	r.Register(config.AxisDatabase, string(config.DatabasePrisma), database.Prisma{})

	r.Register(config.AxisTesting, string(config.TestingVitest), testrunner.Vitest{})
	r.Register(config.AxisTesting, string(config.TestingPlaywright), testrunner.Playwright{})

	r.Register(config.AxisLinting, string(config.LintingESLint), linting.ESLint{})
	r.Register(config.AxisLinting, string(config.LintingOxlint), linting.Oxlint{})

	r.Register(config.AxisFormatting, string(config.FormattingPrettier), formatting.Prettier{})

	r.Register(config.AxisGitHooks, string(config.GitHooksHusky), githooks.Husky{})

	r.Register(config.AxisAuth, string(config.AuthBetterAuth), auth.BetterAuth{})
	r.Register(config.AxisAuth, string(config.AuthClerk), auth.Clerk{})

	r.Register(config.AxisAPI, string(config.APITRPC), api.TRPC{})
	r.Register(config.AxisAPI, string(config.APIHono), api.Hono{})

	r.Register(config.AxisDeployment, string(config.DeploymentVercel), deploy.Vercel())
	r.Register(config.AxisDeployment, string(config.DeploymentNetlify), deploy.Netlify())
	r.Register(config.AxisDeployment, string(config.DeploymentCloudflare), deploy.Cloudflare())

	return r
}

// Select returns the feature generators for cfg in AxisOrder. Biome is
// included once when either linting or formatting chose it. The homepage
// generator is not part of the selection.
func (r *Registry) Select(cfg *config.ProjectConfig) []Generator {
	var selected []Generator
	for _, axis := range AxisOrder {
		if axis == BiomeSlot {
			if cfg.UsesBiome() && r.biome != nil {
				selected = append(selected, r.biome)
			}
			continue
		}
		if g, ok := r.byAxis[axis][cfg.Get(axis)]; ok {
			selected = append(selected, g)
		}
	}
	return selected
}

// ApplyAll checks compatibility, runs the selected generators one at a
// time and finally the homepage generator. The first failure stops the run;
// files already written are left in place.
func (r *Registry) ApplyAll(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	if err := compat.Assert(cfg); err != nil {
		return err
	}

	for _, g := range r.Select(cfg) {
		if err := ctx.Err(); err != nil {
			return err
		}
		output.Verbose(fmt.Sprintf("Applying %s...", g.Name()))
		if err := g.Apply(ctx, dir, cfg); err != nil {
			return fmt.Errorf("%s: %w", g.Name(), err)
		}
	}

	if r.homepage == nil {
		return nil
	}
	output.Verbose("Generating homepage...")
	if err := r.homepage.Apply(ctx, dir, cfg); err != nil {
		return fmt.Errorf("%s: %w", r.homepage.Name(), err)
	}
	return nil
}

// Select is Default().Select.
func Select(cfg *config.ProjectConfig) []Generator {
	return Default().Select(cfg)
}

// ApplyAll is Default().ApplyAll.
func ApplyAll(ctx context.Context, dir string, cfg *config.ProjectConfig) error {
	return Default().ApplyAll(ctx, dir, cfg)
}
