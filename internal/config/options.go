package config

// Axis names one configuration dimension.
type Axis string

const (
	AxisFramework      Axis = "framework"
	AxisPackageManager Axis = "package_manager"
	AxisStyle          Axis = "style"
	AxisDatabase       Axis = "database"
	AxisAuth           Axis = "auth"
	AxisAPI            Axis = "api"
	AxisTesting        Axis = "testing"
	AxisLinting        Axis = "linting"
	AxisFormatting     Axis = "formatting"
	AxisGitHooks       Axis = "git_hooks"
	AxisDeployment     Axis = "deployment"
)

// None is the value every feature axis uses for "feature absent".
const None = "none"

type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

type Framework string

const (
	ViteSolidRouter Framework = "vite-solid-router"
	SolidStart      Framework = "solid-start"
	TanStackStart   Framework = "tanstack-start"
)

// ServerCapable reports whether the framework can host server routes.
func (f Framework) ServerCapable() bool {
	return f != ViteSolidRouter
}

type Style string

const (
	StyleNone     Style = None
	StyleTailwind Style = "tailwind"
	StyleUnoCSS   Style = "unocss"
	StyleSass     Style = "sass"
)

type Database string

const (
	DatabaseNone    Database = None
	DatabaseDrizzle Database = "drizzle"
	DatabasePrisma  Database = "prisma"
)

type Auth string

const (
	AuthNone       Auth = None
	AuthBetterAuth Auth = "better-auth"
	AuthClerk      Auth = "clerk"
)

type API string

const (
	APINone API = None
	APITRPC API = "trpc"
	APIHono API = "hono"
)

type Testing string

const (
	TestingNone       Testing = None
	TestingVitest     Testing = "vitest"
	TestingPlaywright Testing = "playwright"
)

type Linting string

const (
	LintingNone   Linting = None
	LintingBiome  Linting = "biome"
	LintingESLint Linting = "eslint"
	LintingOxlint Linting = "oxlint"
)

type Formatting string

const (
	FormattingNone     Formatting = None
	FormattingBiome    Formatting = "biome"
	FormattingPrettier Formatting = "prettier"
)

type GitHooks string

const (
	GitHooksNone  GitHooks = None
	GitHooksHusky GitHooks = "husky"
)

type Deployment string

const (
	DeploymentNone       Deployment = None
	DeploymentVercel     Deployment = "vercel"
	DeploymentNetlify    Deployment = "netlify"
	DeploymentCloudflare Deployment = "cloudflare"
)

// Option is one selectable value of an axis.
type Option struct {
	Value       string
	Label       string
	Description string
}

var axisOptions = map[Axis][]Option{
	AxisFramework: {
		{string(SolidStart), "SolidStart", "Full-stack meta-framework with server routes"},
		{string(ViteSolidRouter), "Vite + Solid Router", "Client-only SPA"},
		{string(TanStackStart), "TanStack Start", "Coming soon"},
	},
	AxisPackageManager: {
		{string(NPM), "npm", ""},
		{string(PNPM), "pnpm", ""},
		{string(Yarn), "yarn", ""},
		{string(Bun), "bun", ""},
	},
	AxisStyle: {
		{None, "None", "Plain CSS"},
		{string(StyleTailwind), "Tailwind CSS", "Utility-first CSS framework"},
		{string(StyleUnoCSS), "UnoCSS", "Instant on-demand atomic CSS"},
		{string(StyleSass), "Sass", "CSS with superpowers"},
	},
	AxisDatabase: {
		{None, "None", ""},
		{string(DatabaseDrizzle), "Drizzle", "TypeScript ORM with PostgreSQL"},
		{string(DatabasePrisma), "Prisma", "Next-generation ORM"},
	},
	AxisAuth: {
		{None, "None", ""},
		{string(AuthBetterAuth), "Better Auth", "Self-hosted authentication"},
		{string(AuthClerk), "Clerk", "Hosted authentication"},
	},
	AxisAPI: {
		{None, "None", ""},
		{string(APITRPC), "tRPC", "End-to-end typesafe APIs"},
		{string(APIHono), "Hono", "Lightweight web framework"},
	},
	AxisTesting: {
		{None, "None", ""},
		{string(TestingVitest), "Vitest", "Unit testing"},
		{string(TestingPlaywright), "Playwright", "End-to-end testing"},
	},
	AxisLinting: {
		{None, "None", ""},
		{string(LintingBiome), "Biome", "Fast linter and formatter"},
		{string(LintingESLint), "ESLint", "Pluggable linter"},
		{string(LintingOxlint), "Oxlint", "Rust-powered linter"},
	},
	AxisFormatting: {
		{None, "None", ""},
		{string(FormattingBiome), "Biome", "Fast formatter"},
		{string(FormattingPrettier), "Prettier", "Opinionated formatter"},
	},
	AxisGitHooks: {
		{None, "None", ""},
		{string(GitHooksHusky), "Husky + lint-staged", "Run checks on commit"},
	},
	AxisDeployment: {
		{None, "None", ""},
		{string(DeploymentVercel), "Vercel", ""},
		{string(DeploymentNetlify), "Netlify", ""},
		{string(DeploymentCloudflare), "Cloudflare", ""},
	},
}

// Axes lists every axis in prompt order.
var Axes = []Axis{
	AxisFramework,
	AxisPackageManager,
	AxisStyle,
	AxisDatabase,
	AxisAuth,
	AxisAPI,
	AxisTesting,
	AxisLinting,
	AxisFormatting,
	AxisGitHooks,
	AxisDeployment,
}

// Options returns the selectable values of an axis.
func Options(axis Axis) []Option {
	return append([]Option(nil), axisOptions[axis]...)
}

// Values returns the raw values of an axis.
func Values(axis Axis) []string {
	opts := axisOptions[axis]
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	return values
}
