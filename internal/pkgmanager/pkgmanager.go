// Package pkgmanager knows the command strings of each JavaScript package
// manager and how to probe its installed version.
package pkgmanager

import (
	"context"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/simonhull/solidified/internal/config"
)

// Runner runs a command and returns its trimmed stdout.
// *exec.Executor satisfies it.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// InstallCommand installs the project's dependencies.
func InstallCommand(pm config.PackageManager) string {
	switch pm {
	case config.PNPM:
		return "pnpm install"
	case config.Yarn:
		return "yarn"
	case config.Bun:
		return "bun install"
	default:
		return "npm install"
	}
}

// RunCommand runs a package.json script when followed by its name.
func RunCommand(pm config.PackageManager) string {
	switch pm {
	case config.PNPM:
		return "pnpm"
	case config.Yarn:
		return "yarn"
	case config.Bun:
		return "bun run"
	default:
		return "npm run"
	}
}

// ExecCommand runs a locally installed binary when followed by its name.
func ExecCommand(pm config.PackageManager) string {
	switch pm {
	case config.PNPM:
		return "pnpm exec"
	case config.Yarn:
		return "yarn"
	case config.Bun:
		return "bunx"
	default:
		return "npm exec"
	}
}

// Version asks the package manager for its version. Any failure, or output
// that is not a semantic version, yields "".
func Version(ctx context.Context, r Runner, pm config.PackageManager) string {
	out, err := r.Output(ctx, string(pm), "--version")
	if err != nil {
		return ""
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return ""
	}
	v := strings.TrimPrefix(fields[0], "v")
	if !semver.IsValid("v" + v) {
		return ""
	}
	return v
}
