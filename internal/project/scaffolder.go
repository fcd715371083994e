package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/solidified/fledge/exec"
	"github.com/simonhull/solidified/fledge/output"
	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/compat"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/generators"
	"github.com/simonhull/solidified/internal/pkgmanager"
	"github.com/simonhull/solidified/internal/templates"
	"github.com/simonhull/solidified/internal/workspace"
)

// ErrGitInit is wrapped around git init failures.
var ErrGitInit = errors.New("failed to initialize git repository. Ensure git is installed and on PATH")

// Runner runs the external commands a scaffold needs.
type Runner interface {
	pkgmanager.Runner
	RunIn(ctx context.Context, dir, name string, args ...string) error
}

// Options configures a Scaffolder. Zero values select the defaults.
type Options struct {
	// BaseDir is where the project directory is created. Defaults to the
	// working directory.
	BaseDir string
	Runner  Runner
	// Registry defaults to generators.Default().
	Registry *generators.Registry
}

// Result describes a scaffolded project.
type Result struct {
	Dir            string
	PackageManager string
	NextSteps      []string
}

// Scaffolder scaffolds new Solid projects
type Scaffolder struct {
	baseDir  string
	runner   Runner
	registry *generators.Registry
}

// NewScaffolder creates a new project scaffolder
func NewScaffolder(opts *Options) *Scaffolder {
	if opts == nil {
		opts = &Options{}
	}
	s := &Scaffolder{
		baseDir:  opts.BaseDir,
		runner:   opts.Runner,
		registry: opts.Registry,
	}
	if s.runner == nil {
		s.runner = NewExecRunner(exec.NewExecutor(nil), false)
	}
	if s.registry == nil {
		s.registry = generators.Default()
	}
	return s
}

// Scaffold creates the project described by cfg. Configuration errors are
// reported before anything is written; later failures leave the partially
// written directory in place.
func (s *Scaffolder) Scaffold(ctx context.Context, cfg *config.ProjectConfig) (*Result, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := compat.Assert(cfg); err != nil {
		return nil, err
	}
	if _, err := adapter.Get(cfg.Framework); err != nil {
		return nil, err
	}
	base, err := templates.Base(cfg.Framework)
	if err != nil {
		return nil, err
	}

	dir, err := s.targetDir(cfg.Directory)
	if err != nil {
		return nil, err
	}

	output.Verbose(fmt.Sprintf("Creating %s", dir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	output.Verbose(fmt.Sprintf("Copying %s template", cfg.Framework))
	if err := workspace.CopyTemplate(ctx, base, dir); err != nil {
		return nil, err
	}

	if err := workspace.UpdateManifest(ctx, dir, func(m *workspace.Manifest) error {
		return m.Set("name", cfg.PackageName())
	}); err != nil {
		return nil, err
	}

	if err := s.registry.ApplyAll(ctx, dir, cfg); err != nil {
		return nil, err
	}

	pm := ""
	if version := pkgmanager.Version(ctx, s.runner, cfg.PackageManager); version != "" {
		pm = fmt.Sprintf("%s@%s", cfg.PackageManager, version)
		if err := workspace.UpdateManifest(ctx, dir, func(m *workspace.Manifest) error {
			return m.Set("packageManager", pm)
		}); err != nil {
			return nil, err
		}
	} else {
		output.Verbose(fmt.Sprintf("Could not determine %s version", cfg.PackageManager))
	}

	if err := s.runner.RunIn(ctx, dir, "git", "init"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGitInit, err)
	}

	return &Result{
		Dir:            dir,
		PackageManager: pm,
		NextSteps: []string{
			fmt.Sprintf("cd %s", cfg.Directory),
			pkgmanager.InstallCommand(cfg.PackageManager),
			pkgmanager.RunCommand(cfg.PackageManager) + " dev",
		},
	}, nil
}

func (s *Scaffolder) targetDir(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return rel, nil
	}
	base := s.baseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}
	return filepath.Join(base, rel), nil
}
