package templates

import (
	"github.com/simonhull/solidified/internal/adapter"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/pkgmanager"
	"github.com/simonhull/solidified/internal/workspace"
)

// NewData collects the values feature templates read from the project
// configuration and the framework adapter.
func NewData(cfg *config.ProjectConfig, a *adapter.Adapter) Data {
	run := pkgmanager.RunCommand(cfg.PackageManager)
	return Data{
		Name:         cfg.PackageName(),
		Database:     cfg.Database,
		HasDatabase:  cfg.Database != config.DatabaseNone,
		DevPort:      a.DevPort,
		DevCommand:   run + " dev",
		BuildCommand: run + " build",
		EnvPrefix:    a.EnvPrefix,
		RoutesDir:    a.RoutesDir,
	}
}

// File pairs a project path with the feature template it is written from.
type File struct {
	Path     string
	Template string
}

// Render renders every template into a file ready for workspace.WriteFiles.
func Render(data Data, files ...File) ([]workspace.File, error) {
	out := make([]workspace.File, 0, len(files))
	for _, f := range files {
		content, err := Feature(f.Template, data)
		if err != nil {
			return nil, err
		}
		out = append(out, workspace.File{Path: f.Path, Content: string(content)})
	}
	return out, nil
}
