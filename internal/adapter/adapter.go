// Package adapter describes each base framework: where its files live and
// how its config file accepts plugins, config keys and server presets.
package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/solidified/fledge/output"
	"github.com/simonhull/solidified/internal/config"
	"github.com/simonhull/solidified/internal/merge"
	"github.com/simonhull/solidified/internal/workspace"
)

// ErrNotImplemented is returned for placeholder frameworks and for
// capabilities a framework does not support.
var ErrNotImplemented = errors.New("not yet implemented")

// patcher is the framework-specific config mutation.
type patcher interface {
	plugin(content string, imp merge.Import, call string) string
	config(content, key, value string) string
	serverPreset(content, preset, extra string) (string, error)
}

// Adapter is the static descriptor of a base framework.
type Adapter struct {
	Framework    config.Framework
	ConfigPath   string
	CSSEntryPath string
	RoutesDir    string
	EntryPath    string
	DevPort      int
	DevCommand   string
	EnvPrefix    string

	patch patcher
}

var adapters = map[config.Framework]*Adapter{
	config.ViteSolidRouter: {
		Framework:    config.ViteSolidRouter,
		ConfigPath:   "vite.config.ts",
		CSSEntryPath: "src/app.css",
		RoutesDir:    "src/routes",
		EntryPath:    "src/index.tsx",
		DevPort:      5173,
		DevCommand:   "npm run dev",
		EnvPrefix:    "VITE_",
		patch:        vitePatcher{},
	},
	config.SolidStart: {
		Framework:    config.SolidStart,
		ConfigPath:   "app.config.ts",
		CSSEntryPath: "src/app.css",
		RoutesDir:    "src/routes",
		EntryPath:    "src/app.tsx",
		DevPort:      3000,
		DevCommand:   "npm run dev",
		EnvPrefix:    "VITE_",
		patch:        solidStartPatcher{},
	},
	config.TanStackStart: placeholder(config.TanStackStart),
}

func placeholder(fw config.Framework) *Adapter {
	return &Adapter{
		Framework:  fw,
		DevPort:    3000,
		DevCommand: "npm run dev",
		EnvPrefix:  "PUBLIC_",
	}
}

// Get returns the adapter for a framework. Placeholder adapters (no config
// path) fail with ErrNotImplemented.
func Get(fw config.Framework) (*Adapter, error) {
	a, ok := adapters[fw]
	if !ok {
		return nil, fmt.Errorf("unknown framework %q", fw)
	}
	if a.ConfigPath == "" {
		return nil, fmt.Errorf("framework %q is %w", fw, ErrNotImplemented)
	}
	return a, nil
}

// AddPlugin imports a plugin and registers call in the framework config.
func (a *Adapter) AddPlugin(ctx context.Context, dir string, imp merge.Import, call string) error {
	return a.updateConfig(ctx, dir, func(content string) (string, error) {
		return a.patch.plugin(content, imp, call), nil
	})
}

// AddConfig sets a build config key (the vite options object).
func (a *Adapter) AddConfig(ctx context.Context, dir, key, value string) error {
	return a.updateConfig(ctx, dir, func(content string) (string, error) {
		return a.patch.config(content, key, value), nil
	})
}

// SetServerPreset selects the server deployment preset. extra is inserted
// after the preset key when the key is newly added.
func (a *Adapter) SetServerPreset(ctx context.Context, dir, preset, extra string) error {
	return a.updateConfig(ctx, dir, func(content string) (string, error) {
		return a.patch.serverPreset(content, preset, extra)
	})
}

func (a *Adapter) updateConfig(ctx context.Context, dir string, fn func(string) (string, error)) error {
	if a.patch == nil {
		return fmt.Errorf("framework %q is %w", a.Framework, ErrNotImplemented)
	}
	changed, err := workspace.UpdateFile(ctx, dir, a.ConfigPath, fn)
	if err != nil {
		return err
	}
	if !changed {
		output.Verbose(fmt.Sprintf("no changes applied to %s", a.ConfigPath))
	}
	return nil
}

// EnvVar prefixes a name with the public env prefix (VITE_APP_URL).
func (a *Adapter) EnvVar(name string) string {
	return a.EnvPrefix + name
}

type vitePatcher struct{}

func (vitePatcher) plugin(content string, imp merge.Import, call string) string {
	return merge.InjectPlugin(content, imp, call)
}

func (vitePatcher) config(content, key, value string) string {
	return merge.InjectConfigBlock(content, key, value)
}

func (vitePatcher) serverPreset(string, string, string) (string, error) {
	return "", fmt.Errorf("server presets for %s are %w", config.ViteSolidRouter, ErrNotImplemented)
}

type solidStartPatcher struct{}

func (solidStartPatcher) plugin(content string, imp merge.Import, call string) string {
	return merge.InjectNestedPlugin(content, imp, call)
}

func (solidStartPatcher) config(content, key, value string) string {
	return merge.InjectNestedConfig(content, key, value)
}

func (solidStartPatcher) serverPreset(content, preset, extra string) (string, error) {
	return merge.InjectServerPreset(content, preset, extra), nil
}
