package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides (SOLIDIFIED_STYLE=tailwind).
const EnvPrefix = "SOLIDIFIED"

// Load reads a preset file and applies environment overrides.
// An empty path yields the defaults plus environment overrides.
func Load(path string) (*ProjectConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("name", "")
	v.SetDefault("directory", "")
	for _, axis := range Axes {
		v.SetDefault(string(axis), def.Get(axis))
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("preset %s not found: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read preset %s: %w", path, err)
		}
	}

	cfg := &ProjectConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode preset: %w", err)
	}
	return cfg, nil
}

// ParsePreset decodes preset YAML on top of the defaults.
func ParsePreset(data []byte) (*ProjectConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	return cfg, nil
}

// SavePreset writes the axis selections to path.
// Name and directory are left out so the preset can be reused.
func SavePreset(path string, cfg *ProjectConfig) error {
	preset := *cfg
	preset.Name = ""
	preset.Directory = ""

	data, err := yaml.Marshal(&preset)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}
