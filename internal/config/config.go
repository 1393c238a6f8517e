package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("config not found")

// FileConfig is the on-disk YAML configuration shape for gomistakes.
// Pointer fields distinguish "unset" from zero values so that layers can be
// merged with precedence.
type FileConfig struct {
	Include          *string `yaml:"include,omitempty"`
	Exclude          *string `yaml:"exclude,omitempty"`
	NoColor          *bool   `yaml:"no_color,omitempty"`
	DefaultExcludes  *bool   `yaml:"default_excludes,omitempty"`
	RespectGitignore *bool   `yaml:"gitignore,omitempty"`
	Verbose          *bool   `yaml:"verbose,omitempty"`
}

// LocalNames lists the repo-local config file names in search order.
var LocalNames = []string{".gomistakes.yml", ".gomistakes.yaml", "gomistakes.yml", "gomistakes.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a config file in root.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNotFound
}

// LoadGlobal loads $XDG_CONFIG_HOME/gomistakes/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, ErrNotFound
	}
	p := filepath.Join(base, "gomistakes", "config.yml")
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNotFound
	}
	return LoadFile(p)
}

// Load returns the local and global configs for root. Missing files are not
// an error; a file that exists but does not parse is.
func Load(root string) (local, global FileConfig, err error) {
	global, err = LoadGlobal()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return local, global, err
	}
	local, err = LoadLocal(root)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return local, global, err
	}
	return local, global, nil
}
