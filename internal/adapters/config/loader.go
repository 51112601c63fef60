// Package config provides the configuration loader for smelt.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/smelt/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// configFile is the on-disk shape of smelt.yaml.
type configFile struct {
	Name string `yaml:"name"`
	Root string `yaml:"root"`
	Log  string `yaml:"log"`
}

// Load searches upward from cwd for smelt.yaml and returns the project
// configuration. A missing file is not an error: compiles work without a
// project file, so defaults are returned instead.
func Load(cwd string) (domain.ProjectConfig, error) {
	path, ok := findConfiguration(cwd)
	if !ok {
		return domain.DefaultProjectConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProjectConfig{}, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ProjectConfig{}, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}

	cfg := domain.DefaultProjectConfig()
	if file.Name != "" {
		cfg.Name = file.Name
	}
	if file.Root != "" {
		// Root is relative to the config file, not the cwd the search
		// started from.
		cfg.Root = filepath.Join(filepath.Dir(path), file.Root)
	} else {
		cfg.Root = filepath.Dir(path)
	}
	cfg.LogJSON = file.Log == "json"

	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	dir := cwd
	for {
		path := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
