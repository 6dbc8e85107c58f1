/*
PURPOSE:
  Defines the configuration structure and loading logic for modelindex.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the project root and the fixed file names the
    layout convention depends on (configs dir, index file, summary doc).

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Defaults must reproduce the upstream repo layout so a bare
    `modelindex update` works from a checkout root.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - No ambient globals; the loaded Config is passed down explicitly.

USAGE:
  cfg, err := config.Load("modelindex.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new layout parameters.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for modelindex.
type Config struct {
	// Root is the project root all relative paths are computed against.
	Root string `yaml:"root"`
	// ConfigsDir is the subdirectory of Root scanned for metafiles; it is
	// also the path prefix stripped when deriving model names.
	ConfigsDir string `yaml:"configs_dir"`
	// IndexFile is the aggregate index written at Root.
	IndexFile string `yaml:"index_file"`
	// SummaryFile is the per-task summary doc name. Input paths with this
	// base name are filtered out, and the task label is read from it.
	SummaryFile string `yaml:"summary_file"`
	// MetafileExt is the extension of generated metafiles.
	MetafileExt string `yaml:"metafile_ext"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Root:        ".",
		ConfigsDir:  "configs",
		IndexFile:   "model-index.yml",
		SummaryFile: "README.md",
		MetafileExt: ".yml",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"modelindex.yaml", ".modelindex.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
