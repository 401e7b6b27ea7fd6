package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmizuno/devlaunch/internal/model"
)

// Default port values reflect the dev servers this launcher was built
// around: the backend binds 4321 in its run.py, and yarn dev serves on
// the usual 3000.
const (
	defaultBackendPort  = 4321
	defaultFrontendPort = 3000
)

// configFileNames lists the config file candidates probed at the project
// root, in priority order. The first existing file wins; the others are
// ignored rather than merged.
var configFileNames = []string{
	".devlaunch.yaml",
	".devlaunch.yml",
	".devlaunch.json",
}

// ServiceConfig describes how one service is located, launched, and
// probed. All fields are optional in the config file; zero values fall
// back to the built-in defaults during merging.
type ServiceConfig struct {
	// Dir is the service directory, relative to the project root
	// (absolute paths are also accepted and used as-is).
	Dir string `yaml:"dir" json:"dir"`

	// Command is the start command as an argv vector. The first element
	// is resolved against PATH at launch time — after virtualenv
	// activation for the backend, so "python" resolves to the venv
	// interpreter.
	Command []string `yaml:"command" json:"command"`

	// Venv is the virtualenv directory relative to the service
	// directory. Only meaningful for the backend. When empty, the
	// launcher probes the conventional locations (venv, .venv).
	Venv string `yaml:"venv,omitempty" json:"venv,omitempty"`

	// Port is the TCP port the service's dev server listens on.
	// Used only by the status command, never enforced at launch.
	Port int `yaml:"port" json:"port"`
}

// Config is the full launch configuration: one entry per service.
type Config struct {
	Backend  ServiceConfig `yaml:"backend" json:"backend"`
	Frontend ServiceConfig `yaml:"frontend" json:"frontend"`
}

// Default returns the built-in configuration describing the standard
// project layout. Callers receive a fresh value each time, so mutating
// the result is safe.
func Default() *Config {
	return &Config{
		Backend: ServiceConfig{
			Dir:     "backend",
			Command: []string{"python", "run.py"},
			Port:    defaultBackendPort,
		},
		Frontend: ServiceConfig{
			Dir:     "frontend",
			Command: []string{"yarn", "dev"},
			Port:    defaultFrontendPort,
		},
	}
}

// Load returns the effective configuration for a project root.
//
// When explicitPath is non-empty it names the config file to load, and a
// missing or unreadable file is an error (the user asked for that exact
// file). Otherwise the candidates in configFileNames are probed under
// root, and having no config file at all is the normal case — the
// defaults are returned unchanged.
func Load(root, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		found, ok := FindConfigFile(root)
		if !ok {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	// Unmarshal over a copy of the defaults. Both yaml.v3 and
	// encoding/json leave fields untouched when the corresponding key is
	// absent, which gives us field-level merging for free.
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid YAML in %s", path), err)
		}
	case ".json":
		// Strip JSONC comments and trailing commas before parsing.
		// Hand-maintained config files frequently carry comments.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid JSON in %s", path), err)
		}
	default:
		return nil, model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("unsupported config file extension %q (valid: .yaml, .yml, .json)", filepath.Ext(path)))
	}

	return cfg, nil
}

// FindConfigFile probes the config file candidates under root and
// returns the first one that exists.
func FindConfigFile(root string) (string, bool) {
	for _, name := range configFileNames {
		path := filepath.Join(root, name)
		// os.Stat checks existence without reading contents; the read
		// happens in Load once a candidate is chosen.
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
