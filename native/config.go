package native

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thermokit/fluidprop/errors"
)

// ConfigEnv names an explicit config file location, overriding the
// default search.
const ConfigEnv = "FLUIDPROP_CONFIG"

const configName = "fluidprop.yaml"

// Config is the optional on-disk configuration.
type Config struct {
	// Path is the engine installation directory.
	Path string `yaml:"path"`
	// Units selects a default unit preset: native, engineering or si.
	Units string `yaml:"units"`

	// Source is the file the config was read from. Not part of the
	// YAML schema.
	Source string `yaml:"-"`
}

// LoadConfig reads fluidprop.yaml from $FLUIDPROP_CONFIG, the working
// directory, or the executable's directory, in that order. A missing
// file is reported as a not-found error; a present but malformed file
// as invalid input.
func LoadConfig() (Config, error) {
	var candidates []string
	if p := os.Getenv(ConfigEnv); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, configName)
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), configName))
	}

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.PhaseResolve, errors.KindInvalidInput, err, "parse "+p)
		}
		cfg.Source = p
		return cfg, nil
	}

	return Config{}, errors.NotFound(errors.PhaseResolve, "config file", configName)
}
