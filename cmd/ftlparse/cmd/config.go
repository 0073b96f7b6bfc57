package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional .ftlparse.yaml settings file. Every field has a
// usable zero value, so a missing file is equivalent to an empty one.
type Config struct {
	Spans     bool   `yaml:"spans"`
	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
}

// LoadConfig reads the config file named by --config, or ./.ftlparse.yaml if
// unset. A missing default file is not an error; a missing explicit one is.
func LoadConfig() (Config, error) {
	path := configFile
	if path == "" {
		path = ".ftlparse.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Config{}, nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
