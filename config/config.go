// Package config loads the thin, external-collaborator configuration a
// multiplexd process needs at startup: where to listen and which
// primitive types to register. Everything downstream of this package --
// routing, dispatch, primitive state -- is config-free by design.
package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config is the top-level configuration for a multiplexd process.
type Config struct {
	// ListenAddress is the host:port the gRPC frontend binds to.
	ListenAddress string `yaml:"listen_address"`
	// LogLevel is a zapcore level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Primitives lists the primitive type names this process registers.
	// Each name must match a type the binary knows how to construct;
	// unrecognized names are a startup error, not a runtime one.
	Primitives []string `yaml:"primitives"`
}

// Default returns the configuration a multiplexd process starts with
// absent a config file.
func Default() Config {
	return Config{
		ListenAddress: ":8080",
		LogLevel:      "info",
		Primitives:    []string{"counter", "map", "lock"},
	}
}

// Load reads and parses the YAML configuration file at path, applying it
// on top of Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := ioutil.ReadFile(path)

	if err != nil {
		return cfg, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %q: %w", path, err)
	}

	return cfg, nil
}
