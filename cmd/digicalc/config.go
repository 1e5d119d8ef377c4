package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config holds settings from a config file. Command-line flags take
// precedence.
type config struct {
	Strict  bool   `toml:"strict"`
	Verbose bool   `toml:"verbose"`
	Prompt  string `toml:"prompt"`
	Locale  string `toml:"locale"`
}

// loadConfig reads a TOML config file. An empty path yields the defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, fmt.Errorf("unknown setting %q in config file %s", keys[0].String(), path)
	}
	return cfg, nil
}
