package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the optional TOML configuration file cmd/ssenrah-core
// accepts via --config, letting a user pin a log level or a default
// project to open without passing flags on every invocation.
type fileConfig struct {
	LogLevel string `toml:"log_level"`
	Project  string `toml:"project"`
}

// loadFileConfig reads and decodes a TOML config file. A missing path is
// not an error: it returns the zero-value fileConfig.
func loadFileConfig(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}

	var cfg fileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}
