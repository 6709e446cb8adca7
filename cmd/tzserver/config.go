package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server configuration.
type Config struct {
	Listen      string `toml:"listen"`
	DefaultZone string `toml:"default_zone"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
}

func defaultConfig() Config {
	return Config{
		Listen:      "127.0.0.1:8755",
		DefaultZone: "UTC",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// loadConfig reads a TOML config file over the defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
