package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	TickMS           int    `yaml:"tick_ms"`           // replay pace per simulated tick, 100 by default
	Listen           string `yaml:"listen"`            // ":8080" by default
	LogLevel         string `yaml:"log_level"`         // "info" by default
	LogFormat        string `yaml:"log_format"`        // "console" or "json"
	DefaultAlgorithm string `yaml:"default_algorithm"` // used when a request names none
}

// If the config file is not found, we use default values
func DefaultConfig() Config {
	return Config{
		TickMS:           100,
		Listen:           ":8080",
		LogLevel:         "info",
		LogFormat:        "console",
		DefaultAlgorithm: Priority.String(),
	}
}

// Load reads YAML and overrides defaults; empty path or a missing file
// means defaults only.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	// sanity clamps
	def := DefaultConfig()
	if cfg.TickMS <= 0 {
		cfg.TickMS = def.TickMS
	}
	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
	if cfg.DefaultAlgorithm == "" {
		cfg.DefaultAlgorithm = def.DefaultAlgorithm
	}
	if _, err := ParseAlgorithm(cfg.DefaultAlgorithm); err != nil {
		return cfg, fmt.Errorf("config %s: default_algorithm: %w", path, err)
	}

	return cfg, nil
}
