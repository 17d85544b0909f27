// Package config loads cargostow's ambient application configuration: HTTP
// bind address, log level, packing defaults, and rate-limit tuning
// (spec.md §9.1). It is entirely separate from the packing domain model —
// no CargoSpec, Container, or Result is ever persisted here.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig is cargostow's application-level configuration, loaded once at
// process start by the "serve" cobra subcommand.
type AppConfig struct {
	// BindAddr is the address the HTTP surface listens on, e.g. ":8080".
	BindAddr string `yaml:"bind_addr"`

	// LogLevel is parsed with logrus.ParseLevel (e.g. "info", "debug").
	LogLevel string `yaml:"log_level"`

	// DefaultContainerPreset is the preset key (spec.md §6.2) used when a
	// request names no container.
	DefaultContainerPreset string `yaml:"default_container_preset"`

	// DefaultMinSupportPct is the fallback support-ratio threshold applied
	// when a request omits one (model.DefaultMinSupportPct mirrors this).
	DefaultMinSupportPct float64 `yaml:"default_min_support_pct"`

	// RateLimitPerSecond and RateLimitBurst configure the per-remote-address
	// token bucket the HTTP surface applies (golang.org/x/time/rate).
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
}

// DefaultAppConfig returns the configuration used when no config file is
// present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BindAddr:               ":8080",
		LogLevel:               "info",
		DefaultContainerPreset: "40HC",
		DefaultMinSupportPct:   75.0,
		RateLimitPerSecond:     10,
		RateLimitBurst:         20,
	}
}

// DefaultConfigDir returns the default directory for application
// configuration. On all platforms this is ~/.cargostow/.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cargostow")
}

// DefaultConfigPath returns the default path for the application config
// file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Save persists an AppConfig to the given path as YAML, creating any missing
// parent directories.
func Save(path string, cfg AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads an AppConfig from the given path. If the file does not exist,
// it returns DefaultAppConfig with no error.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
