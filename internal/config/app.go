// Package config loads the application configuration. Tunables live in an
// optional YAML file; secrets (JWT signing key, store DSN, blob store API
// secret) are environment-only and never appear in the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgcfg "newsroom-cms/pkg/config"
)

// AppConfig is the full application configuration. Durations use the YAML
// string syntax of time.ParseDuration ("30s", "1h15m").
type AppConfig struct {
	Server struct {
		Addr            string          `yaml:"addr"`
		MetricsAddr     string          `yaml:"metrics_addr"`
		ReadTimeout     pkgcfg.Duration `yaml:"read_timeout"`
		WriteTimeout    pkgcfg.Duration `yaml:"write_timeout"`
		IdleTimeout     pkgcfg.Duration `yaml:"idle_timeout"`
		HandlerTimeout  pkgcfg.Duration `yaml:"handler_timeout"`
		ShutdownTimeout pkgcfg.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Pagination struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"pagination"`

	BlobStore struct {
		CloudName    string          `yaml:"cloud_name"`
		UploadPreset string          `yaml:"upload_preset"`
		Folder       string          `yaml:"folder"`
		Timeout      pkgcfg.Duration `yaml:"timeout"`
	} `yaml:"blob_store"`
}

// Default returns the configuration used when no file is present. Addresses
// still honor the PORT and METRICS_PORT environment variables so the zero
// setup deploy works.
func Default() *AppConfig {
	cfg := &AppConfig{}
	cfg.Server.Addr = ":" + pkgcfg.GetEnvString("PORT", "8080")
	cfg.Server.MetricsAddr = ":" + pkgcfg.GetEnvString("METRICS_PORT", "9090")
	cfg.Server.ReadTimeout = pkgcfg.Duration(10 * time.Second)
	cfg.Server.WriteTimeout = pkgcfg.Duration(30 * time.Second)
	cfg.Server.IdleTimeout = pkgcfg.Duration(2 * time.Minute)
	cfg.Server.HandlerTimeout = pkgcfg.Duration(25 * time.Second)
	cfg.Server.ShutdownTimeout = pkgcfg.Duration(15 * time.Second)
	cfg.RateLimit.RequestsPerSecond = 50
	cfg.RateLimit.Burst = 100
	cfg.Pagination.DefaultLimit = 20
	cfg.Pagination.MaxLimit = 100
	cfg.BlobStore.Timeout = pkgcfg.Duration(30 * time.Second)
	return cfg
}

// Load reads the YAML file at path over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	// #nosec G304 -- path comes from the CONFIG_FILE variable, an operator input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// FromEnv resolves the configuration: the file named by CONFIG_FILE when
// set, defaults otherwise.
func FromEnv() (*AppConfig, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return Load(path)
	}
	return Default(), nil
}

func (c *AppConfig) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("rate_limit requests_per_second must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit burst must be positive")
	}
	if c.Pagination.DefaultLimit <= 0 || c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("pagination limits must satisfy 0 < default <= max")
	}
	if c.Server.HandlerTimeout >= c.Server.WriteTimeout {
		return fmt.Errorf("handler_timeout must be below write_timeout")
	}
	return nil
}
