package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all emulator configuration.
type Config struct {
	VFS       VFSConfig
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// VFSConfig holds namespace loading configuration.
type VFSConfig struct {
	Path   string `envconfig:"VFS_PATH" toml:"path"`
	Script string `envconfig:"VFS_SCRIPT" toml:"script"`
	Strict bool   `envconfig:"VFS_STRICT" default:"false" toml:"strict"`
}

// ServerConfig holds HTTP server configuration for --serve mode.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000" toml:"port"`
	Host string `envconfig:"HOST" default:"0.0.0.0" toml:"host"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" toml:"development"`
}

// RateLimitConfig holds per-IP rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" toml:"enabled"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ApplyFile overlays a TOML configuration file on top of cfg. File values
// win over environment values; CLI flags are applied last by the caller.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	var file struct {
		VFS       VFSConfig       `toml:"vfs"`
		Server    ServerConfig    `toml:"server"`
		Logging   LogConfig       `toml:"logging"`
		RateLimit RateLimitConfig `toml:"rate_limit"`
	}
	file.VFS = c.VFS
	file.Server = c.Server
	file.Logging = c.Logging
	file.RateLimit = c.RateLimit
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	c.VFS = file.VFS
	c.Server = file.Server
	c.Logging = file.Logging
	c.RateLimit = file.RateLimit
	return nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		VFS: VFSConfig{},
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
