package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rutadev/ruta/internal/fsops"
)

// Backend names accepted in config.yaml.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config models config.yaml.
type Config struct {
	// Backend selects the progress persistence surface:
	// "file" (default), "redis", or "memory" (nothing persists).
	Backend string `yaml:"backend"`

	// RedisURL is the redis:// connection URL, required when
	// Backend is "redis".
	RedisURL string `yaml:"redis_url,omitempty"`

	// ActivePath is the learning path bare commands operate on.
	ActivePath string `yaml:"active_path,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Backend: BackendFile,
	}
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("backend %q requires redis_url", BackendRedis)
		}
	default:
		return fmt.Errorf("unknown backend %q (expected %q, %q, or %q)",
			c.Backend, BackendFile, BackendRedis, BackendMemory)
	}
	return nil
}

// Load reads the config file, returning defaults when it doesn't exist.
func Load(fs fsops.FS, file string) (*Config, error) {
	data, err := fs.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Save writes the config file atomically.
func Save(fs fsops.FS, file string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fs.AtomicWrite(file, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
