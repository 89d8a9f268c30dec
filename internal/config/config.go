package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings that can come from a YAML file or the
// environment. Command line flags override them.
type Config struct {
	MediainfoPath   string        `yaml:"mediainfo_path" env:"MEDIASCAN_MEDIAINFO" env-default:"mediainfo"`
	MediainfoOutput string        `yaml:"mediainfo_output" env:"MEDIASCAN_MEDIAINFO_OUTPUT" env-default:"XML"`
	Workers         int           `yaml:"workers" env:"MEDIASCAN_WORKERS" env-default:"0"`
	LogLevel        string        `yaml:"log_level" env:"MEDIASCAN_LOG_LEVEL"`
	Width           int           `yaml:"width" env:"MEDIASCAN_WIDTH" env-default:"0"`
	Timeout         time.Duration `yaml:"timeout" env:"MEDIASCAN_TIMEOUT" env-default:"0s"`
}

// Load reads path when given, otherwise only the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
		return cfg, cfg.validate()
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration from environment: %w", err)
	}
	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.MediainfoPath == "" {
		return fmt.Errorf("mediainfo_path must not be empty")
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", cfg.Width)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	return nil
}
