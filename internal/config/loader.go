package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is tried when neither an explicit path nor CONFIG_PATH is set.
const DefaultPath = "./config.yaml"

// Load reads the configuration from CONFIG_PATH or DefaultPath.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads YAML from path, falling back to CONFIG_PATH when path is
// empty. ENV overrides YAML, which overrides env-default tags. A named file
// must exist; a missing DefaultPath means ENV and defaults only.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path == "" {
		_, err := os.Stat(DefaultPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return fmt.Errorf("config: read env: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("config: file %s: %w", DefaultPath, err)
		}
		path = DefaultPath
	} else if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}
