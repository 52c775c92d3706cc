package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if STREAMPACK_CONFIG is set
//  3. env (prefix STREAMPACK_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("STREAMPACK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: STREAMPACK_ADDR, STREAMPACK_CATALOG_DIR, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("STREAMPACK_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "streampack_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.CatalogDir == "":
		return fmt.Errorf("%w: catalog_dir must not be empty", ErrInvalidConfig)
	case c.MaxAlternatives <= 0:
		return fmt.Errorf("%w: max_alternatives must be positive", ErrInvalidConfig)
	case c.MaxTeamNames <= 0:
		return fmt.Errorf("%w: max_team_names must be positive", ErrInvalidConfig)
	}
	return nil
}
