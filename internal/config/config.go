// Package config loads and validates Declint configuration from
// .declint.yml files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unbound-force/declint/internal/lint"
)

// DefaultFileName is the config file Declint looks for in the
// working directory.
const DefaultFileName = ".declint.yml"

// Conventions holds per-role naming convention overrides. Empty
// values fall back to the house style.
type Conventions struct {
	// Function is the convention for function names.
	Function string `yaml:"function"`

	// Param is the convention for function parameter names.
	Param string `yaml:"param"`

	// Type is the convention for nominal type names.
	Type string `yaml:"type"`

	// Field is the convention for record field names.
	Field string `yaml:"field"`
}

// CheckConfig configures which declarations a check run inspects.
type CheckConfig struct {
	// Conventions overrides the naming policy per identifier role.
	Conventions Conventions `yaml:"conventions"`

	// Exclude lists file glob patterns to skip. Supports simple
	// globs ("*_gen.go") and directory subtrees ("vendor/**"),
	// matched at any depth.
	Exclude []string `yaml:"exclude"`

	// Include, when set, restricts checking to files matching at
	// least one pattern.
	Include []string `yaml:"include"`

	// IncludeUnexported includes unexported declarations. The CLI
	// flag of the same name overrides this.
	IncludeUnexported bool `yaml:"include_unexported"`
}

// Config is the root Declint configuration.
type Config struct {
	Check CheckConfig `yaml:"check"`
}

// DefaultConfig returns the configuration used when no config file
// is present.
func DefaultConfig() *Config {
	return &Config{
		Check: CheckConfig{
			Exclude: []string{
				"vendor/**",
				"testdata/**",
				"*.pb.go",
			},
		},
	}
}

// Load reads and parses a config file. A missing file is not an
// error: the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// validate rejects unknown convention names early, so a typo fails
// the run instead of silently falling back to the defaults.
func (c *Config) validate() error {
	for role, value := range map[string]string{
		"function": c.Check.Conventions.Function,
		"param":    c.Check.Conventions.Param,
		"type":     c.Check.Conventions.Type,
		"field":    c.Check.Conventions.Field,
	} {
		if value == "" {
			continue
		}
		if _, err := parseConvention(value); err != nil {
			return fmt.Errorf("conventions.%s: %w", role, err)
		}
	}
	return nil
}

// parseConvention maps a config string to a lint.Convention.
func parseConvention(s string) (lint.Convention, error) {
	switch s {
	case "lower_snake_case", "snake_case":
		return lint.LowerSnakeCase, nil
	case "UpperCamelCase", "CamelCase":
		return lint.UpperCamelCase, nil
	default:
		return "", fmt.Errorf("unknown convention %q (want lower_snake_case or UpperCamelCase)", s)
	}
}

// conventionOr resolves a config string to a convention, falling
// back to def when unset.
func conventionOr(s string, def lint.Convention) lint.Convention {
	if s == "" {
		return def
	}
	conv, err := parseConvention(s)
	if err != nil {
		// validate() already rejected unknown values on the Load
		// path; a hand-built Config with a bad value falls back.
		return def
	}
	return conv
}

// FunctionConvention resolves the convention for function names.
func (c *Config) FunctionConvention() lint.Convention {
	return conventionOr(c.Check.Conventions.Function, lint.LowerSnakeCase)
}

// ParamConvention resolves the convention for parameter names.
func (c *Config) ParamConvention() lint.Convention {
	return conventionOr(c.Check.Conventions.Param, lint.LowerSnakeCase)
}

// TypeConvention resolves the convention for type names.
func (c *Config) TypeConvention() lint.Convention {
	return conventionOr(c.Check.Conventions.Type, lint.UpperCamelCase)
}

// FieldConvention resolves the convention for field names.
func (c *Config) FieldConvention() lint.Convention {
	return conventionOr(c.Check.Conventions.Field, lint.LowerSnakeCase)
}
