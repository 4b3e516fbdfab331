// Package config loads and validates the engine configuration. All settings
// have compiled-in defaults; a YAML file only overrides them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
)

// Config holds the carematch engine configuration.
type Config struct {
	// Weights overrides the base weight table (percent, must sum to 100).
	Weights map[string]float64 `yaml:"weights"`

	Selection SelectionConfig `yaml:"selection"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SelectionConfig holds shortlist settings.
type SelectionConfig struct {
	TopK        int `yaml:"top_k" validate:"min=0,max=50"`
	ProviderCap int `yaml:"provider_cap" validate:"min=0,max=10"`
}

// ScoringConfig holds batch scoring settings.
type ScoringConfig struct {
	Workers int `yaml:"workers" validate:"min=0,max=64"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Selection.TopK <= 0 {
		c.Selection.TopK = 5
	}
	if c.Selection.ProviderCap <= 0 {
		c.Selection.ProviderCap = 1
	}
	if c.Scoring.Workers <= 0 {
		c.Scoring.Workers = 4
	}
}

// Validate checks the configuration for correctness. A weight table that
// names an unknown category or does not sum to 100 is a configuration error
// surfaced to the caller, never swallowed.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if len(c.Weights) == 0 {
		return nil
	}
	sum := 0.0
	for name, w := range c.Weights {
		if !category.Name(name).IsValid() {
			return fmt.Errorf("%w: weights names unknown category %q", domain.ErrInvalidWeightConfig, name)
		}
		if w < 0 {
			return fmt.Errorf("%w: weights.%s is negative", domain.ErrInvalidWeightConfig, name)
		}
		sum += w
	}
	const epsilon = 1e-6
	if sum < 100-epsilon || sum > 100+epsilon {
		return fmt.Errorf("%w: weights sum to %.4f, want 100", domain.ErrInvalidWeightConfig, sum)
	}
	return nil
}

// WeightTable converts the configured override into the weight engine's
// keyed form, nil when no override is set.
func (c *Config) WeightTable() map[category.Name]float64 {
	if len(c.Weights) == 0 {
		return nil
	}
	table := make(map[category.Name]float64, len(c.Weights))
	for name, w := range c.Weights {
		table[category.Name(name)] = w
	}
	return table
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
