package carematch

import (
	"go.uber.org/zap"

	"github.com/carelens/carematch/internal/config"
)

type engineConfig struct {
	cfg        config.Config
	configPath string
	logger     *zap.Logger
	weights    map[string]float64
}

// Option configures the Engine.
type Option func(*engineConfig)

// WithConfigFile loads engine configuration from a YAML file.
func WithConfigFile(path string) Option {
	return func(c *engineConfig) { c.configPath = path }
}

// WithLogger sets the engine logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *engineConfig) { c.logger = l }
}

// WithWeights overrides the base weight table (percent, must sum to 100).
func WithWeights(weights map[string]float64) Option {
	return func(c *engineConfig) { c.weights = weights }
}

// WithTopK sets the shortlist size used by Recommend.
func WithTopK(k int) Option {
	return func(c *engineConfig) { c.cfg.Selection.TopK = k }
}

// WithProviderCap bounds how many shortlist entries may share a provider.
func WithProviderCap(n int) Option {
	return func(c *engineConfig) { c.cfg.Selection.ProviderCap = n }
}

// WithScoreWorkers bounds the parallelism of ScoreBatch.
func WithScoreWorkers(n int) Option {
	return func(c *engineConfig) { c.cfg.Scoring.Workers = n }
}
