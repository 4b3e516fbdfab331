// Package carematch matches care-home facilities to a user's requirement
// profile. It fuses an authoritative regulator dataset with an auxiliary
// directory dataset, scores each fused facility across weighted evaluation
// categories, and selects a diversity-constrained shortlist. The engine is a
// pure in-process library: it performs no network I/O and persists nothing.
package carematch

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/carelens/carematch/internal/config"
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/logger"
	"github.com/carelens/carematch/internal/metrics"
	"github.com/carelens/carematch/internal/usecase/fusion"
	"github.com/carelens/carematch/internal/usecase/rank"
	"github.com/carelens/carematch/internal/usecase/scoring"
	"github.com/carelens/carematch/internal/usecase/weights"
	"github.com/carelens/carematch/internal/version"
)

// Engine is the carematch entry point. Safe for concurrent use: all state is
// set at construction and read-only afterwards.
type Engine struct {
	cfg      config.Config
	fusion   *fusion.Service
	scoring  *scoring.Service
	rank     *rank.Service
	validate *validator.Validate
}

// New creates an Engine. Weight configuration errors fail fast here.
func New(opts ...Option) (*Engine, error) {
	ec := &engineConfig{cfg: config.Default()}
	for _, o := range opts {
		o(ec)
	}

	if ec.configPath != "" {
		loaded, err := config.Load(ec.configPath)
		if err != nil {
			return nil, fmt.Errorf("carematch: %w", err)
		}
		ec.cfg = loaded
		// Explicit options win over file values.
		for _, o := range opts {
			o(ec)
		}
	}

	if ec.logger == nil && ec.cfg.Logging.Level != "" {
		l, err := logger.New("", ec.cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("carematch: %w", err)
		}
		ec.logger = l
	}

	table := ec.cfg.WeightTable()
	if ec.weights != nil {
		table = make(map[category.Name]float64, len(ec.weights))
		for name, w := range ec.weights {
			table[category.Name(name)] = w
		}
	}

	weightEngine, err := weights.New(table, ec.logger)
	if err != nil {
		return nil, fmt.Errorf("carematch: %w", err)
	}

	if ec.logger != nil {
		ec.logger.Debug("engine created",
			zap.String("version", version.Version),
			zap.Int("top_k", ec.cfg.Selection.TopK),
			zap.Int("provider_cap", ec.cfg.Selection.ProviderCap),
			zap.Int("score_workers", ec.cfg.Scoring.Workers))
	}

	return &Engine{
		cfg:      ec.cfg,
		fusion:   fusion.New(ec.logger),
		scoring:  scoring.New(scoring.DefaultRegistry(), weightEngine, ec.logger),
		rank:     rank.New(ec.cfg.Selection.ProviderCap, ec.logger),
		validate: validator.New(),
	}, nil
}

// Fuse links and merges the two datasets. Unmatched authoritative records
// pass through unchanged and are counted in the stats.
func (e *Engine) Fuse(authoritative []AuthoritativeRecord, auxiliary []AuxiliaryRecord) ([]FusedEntity, FusionStats) {
	return e.fusion.Fuse(authoritative, auxiliary)
}

// Score evaluates one fused entity against the profile. enrichment may be
// nil; missing enrichment degrades calculators to their baselines.
func (e *Engine) Score(entity *FusedEntity, profile *RequestProfile, enrichment Enrichment) (ScoreCard, error) {
	if err := e.checkProfile(profile); err != nil {
		return ScoreCard{}, err
	}
	return e.scoring.Score(entity, profile, enrichment)
}

// ScoreBatch scores all entities under the configured worker limit. Entity
// order is preserved. The context bounds the whole batch; the engine itself
// imposes no internal timeout.
func (e *Engine) ScoreBatch(ctx context.Context, entities []FusedEntity, profile *RequestProfile, enrichment Enrichment) ([]ScoreCard, error) {
	if err := e.checkProfile(profile); err != nil {
		return nil, err
	}

	cards := make([]ScoreCard, len(entities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Scoring.Workers)

	for i := range entities {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			card, err := e.scoring.Score(&entities[i], profile, enrichment)
			if err != nil {
				return err
			}
			cards[i] = card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("carematch: score batch: %w", err)
	}
	return cards, nil
}

// Select ranks the cards into the diversity-constrained top-K.
func (e *Engine) Select(cards []ScoreCard, k int) (SelectionResult, error) {
	if k <= 0 {
		k = e.cfg.Selection.TopK
	}
	return e.rank.Select(cards, k)
}

// RegisterMetrics registers the engine's Prometheus collectors with the
// default registry. Call at most once from the host process.
func RegisterMetrics() {
	metrics.Register()
}

// WithLoggerContext stores a logger in the context. Recommend uses it for
// per-run logging on top of the engine's own logger.
func WithLoggerContext(ctx context.Context, l *zap.Logger) context.Context {
	return logger.WithContext(ctx, l)
}

// Recommend runs the full pipeline: fuse, score every entity, select. A
// logger stored via WithLoggerContext supplements the engine's own logging
// for this one run.
func (e *Engine) Recommend(ctx context.Context, authoritative []AuthoritativeRecord, auxiliary []AuxiliaryRecord, profile *RequestProfile, enrichment Enrichment) (SelectionResult, error) {
	entities, stats := e.Fuse(authoritative, auxiliary)
	cards, err := e.ScoreBatch(ctx, entities, profile, enrichment)
	if err != nil {
		return SelectionResult{}, err
	}
	result, err := e.Select(cards, e.cfg.Selection.TopK)
	if err != nil {
		return SelectionResult{}, err
	}

	logger.FromContext(ctx).Debug("recommendation complete",
		zap.String("run_id", stats.RunID),
		zap.Int("scored", len(cards)),
		zap.Int("shortlisted", len(result.TopK)),
		zap.Bool("cap_relaxed", result.CapRelaxed))
	return result, nil
}

func (e *Engine) checkProfile(profile *RequestProfile) error {
	if profile == nil {
		return fmt.Errorf("carematch: %w: nil profile", domain.ErrInvalidProfile)
	}
	if err := e.validate.Struct(profile); err != nil {
		return fmt.Errorf("carematch: %w: %w", domain.ErrInvalidProfile, err)
	}
	return nil
}
