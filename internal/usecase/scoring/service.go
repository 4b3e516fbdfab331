package scoring

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/extract"
	"github.com/carelens/carematch/internal/metrics"
	"github.com/carelens/carematch/internal/usecase/weights"
)

// Service orchestrates all registered calculators over one entity and
// assembles the score card.
type Service struct {
	registry *Registry
	weights  *weights.Engine
	logger   *zap.Logger
}

// New creates a scoring service.
func New(registry *Registry, weightEngine *weights.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: registry, weights: weightEngine, logger: logger}
}

// Score runs every calculator over the entity. A calculator failure is
// isolated: that category scores zero with a warning while the rest of the
// card is computed normally. Only weight configuration errors propagate.
func (s *Service) Score(entity *domain.FusedEntity, profile *domain.RequestProfile, enrichment domain.Enrichment) (domain.ScoreCard, error) {
	start := time.Now()

	active, _, err := s.weights.Compute(profile)
	if err != nil {
		return domain.ScoreCard{}, fmt.Errorf("compute weights: %w", err)
	}

	card := domain.ScoreCard{
		Entity:  entity,
		Scores:  make(map[string]float64, len(s.registry.Calculators())),
		Weights: make(map[string]float64, len(active)),
	}
	for cat, w := range active {
		card.Weights[string(cat)] = w
	}

	slice := enrichment.For(entity.ID)
	for _, calc := range s.registry.Calculators() {
		name := string(calc.Name())
		score, failed := s.safeCalculate(calc, entity, profile, slice)
		if failed {
			card.Warnings = append(card.Warnings, name)
		}

		card.Scores[name] = score
		card.RawTotal += score * calc.MaxPoints()
		card.WeightedTotal += score * active[calc.Name()]
	}

	if maxTotal := s.registry.MaxTotal(); maxTotal > 0 {
		card.Percent = card.RawTotal / maxTotal
	}

	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	return card, nil
}

// safeCalculate runs one calculator, recovering any panic as a zero score.
func (s *Service) safeCalculate(calc Calculator, entity *domain.FusedEntity, profile *domain.RequestProfile, enrichment map[string]any) (score float64, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			score, failed = 0, true
			metrics.CalculatorFailuresTotal.WithLabelValues(string(calc.Name())).Inc()
			s.logger.Warn("calculator failed",
				zap.String("category", string(calc.Name())),
				zap.String("entity", entity.ID),
				zap.Any("panic", r),
			)
		}
	}()
	return extract.Clamp(calc.Calculate(entity, profile, enrichment), 0, 1), false
}
