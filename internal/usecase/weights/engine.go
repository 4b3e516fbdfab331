// Package weights derives the active per-category weight mapping for one
// request profile from a validated base table, a fixed list of conditional
// redistribution rules, and an optional user priority ranking.
package weights

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
)

// sumEpsilon is the tolerance on the 100-percent total invariant.
const sumEpsilon = 1e-6

// DefaultBase returns the built-in base weight table (percent, sums to 100).
func DefaultBase() map[category.Name]float64 {
	return map[category.Name]float64{
		category.CareQuality:        18,
		category.MedicalFit:         16,
		category.Affordability:      14,
		category.Safety:             12,
		category.LocationFit:        8,
		category.Reputation:         6,
		category.Staffing:           8,
		category.FinancialStability: 4,
		category.Lifestyle:          6,
		category.Availability:       8,
	}
}

// Engine computes per-profile weight mappings. Construction validates the
// base table once; Compute never mutates it.
type Engine struct {
	base   map[category.Name]float64
	logger *zap.Logger
}

// New validates the base table and creates a weight engine. A table that
// names an unknown category or does not sum to 100 fails fast.
func New(base map[category.Name]float64, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(base) == 0 {
		base = DefaultBase()
	}

	sum := 0.0
	for cat, w := range base {
		if !cat.IsValid() {
			return nil, fmt.Errorf("%w: base table names %q", domain.ErrInvalidWeightConfig, cat)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %.2f for %q", domain.ErrInvalidWeightConfig, w, cat)
		}
		sum += w
	}
	if math.Abs(sum-100) > sumEpsilon {
		return nil, fmt.Errorf("%w: base table sums to %.4f, want 100", domain.ErrInvalidWeightConfig, sum)
	}

	copied := make(map[category.Name]float64, len(base))
	for cat, w := range base {
		copied[cat] = w
	}
	return &Engine{base: copied, logger: logger}, nil
}

// Compute returns the active weight mapping for the profile together with
// the names of the conditional rules that fired. The result is a new map
// summing to 100 within epsilon.
func (e *Engine) Compute(profile *domain.RequestProfile) (map[category.Name]float64, []string, error) {
	active := make(map[category.Name]float64, len(e.base))
	for cat, w := range e.base {
		active[cat] = w
	}

	var fired []string
	for _, r := range adjustmentRules {
		if !r.applies(profile) {
			continue
		}
		fired = append(fired, r.name)
		for cat, delta := range r.deltas {
			active[cat] += delta
		}
	}

	// Stacked penalties can push a small weight below zero; floor and
	// renormalize so the invariant holds.
	floorNegative(active)
	renormalize(active)

	if len(profile.Priorities) > 0 {
		if err := e.applyPriorities(active, profile.Priorities); err != nil {
			return nil, nil, err
		}
	}

	if len(fired) > 0 {
		e.logger.Debug("weight rules fired", zap.Strings("rules", fired))
	}
	return active, fired, nil
}

// applyPriorities blends the user's explicit ranking into the adjusted
// table: ranked categories average their adjusted weight with the user
// weight (scaled to percent over the ranked set), unranked categories keep
// their adjusted weight, and the whole map is renormalized to 100.
func (e *Engine) applyPriorities(active map[category.Name]float64, priorities []domain.RankedPriority) error {
	userSum := 0.0
	for _, p := range priorities {
		cat := category.Name(p.Category)
		if !cat.IsValid() {
			return fmt.Errorf("%w: priority ranking names %q", domain.ErrUnknownCategory, p.Category)
		}
		if p.Weight <= 0 {
			return fmt.Errorf("%w: priority weight %.2f for %q", domain.ErrInvalidWeightConfig, p.Weight, p.Category)
		}
		userSum += p.Weight
	}

	for _, p := range priorities {
		cat := category.Name(p.Category)
		userPct := p.Weight / userSum * 100
		active[cat] = (active[cat] + userPct) / 2
	}

	renormalize(active)
	return nil
}

func floorNegative(m map[category.Name]float64) {
	for cat, w := range m {
		if w < 0 {
			m[cat] = 0
		}
	}
}

func renormalize(m map[category.Name]float64) {
	sum := 0.0
	for _, w := range m {
		sum += w
	}
	if sum == 0 {
		return
	}
	for cat, w := range m {
		m[cat] = w / sum * 100
	}
}
