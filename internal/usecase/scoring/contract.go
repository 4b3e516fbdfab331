// Package scoring runs the per-category calculators over fused entities and
// combines their output with the active weight mapping into score cards.
package scoring

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
)

// Calculator is one evaluation category. Implementations are pure: no I/O,
// no shared state. Calculate returns a normalized score in [0, 1]; the
// orchestrator recovers panics at this boundary and scores the category 0.
type Calculator interface {
	// Name is the category this calculator scores.
	Name() category.Name

	// MaxPoints is the category's raw point budget.
	MaxPoints() float64

	// Calculate scores the entity against the profile. enrichment is the
	// entity's slice of external data and may be nil.
	Calculate(entity *domain.FusedEntity, profile *domain.RequestProfile, enrichment map[string]any) float64
}
