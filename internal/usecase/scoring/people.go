package scoring

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/extract"
)

// Reputation scores the directory review aggregate: the average scaled into
// eight points plus a volume bonus.
type Reputation struct{}

const reputationMax = 10

func (Reputation) Name() category.Name { return category.Reputation }
func (Reputation) MaxPoints() float64  { return reputationMax }

func (Reputation) Calculate(entity *domain.FusedEntity, _ *domain.RequestProfile, _ map[string]any) float64 {
	if entity.ReviewScore == nil {
		return 0
	}
	// Review averages arrive on a 0-10 scale.
	points := extract.Clamp(*entity.ReviewScore, 0, 10) / 10 * 8

	if entity.ReviewCount != nil {
		switch {
		case *entity.ReviewCount >= 20:
			points += 2
		case *entity.ReviewCount >= 5:
			points++
		}
	}
	return extract.Clamp(points/reputationMax, 0, 1)
}

// Staffing starts from a neutral baseline and adjusts on enriched workforce
// indicators plus the caring sub-rating.
type Staffing struct{}

const staffingMax = 12

func (Staffing) Name() category.Name { return category.Staffing }
func (Staffing) MaxPoints() float64  { return staffingMax }

func (Staffing) Calculate(entity *domain.FusedEntity, _ *domain.RequestProfile, enrichment map[string]any) float64 {
	points := 6.0 // baseline: no workforce signal

	if turnover := extract.Float(extract.Nested(enrichment, nil, "workforce", "turnover_rate"), -1); turnover >= 0 {
		switch {
		case turnover < 0.2:
			points += 4
		case turnover < 0.3:
			points += 2
		case turnover > 0.5:
			points -= 4
		}
	}
	if vacancy := extract.Float(extract.Nested(enrichment, nil, "workforce", "vacancy_rate"), -1); vacancy >= 0 && vacancy < 0.05 {
		points += 2
	}

	points += ratingPoints(entity.RatingCaring, 3, 2, 0)

	return extract.Clamp(points/staffingMax, 0, 1)
}
