package scoring

import (
	"strings"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/extract"
)

// CareQuality scores the regulator's overall rating with bonuses and
// penalties from the detailed rating breakdown in enrichment.
type CareQuality struct{}

const careQualityMax = 30

func (CareQuality) Name() category.Name { return category.CareQuality }
func (CareQuality) MaxPoints() float64  { return careQualityMax }

func (CareQuality) Calculate(entity *domain.FusedEntity, _ *domain.RequestProfile, enrichment map[string]any) float64 {
	points := ratingPoints(entity.OverallRating, 30, 22, 10)

	// Detailed breakdown, when enriched, nudges the tier score.
	breakdown, _ := extract.Nested(enrichment, nil, "regulator", "ratings").(map[string]any)
	for _, key := range []string{"safe", "effective", "caring", "responsive", "well_led"} {
		switch strings.ToLower(extract.String(breakdown[key], "")) {
		case ratingOutstanding:
			points++
		case ratingInadequate:
			points -= 2
		}
	}

	return extract.Clamp(points/careQualityMax, 0, 1)
}
