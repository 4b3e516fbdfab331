package scoring

import (
	"time"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/extract"
)

// Safety scores the safe and well-led sub-ratings plus inspection recency.
type Safety struct{}

const safetyMax = 15

func (Safety) Name() category.Name { return category.Safety }
func (Safety) MaxPoints() float64  { return safetyMax }

func (Safety) Calculate(entity *domain.FusedEntity, _ *domain.RequestProfile, _ map[string]any) float64 {
	points := ratingPoints(entity.RatingSafe, 8, 6, 2)
	points += ratingPoints(entity.RatingWellLed, 4, 3, 1)
	points += inspectionRecency(entity.LastInspection, time.Now())
	return extract.Clamp(points/safetyMax, 0, 1)
}

// inspectionRecency rewards a recent inspection: 3 points within 18 months,
// 1.5 within 36, nothing beyond.
func inspectionRecency(last *time.Time, now time.Time) float64 {
	if last == nil {
		return 0
	}
	age := now.Sub(*last)
	const month = 30 * 24 * time.Hour
	switch {
	case age <= 18*month:
		return 3
	case age <= 36*month:
		return 1.5
	default:
		return 0
	}
}
