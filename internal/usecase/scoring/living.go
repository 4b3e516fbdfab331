package scoring

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/extract"
)

// Lifestyle scores amenities, respite provision, and funding-acceptance fit.
type Lifestyle struct{}

const lifestyleMax = 10

func (Lifestyle) Name() category.Name { return category.Lifestyle }
func (Lifestyle) MaxPoints() float64  { return lifestyleMax }

func (Lifestyle) Calculate(entity *domain.FusedEntity, profile *domain.RequestProfile, _ map[string]any) float64 {
	var points float64
	if flag(entity.HasGarden) {
		points += 2
	}
	if flag(entity.HasEnsuite) {
		points += 2
	}
	if flag(entity.HasWifi) {
		points++
	}
	if flag(entity.CareRespite) {
		points += 2
	}

	switch profile.Budget.FundingSource {
	case "self":
		if flag(entity.AcceptsSelfFunded) {
			points += 3
		}
	case "local_authority":
		if flag(entity.AcceptsLocalAuthority) {
			points += 3
		}
	case "nhs":
		if flag(entity.AcceptsNHSFunding) {
			points += 3
		}
	default:
		points += 1.5 // funding source not stated
	}

	return extract.Clamp(points/lifestyleMax, 0, 1)
}

// Availability scores bed capacity against the move-in timeline. A dormant
// facility scores zero outright.
type Availability struct{}

const availabilityMax = 10

func (Availability) Name() category.Name { return category.Availability }
func (Availability) MaxPoints() float64  { return availabilityMax }

func (Availability) Calculate(entity *domain.FusedEntity, profile *domain.RequestProfile, _ map[string]any) float64 {
	if flag(entity.Dormant) {
		return 0
	}

	var points float64
	switch {
	case entity.AvailableBeds == nil:
		points = 5
		if profile.Timeline.Urgent() {
			// Unknown availability is a real risk on an urgent timeline.
			points = 3
		}
	case *entity.AvailableBeds >= 3:
		points = 10
	case *entity.AvailableBeds >= 1:
		points = 8
	default:
		points = 2
	}

	return extract.Clamp(points/availabilityMax, 0, 1)
}
