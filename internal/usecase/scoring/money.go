package scoring

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/extract"
)

// Affordability compares the facility's weekly fee for the requested care
// type against the profile's budget band.
type Affordability struct{}

const affordabilityMax = 20

func (Affordability) Name() category.Name { return category.Affordability }
func (Affordability) MaxPoints() float64  { return affordabilityMax }

func (Affordability) Calculate(entity *domain.FusedEntity, profile *domain.RequestProfile, _ map[string]any) float64 {
	ceiling := profile.Budget.WeeklyMax
	if ceiling <= 0 {
		// No budget stated: neutral half credit.
		return 0.5
	}

	fee := weeklyFee(entity, profile.CareType)
	if fee == nil {
		// Price unknown: small partial credit, never full.
		return 0.4
	}

	var points float64
	switch {
	case *fee <= 0.8*ceiling:
		points = 20
	case *fee <= ceiling:
		points = 14
	case *fee <= 1.2*ceiling:
		points = 6
	default:
		points = 0
	}
	return extract.Clamp(points/affordabilityMax, 0, 1)
}

// weeklyFee picks the "from" fee for the requested care type, falling back
// to the other care type when the requested one is unpriced.
func weeklyFee(entity *domain.FusedEntity, careType string) *float64 {
	if careType == "nursing" {
		if entity.FeeNursingFrom != nil {
			return entity.FeeNursingFrom
		}
		return entity.FeeResidentialFrom
	}
	if entity.FeeResidentialFrom != nil {
		return entity.FeeResidentialFrom
	}
	return entity.FeeNursingFrom
}

// FinancialStability starts from a neutral baseline and applies bounded
// bonuses and penalties from the provider's enriched financial indicators.
type FinancialStability struct{}

const financialStabilityMax = 8

func (FinancialStability) Name() category.Name { return category.FinancialStability }
func (FinancialStability) MaxPoints() float64  { return financialStabilityMax }

func (FinancialStability) Calculate(_ *domain.FusedEntity, _ *domain.RequestProfile, enrichment map[string]any) float64 {
	points := 4.0 // baseline: no signal either way

	if credit := extract.Float(extract.Nested(enrichment, nil, "finance", "credit_score"), -1); credit >= 0 {
		switch {
		case credit >= 70:
			points += 2
		case credit < 40:
			points -= 2
		}
	}

	switch years := extract.Float(extract.Nested(enrichment, nil, "finance", "years_trading"), -1); {
	case years >= 10:
		points += 2
	case years >= 5:
		points++
	}

	if extract.Bool(extract.Nested(enrichment, nil, "finance", "profitable"), false) {
		points++
	}
	if extract.Bool(extract.Nested(enrichment, nil, "finance", "at_risk"), false) {
		points -= 3
	}

	return extract.Clamp(points/financialStabilityMax, 0, 1)
}
