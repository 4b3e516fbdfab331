package scoring

import (
	"strings"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/extract"
)

// MedicalFit scores how well the facility's registered capabilities cover
// the profile's medical needs. With no stated needs the category is fully
// satisfied by definition.
type MedicalFit struct{}

const medicalFitMax = 25

func (MedicalFit) Name() category.Name { return category.MedicalFit }
func (MedicalFit) MaxPoints() float64  { return medicalFitMax }

func (MedicalFit) Calculate(entity *domain.FusedEntity, profile *domain.RequestProfile, enrichment map[string]any) float64 {
	type check struct {
		needed bool
		served bool
		points float64
	}
	checks := []check{
		{profile.Medical.Dementia, flag(entity.ServesDementia), 7},
		{profile.Medical.Nursing, flag(entity.CareNursing) && flag(entity.LicensedNursing), 7},
		{profile.Medical.MentalHealth, flag(entity.ServesMentalHealth), 4},
		{profile.Medical.PhysicalDisability, flag(entity.ServesPhysicalDisability), 4},
		{profile.Medical.LearningDisability, flag(entity.ServesLearningDisability), 3},
	}

	applicable, earned := 0.0, 0.0
	for _, c := range checks {
		if !c.needed {
			continue
		}
		applicable += c.points
		if c.served {
			earned += c.points
		}
	}

	// Named conditions are matched against the enriched specialism list.
	if len(profile.Medical.Conditions) > 0 {
		perCondition := 2.0
		specialisms := extract.List(extract.Nested(enrichment, nil, "regulator", "specialisms"))
		for _, cond := range profile.Medical.Conditions {
			applicable += perCondition
			if containsFold(specialisms, cond) {
				earned += perCondition
			}
		}
	}

	if applicable == 0 {
		return 1
	}
	return extract.Clamp(earned/applicable, 0, 1)
}

func flag(b *bool) bool { return b != nil && *b }

// containsFold reports whether any list entry contains needle
// case-insensitively.
func containsFold(list []any, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range list {
		if strings.Contains(strings.ToLower(extract.String(v, "")), needle) {
			return true
		}
	}
	return false
}
