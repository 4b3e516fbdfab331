package weights

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
)

// tightBudgetWeekly is the weekly fee ceiling under which the budget is
// considered tight and affordability gains weight.
const tightBudgetWeekly = 900

// rule is one conditional weight redistribution. Deltas within a rule sum to
// zero so the table total is preserved before the final renormalization.
type rule struct {
	name    string
	applies func(*domain.RequestProfile) bool
	deltas  map[category.Name]float64
}

var adjustmentRules = []rule{
	{
		name: "medical_focus",
		applies: func(p *domain.RequestProfile) bool {
			return p.Medical.Dementia || p.Medical.Nursing
		},
		deltas: map[category.Name]float64{
			category.MedicalFit: 6, category.Lifestyle: -3, category.Reputation: -3,
		},
	},
	{
		name: "tight_budget",
		applies: func(p *domain.RequestProfile) bool {
			return p.Budget.WeeklyMax > 0 && p.Budget.WeeklyMax < tightBudgetWeekly
		},
		deltas: map[category.Name]float64{
			category.Affordability: 6, category.CareQuality: -3, category.LocationFit: -3,
		},
	},
	{
		name: "urgent_timeline",
		applies: func(p *domain.RequestProfile) bool {
			return p.Timeline.Urgent()
		},
		deltas: map[category.Name]float64{
			category.Availability: 5, category.FinancialStability: -2, category.Lifestyle: -3,
		},
	},
	{
		name: "safeguarding_concern",
		applies: func(p *domain.RequestProfile) bool {
			return p.Safety.SafeguardingConcern
		},
		deltas: map[category.Name]float64{
			category.Safety: 5, category.Reputation: -3, category.Lifestyle: -2,
		},
	},
	{
		name: "mobility_needs",
		applies: func(p *domain.RequestProfile) bool {
			return p.Medical.Bariatric || p.Medical.PhysicalDisability
		},
		deltas: map[category.Name]float64{
			category.MedicalFit: 3, category.LocationFit: -3,
		},
	},
}
