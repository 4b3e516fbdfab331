package category

// Name is one evaluation axis contributing a bounded point allocation.
type Name string

// Evaluation categories.
const (
	CareQuality        Name = "care_quality"
	MedicalFit         Name = "medical_fit"
	Affordability      Name = "affordability"
	Safety             Name = "safety"
	LocationFit        Name = "location_fit"
	Reputation         Name = "reputation"
	Staffing           Name = "staffing"
	FinancialStability Name = "financial_stability"
	Lifestyle          Name = "lifestyle"
	Availability       Name = "availability"
)

// All lists every category in registration order.
func All() []Name {
	return []Name{
		CareQuality, MedicalFit, Affordability, Safety, LocationFit,
		Reputation, Staffing, FinancialStability, Lifestyle, Availability,
	}
}

// IsValid checks if the name is a known category.
func (n Name) IsValid() bool {
	for _, c := range All() {
		if n == c {
			return true
		}
	}
	return false
}
