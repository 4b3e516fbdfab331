package domain

// RequestProfile is one user's structured requirements. Read-only input to
// the weight engine and every calculator.
type RequestProfile struct {
	Location   LocationPreference `validate:"required"`
	Budget     BudgetBand
	Medical    MedicalNeeds
	Safety     SafetyNeeds
	Timeline   Timeline
	CareType   string           `validate:"omitempty,oneof=residential nursing"`
	Priorities []RankedPriority `validate:"dive"`
}

// LocationPreference is where the user wants care, with an optional
// coordinate anchor for distance scoring.
type LocationPreference struct {
	City          string
	Postcode      string
	Latitude      *float64 `validate:"omitempty,min=-90,max=90"`
	Longitude     *float64 `validate:"omitempty,min=-180,max=180"`
	MaxDistanceKm float64  `validate:"min=0"`
}

// BudgetBand is the user's weekly fee band.
type BudgetBand struct {
	WeeklyMin     float64 `validate:"min=0"`
	WeeklyMax     float64 `validate:"min=0,gtefield=WeeklyMin"`
	FundingSource string  `validate:"omitempty,oneof=self local_authority nhs"`
}

// MedicalNeeds captures the medical requirements the facility must serve.
type MedicalNeeds struct {
	Dementia           bool
	Nursing            bool
	PhysicalDisability bool
	MentalHealth       bool
	LearningDisability bool
	Bariatric          bool
	Palliative         bool
	Conditions         []string
}

// SafetyNeeds captures safety-related requirements.
type SafetyNeeds struct {
	SafeguardingConcern bool
	FallsRisk           bool
	WanderRisk          bool
}

// Timeline captures how soon the placement is needed.
type Timeline struct {
	MoveInWeeks int `validate:"min=0"`
}

// Urgent reports whether the move-in horizon is four weeks or less.
func (t Timeline) Urgent() bool {
	return t.MoveInWeeks > 0 && t.MoveInWeeks <= 4
}

// RankedPriority is one entry of the user's explicit priority ranking.
type RankedPriority struct {
	Category string  `validate:"required"`
	Weight   float64 `validate:"gt=0"`
}
