package domain

// MatchStrategy identifies which resolver cascade step linked an auxiliary
// record to an authoritative one.
type MatchStrategy int

const (
	// StrategyNone means no auxiliary record was linked.
	StrategyNone MatchStrategy = iota
	// StrategyNamePostcode is an exact normalized (name, postcode) hit.
	StrategyNamePostcode
	// StrategyNameCity is an exact normalized (name, city) hit.
	StrategyNameCity
	// StrategyFuzzyName is a same-postcode fuzzy name hit at or above threshold.
	StrategyFuzzyName
	// StrategyPhone is an exact normalized phone hit.
	StrategyPhone
)

// String returns the strategy label used in stats, logs, and metrics.
func (s MatchStrategy) String() string {
	switch s {
	case StrategyNamePostcode:
		return "name_postcode"
	case StrategyNameCity:
		return "name_city"
	case StrategyFuzzyName:
		return "fuzzy_name"
	case StrategyPhone:
		return "phone"
	default:
		return "none"
	}
}

// FusedEntity is one facility after merging the authoritative record with at
// most one auxiliary record. Regulator-critical fields always reflect the
// authoritative value when it exists; auxiliary data only fills gaps there.
// Directory-preferred fields (fees, reviews, amenities, beds, funding) take
// the auxiliary value whenever present. Immutable once built.
type FusedEntity struct {
	AuthoritativeRecord

	FeeResidentialFrom *float64
	FeeResidentialTo   *float64
	FeeNursingFrom     *float64
	FeeNursingTo       *float64

	ReviewScore *float64
	ReviewCount *int

	HasGarden  *bool
	HasEnsuite *bool
	HasWifi    *bool

	TotalBeds     *int
	AvailableBeds *int

	AcceptsLocalAuthority *bool
	AcceptsNHSFunding     *bool
	AcceptsSelfFunded     *bool

	Matched  bool
	Strategy MatchStrategy

	// Extra carries source-specific extension fields that have no named slot.
	Extra map[string]any
}

// FusionStats summarizes one batch fusion run for observability. It is a
// reporting side effect, not part of the merge contract.
type FusionStats struct {
	RunID      string
	Total      int
	Matched    int
	Unmatched  int
	ByStrategy map[string]int
}
