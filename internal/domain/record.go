package domain

import "time"

// AuthoritativeRecord is one facility as published by the primary regulator.
// Its identifier is unique and stable for the lifetime of a load. Optional
// fields are pointers so that "absent" and "zero" stay distinguishable, which
// the fusion rules depend on.
type AuthoritativeRecord struct {
	ID           string
	Name         string
	ProviderID   string
	ProviderName string

	Latitude  *float64
	Longitude *float64

	AddressLine string
	City        string
	Region      string
	Postcode    string
	Phone       string

	// Regulator quality ratings: one overall plus five sub-ratings,
	// four-level scale (Outstanding, Good, Requires Improvement, Inadequate).
	OverallRating   *string
	RatingSafe      *string
	RatingEffective *string
	RatingCaring    *string
	RatingResponsive *string
	RatingWellLed   *string

	// Service-capability flags ("serves X population").
	ServesOlderPeople       *bool
	ServesDementia          *bool
	ServesPhysicalDisability *bool
	ServesMentalHealth      *bool
	ServesLearningDisability *bool

	// Care-type flags.
	CareResidential *bool
	CareNursing     *bool
	CareRespite     *bool

	// License flags.
	LicensedPersonalCare *bool
	LicensedNursing      *bool

	Dormant        *bool
	LastInspection *time.Time
}

// AuxiliaryRecord is a facility as scraped from the secondary directory
// source. RegulatorID is the cross-reference to the authoritative dataset;
// in practice it is almost always empty, which is why the resolver exists.
type AuxiliaryRecord struct {
	RegulatorID string

	Name        string
	Postcode    string
	City        string
	AddressLine string
	Phone       string

	// Weekly fees by care type.
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

	Dormant *bool

	// Extra carries scraped fields that have no named slot on the schema.
	Extra map[string]any
}

// FieldCount reports how many fields carry a value. Used as the
// data-richness tie-break when two auxiliary records collide on an index key.
func (r *AuxiliaryRecord) FieldCount() int {
	n := 0
	for _, s := range []string{r.RegulatorID, r.Name, r.Postcode, r.City, r.AddressLine, r.Phone} {
		if s != "" {
			n++
		}
	}
	for _, f := range []*float64{r.FeeResidentialFrom, r.FeeResidentialTo, r.FeeNursingFrom, r.FeeNursingTo, r.ReviewScore} {
		if f != nil {
			n++
		}
	}
	for _, i := range []*int{r.ReviewCount, r.TotalBeds, r.AvailableBeds} {
		if i != nil {
			n++
		}
	}
	for _, b := range []*bool{r.HasGarden, r.HasEnsuite, r.HasWifi, r.AcceptsLocalAuthority, r.AcceptsNHSFunding, r.AcceptsSelfFunded, r.Dormant} {
		if b != nil {
			n++
		}
	}
	return n + len(r.Extra)
}
