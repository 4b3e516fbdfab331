package fusion

import "github.com/carelens/carematch/internal/domain"

// fieldClass is the merge classification of one auxiliary field.
type fieldClass int

const (
	// classCritical: regulator data is ground truth; auxiliary only fills gaps.
	classCritical fieldClass = iota
	// classPreferred: auxiliary value wins whenever present.
	classPreferred
	// classFallback: auxiliary fills in only when the regulator side is empty.
	classFallback
)

// mergeRule describes how one auxiliary field flows into the fused entity.
type mergeRule struct {
	name        string
	class       fieldClass
	auxPresent  func(*domain.AuxiliaryRecord) bool
	authPresent func(*domain.FusedEntity) bool
	copyValue   func(*domain.FusedEntity, *domain.AuxiliaryRecord)
}

// mergeRules is the static field classification table. It is the single
// source of truth for fusion semantics; nothing is inferred at runtime.
var mergeRules = []mergeRule{
	{
		name: "regulator_id", class: classCritical,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.RegulatorID != "" },
		authPresent: func(f *domain.FusedEntity) bool { return f.ID != "" },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.ID = a.RegulatorID },
	},
	{
		name: "name", class: classFallback,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.Name != "" },
		authPresent: func(f *domain.FusedEntity) bool { return f.Name != "" },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.Name = a.Name },
	},
	{
		name: "postcode", class: classFallback,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.Postcode != "" },
		authPresent: func(f *domain.FusedEntity) bool { return f.Postcode != "" },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.Postcode = a.Postcode },
	},
	{
		name: "city", class: classFallback,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.City != "" },
		authPresent: func(f *domain.FusedEntity) bool { return f.City != "" },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.City = a.City },
	},
	{
		name: "address_line", class: classFallback,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.AddressLine != "" },
		authPresent: func(f *domain.FusedEntity) bool { return f.AddressLine != "" },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.AddressLine = a.AddressLine },
	},
	{
		name: "phone", class: classFallback,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.Phone != "" },
		authPresent: func(f *domain.FusedEntity) bool { return f.Phone != "" },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.Phone = a.Phone },
	},
	{
		name: "dormant", class: classFallback,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.Dormant != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.Dormant != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.Dormant = a.Dormant },
	},
	{
		name: "fee_residential_from", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.FeeResidentialFrom != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.FeeResidentialFrom != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.FeeResidentialFrom = a.FeeResidentialFrom
		},
	},
	{
		name: "fee_residential_to", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.FeeResidentialTo != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.FeeResidentialTo != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.FeeResidentialTo = a.FeeResidentialTo
		},
	},
	{
		name: "fee_nursing_from", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.FeeNursingFrom != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.FeeNursingFrom != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.FeeNursingFrom = a.FeeNursingFrom
		},
	},
	{
		name: "fee_nursing_to", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.FeeNursingTo != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.FeeNursingTo != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.FeeNursingTo = a.FeeNursingTo
		},
	},
	{
		name: "review_score", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.ReviewScore != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.ReviewScore != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.ReviewScore = a.ReviewScore },
	},
	{
		name: "review_count", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.ReviewCount != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.ReviewCount != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.ReviewCount = a.ReviewCount },
	},
	{
		name: "has_garden", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.HasGarden != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.HasGarden != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.HasGarden = a.HasGarden },
	},
	{
		name: "has_ensuite", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.HasEnsuite != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.HasEnsuite != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.HasEnsuite = a.HasEnsuite },
	},
	{
		name: "has_wifi", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.HasWifi != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.HasWifi != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.HasWifi = a.HasWifi },
	},
	{
		name: "total_beds", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.TotalBeds != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.TotalBeds != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.TotalBeds = a.TotalBeds },
	},
	{
		name: "available_beds", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.AvailableBeds != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.AvailableBeds != nil },
		copyValue:   func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) { f.AvailableBeds = a.AvailableBeds },
	},
	{
		name: "accepts_local_authority", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.AcceptsLocalAuthority != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.AcceptsLocalAuthority != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.AcceptsLocalAuthority = a.AcceptsLocalAuthority
		},
	},
	{
		name: "accepts_nhs_funding", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.AcceptsNHSFunding != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.AcceptsNHSFunding != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.AcceptsNHSFunding = a.AcceptsNHSFunding
		},
	},
	{
		name: "accepts_self_funded", class: classPreferred,
		auxPresent:  func(a *domain.AuxiliaryRecord) bool { return a.AcceptsSelfFunded != nil },
		authPresent: func(f *domain.FusedEntity) bool { return f.AcceptsSelfFunded != nil },
		copyValue: func(f *domain.FusedEntity, a *domain.AuxiliaryRecord) {
			f.AcceptsSelfFunded = a.AcceptsSelfFunded
		},
	},
}
