package carematch

import (
	"github.com/carelens/carematch/internal/domain"
)

// Re-exported engine types. The engine's data model lives in internal/domain
// so the usecase packages can share it; these aliases are the public surface.
type (
	// AuthoritativeRecord is one facility per the primary regulator dataset.
	AuthoritativeRecord = domain.AuthoritativeRecord
	// AuxiliaryRecord is one facility per the secondary directory source.
	AuxiliaryRecord = domain.AuxiliaryRecord
	// FusedEntity is the merged view of one facility.
	FusedEntity = domain.FusedEntity
	// FusionStats summarizes one batch fusion run.
	FusionStats = domain.FusionStats
	// MatchStrategy identifies the resolver step that linked a record.
	MatchStrategy = domain.MatchStrategy
	// RequestProfile is one user's structured requirements.
	RequestProfile = domain.RequestProfile
	// LocationPreference is the profile's location block.
	LocationPreference = domain.LocationPreference
	// BudgetBand is the profile's weekly fee band.
	BudgetBand = domain.BudgetBand
	// MedicalNeeds is the profile's medical requirements block.
	MedicalNeeds = domain.MedicalNeeds
	// SafetyNeeds is the profile's safety requirements block.
	SafetyNeeds = domain.SafetyNeeds
	// Timeline is the profile's move-in horizon.
	Timeline = domain.Timeline
	// RankedPriority is one entry of the user's priority ranking.
	RankedPriority = domain.RankedPriority
	// Enrichment is optional external data keyed by entity identifier.
	Enrichment = domain.Enrichment
	// ScoreCard is the scoring outcome for one entity.
	ScoreCard = domain.ScoreCard
	// Winner names the best entity for one category.
	Winner = domain.Winner
	// SelectionResult is the diversity-constrained top-K outcome.
	SelectionResult = domain.SelectionResult
)

// Match strategies.
const (
	StrategyNone         = domain.StrategyNone
	StrategyNamePostcode = domain.StrategyNamePostcode
	StrategyNameCity     = domain.StrategyNameCity
	StrategyFuzzyName    = domain.StrategyFuzzyName
	StrategyPhone        = domain.StrategyPhone
)

// Sentinel errors.
var (
	ErrInvalidWeightConfig = domain.ErrInvalidWeightConfig
	ErrUnknownCategory     = domain.ErrUnknownCategory
	ErrInvalidProfile      = domain.ErrInvalidProfile
	ErrNoScoreCards        = domain.ErrNoScoreCards
)
