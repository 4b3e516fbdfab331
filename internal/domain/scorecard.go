package domain

// Enrichment is optional externally sourced supplementary data, keyed by
// entity identifier. Each value is an arbitrarily nested mapping that the
// calculators probe defensively. The engine never mutates it.
type Enrichment map[string]map[string]any

// For returns the enrichment slice for one entity, nil when absent.
func (e Enrichment) For(entityID string) map[string]any {
	if e == nil {
		return nil
	}
	return e[entityID]
}

// ScoreCard is the scoring outcome for one fused entity. Created fresh per
// scoring run and never mutated afterwards.
type ScoreCard struct {
	Entity *FusedEntity

	// Scores maps category name to its normalized score in [0, 1].
	Scores map[string]float64

	// Weights is the active weight mapping used (percent, sums to 100).
	Weights map[string]float64

	// RawTotal is the sum over categories of normalized score x max points.
	RawTotal float64

	// WeightedTotal is the sum of normalized score x weight percent.
	WeightedTotal float64

	// Percent is RawTotal as a fraction of the maximum attainable points.
	Percent float64

	// Warnings lists categories whose calculator failed and was scored 0.
	Warnings []string
}

// Winner names the highest-scoring entity for one category.
type Winner struct {
	EntityID string
	Name     string
	Score    float64
}

// SelectionResult is the diversity-constrained top-K outcome of a batch.
type SelectionResult struct {
	TopK []ScoreCard

	// CategoryWinners maps category name to its best entity, retained even
	// when that entity misses the top-K cut.
	CategoryWinners map[string]Winner

	// DistinctProviders and DistinctLocations are diversity metrics over TopK.
	DistinctProviders int
	DistinctLocations int

	// CapRelaxed reports that the per-provider cap had to be relaxed to
	// reach K entries.
	CapRelaxed bool
}
