package resolve

import (
	"go.uber.org/zap"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/normalize"
)

// FuzzyThreshold is the minimum name similarity accepted by the same-postcode
// fuzzy step. Empirically chosen; kept as-is for behavioral parity.
const FuzzyThreshold = 0.8

// Resolver links one authoritative record to at most one auxiliary record.
type Resolver struct {
	idx    *Index
	logger *zap.Logger
}

// New creates a resolver over a prebuilt index.
func New(idx *Index, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{idx: idx, logger: logger}
}

// Resolve runs the matching cascade. The first strategy to produce a result
// wins. A nil result is the routine no-match outcome, not an error.
func (r *Resolver) Resolve(auth *domain.AuthoritativeRecord) (*domain.AuxiliaryRecord, domain.MatchStrategy) {
	name := normalize.Text(auth.Name)
	postcode := normalize.Postcode(auth.Postcode)
	city := normalize.Text(auth.City)
	phone := normalize.Phone(auth.Phone)

	if name != "" && postcode != "" {
		if rec, ok := r.idx.byNamePostcode[name+keySep+postcode]; ok {
			return rec, domain.StrategyNamePostcode
		}
	}

	if name != "" && city != "" {
		if rec, ok := r.idx.byNameCity[name+keySep+city]; ok {
			return rec, domain.StrategyNameCity
		}
	}

	if rec := r.fuzzyByPostcode(auth.Name, postcode); rec != nil {
		return rec, domain.StrategyFuzzyName
	}

	if phone != "" {
		if rec, ok := r.idx.byPhone[phone]; ok {
			return rec, domain.StrategyPhone
		}
	}

	r.logger.Debug("no auxiliary match",
		zap.String("id", auth.ID),
		zap.String("name", auth.Name),
	)
	return nil, domain.StrategyNone
}

// fuzzyByPostcode scores every auxiliary record sharing the postcode and
// accepts the best candidate at or above the threshold. Earlier candidates
// win score ties, keeping the result deterministic for a given input order.
func (r *Resolver) fuzzyByPostcode(name, postcode string) *domain.AuxiliaryRecord {
	if postcode == "" {
		return nil
	}
	var best *domain.AuxiliaryRecord
	bestScore := 0.0
	for _, cand := range r.idx.byPostcode[postcode] {
		if score := NameSimilarity(name, cand.Name); score > bestScore {
			best, bestScore = cand, score
		}
	}
	if bestScore >= FuzzyThreshold {
		return best
	}
	return nil
}
