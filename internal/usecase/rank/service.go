// Package rank turns a batch of score cards into the diversity-constrained
// top-K selection plus per-category best-in-class winners.
package rank

import (
	"sort"

	"go.uber.org/zap"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/metrics"
	"github.com/carelens/carematch/internal/normalize"
)

// DefaultTopK is the shortlist size when the caller does not choose one.
const DefaultTopK = 5

// DefaultProviderCap bounds how many shortlist entries may share a provider.
const DefaultProviderCap = 1

// Service ranks score cards.
type Service struct {
	providerCap int
	logger      *zap.Logger
}

// New creates a selection service.
func New(providerCap int, logger *zap.Logger) *Service {
	if providerCap <= 0 {
		providerCap = DefaultProviderCap
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{providerCap: providerCap, logger: logger}
}

// Select ranks all cards by weighted total (entity ID breaks ties for
// determinism) and builds the top-K under the per-provider cap. When the cap
// would leave the shortlist under K, it is deliberately relaxed and the
// remainder filled with the next-best entities regardless of provider.
func (s *Service) Select(cards []domain.ScoreCard, k int) (domain.SelectionResult, error) {
	if len(cards) == 0 {
		return domain.SelectionResult{}, domain.ErrNoScoreCards
	}
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := make([]domain.ScoreCard, len(cards))
	copy(ranked, cards)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].WeightedTotal != ranked[j].WeightedTotal {
			return ranked[i].WeightedTotal > ranked[j].WeightedTotal
		}
		return ranked[i].Entity.ID < ranked[j].Entity.ID
	})

	result := domain.SelectionResult{
		CategoryWinners: categoryWinners(ranked),
	}

	topK, relaxed := s.pickTopK(ranked, k)
	result.TopK = topK
	result.CapRelaxed = relaxed
	if relaxed {
		metrics.SelectionCapRelaxedTotal.Inc()
		s.logger.Debug("provider cap relaxed to fill shortlist",
			zap.Int("k", k), zap.Int("cap", s.providerCap))
	}

	result.DistinctProviders, result.DistinctLocations = diversity(topK)
	return result, nil
}

// pickTopK greedily takes the highest-total cards under the provider cap,
// then relaxes the cap if needed to reach k.
func (s *Service) pickTopK(ranked []domain.ScoreCard, k int) ([]domain.ScoreCard, bool) {
	perProvider := make(map[string]int)
	taken := make([]domain.ScoreCard, 0, k)
	skipped := make([]domain.ScoreCard, 0)

	for _, card := range ranked {
		if len(taken) == k {
			break
		}
		key := providerKey(card)
		if perProvider[key] >= s.providerCap {
			skipped = append(skipped, card)
			continue
		}
		perProvider[key]++
		taken = append(taken, card)
	}

	if len(taken) >= k || len(skipped) == 0 {
		return taken, false
	}

	// Deliberate fallback: score-descending order among the skipped is
	// already guaranteed by the ranked input.
	for _, card := range skipped {
		if len(taken) == k {
			break
		}
		taken = append(taken, card)
	}
	return taken, true
}

// providerKey groups cards by provider; entities with no provider identifier
// are treated as their own provider.
func providerKey(card domain.ScoreCard) string {
	if card.Entity.ProviderID != "" {
		return card.Entity.ProviderID
	}
	return "entity:" + card.Entity.ID
}

// categoryWinners finds the best normalized score per category across the
// whole batch. Ranked input makes score ties resolve to the better total,
// then to the smaller entity ID.
func categoryWinners(ranked []domain.ScoreCard) map[string]domain.Winner {
	winners := make(map[string]domain.Winner)
	for _, card := range ranked {
		for cat, score := range card.Scores {
			best, ok := winners[cat]
			if !ok || score > best.Score {
				winners[cat] = domain.Winner{
					EntityID: card.Entity.ID,
					Name:     card.Entity.Name,
					Score:    score,
				}
			}
		}
	}
	return winners
}

func diversity(cards []domain.ScoreCard) (providers, locations int) {
	provSet := make(map[string]struct{})
	locSet := make(map[string]struct{})
	for _, card := range cards {
		provSet[providerKey(card)] = struct{}{}
		loc := normalize.Text(card.Entity.City)
		if loc == "" {
			loc = normalize.Postcode(card.Entity.Postcode)
		}
		if loc != "" {
			locSet[loc] = struct{}{}
		}
	}
	return len(provSet), len(locSet)
}
