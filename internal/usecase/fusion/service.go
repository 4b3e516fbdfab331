// Package fusion merges authoritative and auxiliary records into fused
// entities under the static field-priority table in fields.go.
package fusion

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/metrics"
	"github.com/carelens/carematch/internal/usecase/resolve"
)

// Service performs batch fusion of the two datasets.
type Service struct {
	logger *zap.Logger
}

// New creates a fusion service.
func New(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Merge combines one authoritative record with an optional auxiliary record.
// A nil auxiliary yields a copy of the authoritative fields unchanged.
func Merge(auth *domain.AuthoritativeRecord, aux *domain.AuxiliaryRecord, strategy domain.MatchStrategy) domain.FusedEntity {
	fused := domain.FusedEntity{AuthoritativeRecord: *auth}
	if aux == nil {
		return fused
	}

	fused.Matched = true
	fused.Strategy = strategy

	if len(aux.Extra) > 0 {
		fused.Extra = make(map[string]any, len(aux.Extra))
		for k, v := range aux.Extra {
			fused.Extra[k] = v
		}
	}

	for _, rule := range mergeRules {
		if !rule.auxPresent(aux) {
			continue
		}
		switch rule.class {
		case classPreferred:
			rule.copyValue(&fused, aux)
		case classCritical, classFallback:
			if !rule.authPresent(&fused) {
				rule.copyValue(&fused, aux)
			}
		}
	}

	return fused
}

// Fuse resolves and merges a full batch. Unmatched records are a routine
// outcome and appear in the stats, not in the error path.
func (s *Service) Fuse(authoritative []domain.AuthoritativeRecord, auxiliary []domain.AuxiliaryRecord) ([]domain.FusedEntity, domain.FusionStats) {
	idx := resolve.BuildIndex(auxiliary)
	resolver := resolve.New(idx, s.logger)

	stats := domain.FusionStats{
		RunID:      uuid.NewString(),
		Total:      len(authoritative),
		ByStrategy: make(map[string]int),
	}

	entities := make([]domain.FusedEntity, 0, len(authoritative))
	for i := range authoritative {
		auth := &authoritative[i]
		aux, strategy := resolver.Resolve(auth)
		entities = append(entities, Merge(auth, aux, strategy))

		if aux == nil {
			stats.Unmatched++
			metrics.FusionUnmatchedTotal.Inc()
			continue
		}
		stats.Matched++
		stats.ByStrategy[strategy.String()]++
		metrics.FusionMatchedTotal.WithLabelValues(strategy.String()).Inc()
	}

	s.logger.Info("fusion run complete",
		zap.String("run_id", stats.RunID),
		zap.Int("total", stats.Total),
		zap.Int("matched", stats.Matched),
		zap.Int("unmatched", stats.Unmatched),
	)

	return entities, stats
}
