package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
)

type AdjustmentRepository struct {
	mu       sync.RWMutex
	factors  adjustment.FactorSet
	hasSet   bool
	adjusted []adjustment.AdjustedPlayerTotal
}

func NewAdjustmentRepository() *AdjustmentRepository {
	return &AdjustmentRepository{}
}

func (r *AdjustmentRepository) SaveFactors(_ context.Context, factors adjustment.FactorSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	factors.Factors = maps.Clone(factors.Factors)
	r.factors = factors
	r.hasSet = true
	return nil
}

func (r *AdjustmentRepository) GetFactors(_ context.Context) (adjustment.FactorSet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasSet {
		return adjustment.FactorSet{}, false, nil
	}
	out := r.factors
	out.Factors = maps.Clone(r.factors.Factors)
	return out, true, nil
}

func (r *AdjustmentRepository) ReplaceAdjustedTotals(_ context.Context, items []adjustment.AdjustedPlayerTotal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.adjusted = cloneAdjusted(items)
	return nil
}

func (r *AdjustmentRepository) ListAdjustedTotals(_ context.Context) ([]adjustment.AdjustedPlayerTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneAdjusted(r.adjusted), nil
}

func cloneAdjusted(items []adjustment.AdjustedPlayerTotal) []adjustment.AdjustedPlayerTotal {
	out := make([]adjustment.AdjustedPlayerTotal, 0, len(items))
	for _, item := range items {
		item.PerSeason = append([]adjustment.SeasonContribution(nil), item.PerSeason...)
		out = append(out, item)
	}
	return out
}
