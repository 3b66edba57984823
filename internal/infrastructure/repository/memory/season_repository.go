package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	items map[int]season.Totals
}

func NewSeasonRepository(totals []season.Totals) *SeasonRepository {
	items := make(map[int]season.Totals, len(totals))
	for _, t := range totals {
		items[t.Season] = t
	}
	return &SeasonRepository{items: items}
}

func (r *SeasonRepository) UpsertTotals(_ context.Context, items []season.Totals) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.items[item.Season] = item
	}
	return nil
}

func (r *SeasonRepository) ListTotals(_ context.Context, from, to int) ([]season.Totals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Totals, 0, len(r.items))
	for s, item := range r.items {
		if s < from || s > to {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}
