package cache

import (
	"context"
	"fmt"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	basecache "github.com/riskibarqy/adjusted-goals/internal/platform/cache"
)

const seasonTotalsPrefix = "season:totals:"

// SeasonRepository is a read-through cache in front of another season store.
type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store[[]season.Totals]
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store[[]season.Totals]) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) UpsertTotals(ctx context.Context, items []season.Totals) error {
	if err := r.next.UpsertTotals(ctx, items); err != nil {
		return err
	}
	r.cache.Invalidate(ctx, seasonTotalsPrefix)
	return nil
}

func (r *SeasonRepository) ListTotals(ctx context.Context, from, to int) ([]season.Totals, error) {
	key := fmt.Sprintf("%s%d:%d", seasonTotalsPrefix, from, to)
	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]season.Totals, error) {
		return r.next.ListTotals(ctx, from, to)
	})
	if err != nil {
		return nil, err
	}
	return append([]season.Totals(nil), items...), nil
}
