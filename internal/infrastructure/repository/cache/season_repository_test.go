package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	seasonmock "github.com/riskibarqy/adjusted-goals/internal/mocks/domain/season"
	basecache "github.com/riskibarqy/adjusted-goals/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestSeasonRepository_ListIsCachedUntilUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := seasonmock.NewRepository(t)
	first := []season.Totals{{Season: 1980, TotalGoals: 7000, TotalGames: 700}}
	second := []season.Totals{{Season: 1980, TotalGoals: 7100, TotalGames: 700}}

	next.On("ListTotals", mock.Anything, 1980, 1980).Return(first, nil).Once()
	next.On("UpsertTotals", mock.Anything, second).Return(nil).Once()
	next.On("ListTotals", mock.Anything, 1980, 1980).Return(second, nil).Once()

	repo := NewSeasonRepository(next, basecache.NewStore[[]season.Totals](time.Minute))

	for i := 0; i < 3; i++ {
		got, err := repo.ListTotals(ctx, 1980, 1980)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if got[0].TotalGoals != 7000 {
			t.Fatalf("unexpected cached totals %+v", got)
		}
	}

	if err := repo.UpsertTotals(ctx, second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.ListTotals(ctx, 1980, 1980)
	if err != nil {
		t.Fatalf("list after upsert: %v", err)
	}
	if got[0].TotalGoals != 7100 {
		t.Fatalf("expected refreshed totals, got %+v", got)
	}
}
