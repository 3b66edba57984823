package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

func TestSeasonRepository_ListIsSortedAndBounded(t *testing.T) {
	t.Parallel()

	repo := NewSeasonRepository([]season.Totals{
		{Season: 1990, TotalGoals: 7000, TotalGames: 800},
		{Season: 1970, TotalGoals: 5000, TotalGames: 700},
	})
	if err := repo.UpsertTotals(context.Background(), []season.Totals{{Season: 1980, TotalGoals: 7000, TotalGames: 700}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.ListTotals(context.Background(), 1975, 1995)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Season != 1980 || got[1].Season != 1990 {
		t.Fatalf("unexpected totals %+v", got)
	}
}

func TestAdjustmentRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAdjustmentRepository()

	if _, found, _ := repo.GetFactors(ctx); found {
		t.Fatalf("expected no factors before save")
	}

	set := adjustment.FactorSet{Policy: adjustment.RangeAverage(), Baseline: 6, Factors: map[int]float64{1980: 1}}
	if err := repo.SaveFactors(ctx, set); err != nil {
		t.Fatalf("save: %v", err)
	}
	set.Factors[1980] = 99

	got, found, err := repo.GetFactors(ctx)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Factors[1980] != 1 {
		t.Fatalf("stored factors were mutated through caller map: %+v", got.Factors)
	}
}

func TestLeaderRepository_ReplaceOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLeaderRepository([]leader.Leader{{PlayerID: "1"}})
	if err := repo.ReplaceLeaders(ctx, []leader.Leader{{PlayerID: "2"}, {PlayerID: "3"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.ListLeaders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].PlayerID != "2" {
		t.Fatalf("unexpected leaders %+v", got)
	}
}
