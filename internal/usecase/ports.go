package usecase

import (
	"context"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

// SeasonStatsProvider returns league-wide regular-season totals.
type SeasonStatsProvider interface {
	FetchSeasonRange(ctx context.Context, span season.Range) ([]season.Totals, error)
}

type LeaderProvider interface {
	FetchCareerLeaders(ctx context.Context, minGoals int) ([]leader.Leader, error)
	FetchSeasonLeaders(ctx context.Context, s int, limit int) ([]leader.SeasonGoals, error)
}

type PlayerGoalsProvider interface {
	FetchPlayerSeasons(ctx context.Context, playerID string) ([]adjustment.PlayerSeasonGoals, error)
}
