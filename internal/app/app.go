package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/adjusted-goals/external/nhlstats"
	"github.com/riskibarqy/adjusted-goals/internal/config"
	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	cacherepo "github.com/riskibarqy/adjusted-goals/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/adjusted-goals/internal/infrastructure/repository/jsonfile"
	"github.com/riskibarqy/adjusted-goals/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/adjusted-goals/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/adjusted-goals/internal/platform/cache"
	"github.com/riskibarqy/adjusted-goals/internal/platform/id"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
	"github.com/riskibarqy/adjusted-goals/internal/usecase"
)

// Options adjusts how the app is assembled for a single invocation.
type Options struct {
	// DryRun keeps every artifact in memory.
	DryRun bool
}

type App struct {
	Config  config.Config
	Logger  *logging.Logger
	Service *usecase.AdjustedGoalsService

	closers []func() error
}

type repositories struct {
	seasons     season.Repository
	leaders     leader.Repository
	adjustments adjustment.Repository
	closer      func() error
}

func New(cfg config.Config, logger *logging.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	repos, err := newRepositories(cfg, logger, opts)
	if err != nil {
		return nil, err
	}

	client := nhlstats.NewClient(nhlstats.ClientConfig{
		BaseURL:           cfg.StatsBaseURL,
		Timeout:           cfg.StatsTimeout,
		MaxRetries:        cfg.StatsMaxRetries,
		RequestsPerMinute: cfg.StatsRequestsPerMinute,
		FetchWorkers:      cfg.StatsFetchWorkers,
		Logger:            logger,
		CircuitBreaker:    cfg.StatsCircuitBreaker(),
	})

	service := usecase.NewAdjustedGoalsService(usecase.AdjustedGoalsDeps{
		Stats:      client,
		Leaders:    client,
		Players:    client,
		SeasonRepo: repos.seasons,
		LeaderRepo: repos.leaders,
		AdjustRepo: repos.adjustments,
		Engine:     adjustment.NewEngine(cfg.AdjustWorkers),
		RunIDs:     id.NewRunIDGenerator(),
		Logger:     logger,
	}, usecase.AdjustedGoalsConfig{
		Policy:         cfg.ReferencePolicy,
		CareerMinGoals: cfg.CareerMinGoals,
		YearlyTopN:     cfg.YearlyTopN,
		FetchWorkers:   cfg.StatsFetchWorkers,
	})

	out := &App{
		Config:  cfg,
		Logger:  logger,
		Service: service,
	}
	if repos.closer != nil {
		out.closers = append(out.closers, repos.closer)
	}
	return out, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolveRange fills unset bounds from config. A zero or open-ended last
// season resolves to the most recent completed season at now; the season in
// progress has no final totals yet.
func ResolveRange(cfg config.Config, from, to int, now time.Time) (season.Range, error) {
	if from == 0 {
		from = cfg.FirstSeason
	}
	if to == 0 {
		to = cfg.LastSeason
	}
	if to == 0 || to == season.OpenEnd {
		to = season.Current(now) - 1
	}

	span := season.Range{
		From:      from,
		To:        to,
		Cancelled: append([]int(nil), cfg.CancelledSeasons...),
	}
	if err := span.Validate(); err != nil {
		return season.Range{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return span, nil
}

func newRepositories(cfg config.Config, logger *logging.Logger, opts Options) (repositories, error) {
	var repos repositories
	switch {
	case opts.DryRun:
		repos = repositories{
			seasons:     memory.NewSeasonRepository(nil),
			leaders:     memory.NewLeaderRepository(nil),
			adjustments: memory.NewAdjustmentRepository(),
		}
		logger.Info("dry run, results are kept in memory")
	case cfg.StoreBackend == config.StorePostgres:
		db, err := OpenDB(context.Background(), cfg)
		if err != nil {
			return repositories{}, err
		}
		repos = repositories{
			seasons:     postgres.NewSeasonRepository(db),
			leaders:     postgres.NewLeaderRepository(db),
			adjustments: postgres.NewAdjustmentRepository(db),
			closer:      db.Close,
		}
		logger.Info("using postgres store", "db", dbNameFromURL(cfg.DBURL))
	default:
		store := jsonfile.NewStore(cfg.ResultsDir)
		repos = repositories{
			seasons:     jsonfile.NewSeasonRepository(store),
			leaders:     jsonfile.NewLeaderRepository(store),
			adjustments: jsonfile.NewAdjustmentRepository(store),
		}
		logger.Info("using file store", "dir", store.Dir())
	}

	if cfg.CacheEnabled {
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, basecache.NewStore[[]season.Totals](cfg.CacheTTL))
	}
	return repos, nil
}
