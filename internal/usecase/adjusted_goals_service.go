package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	"github.com/riskibarqy/adjusted-goals/internal/platform/id"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
)

const defaultFetchWorkers = 4

type AdjustedGoalsConfig struct {
	Policy         adjustment.Policy
	CareerMinGoals int
	YearlyTopN     int
	FetchWorkers   int
}

type AdjustedGoalsService struct {
	stats      SeasonStatsProvider
	leaders    LeaderProvider
	players    PlayerGoalsProvider
	seasonRepo season.Repository
	leaderRepo leader.Repository
	adjustRepo adjustment.Repository
	engine     *adjustment.Engine
	runIDs     id.Generator
	cfg        AdjustedGoalsConfig
	logger     *logging.Logger
}

type AdjustedGoalsDeps struct {
	Stats      SeasonStatsProvider
	Leaders    LeaderProvider
	Players    PlayerGoalsProvider
	SeasonRepo season.Repository
	LeaderRepo leader.Repository
	AdjustRepo adjustment.Repository
	Engine     *adjustment.Engine
	RunIDs     id.Generator
	Logger     *logging.Logger
}

func NewAdjustedGoalsService(deps AdjustedGoalsDeps, cfg AdjustedGoalsConfig) *AdjustedGoalsService {
	if cfg.FetchWorkers < 1 {
		cfg.FetchWorkers = defaultFetchWorkers
	}
	engine := deps.Engine
	if engine == nil {
		engine = adjustment.NewEngine(0)
	}
	runIDs := deps.RunIDs
	if runIDs == nil {
		runIDs = id.NewRunIDGenerator()
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AdjustedGoalsService{
		stats:      deps.Stats,
		leaders:    deps.Leaders,
		players:    deps.Players,
		seasonRepo: deps.SeasonRepo,
		leaderRepo: deps.LeaderRepo,
		adjustRepo: deps.AdjustRepo,
		engine:     engine,
		runIDs:     runIDs,
		cfg:        cfg,
		logger:     logger,
	}
}

type SeasonRatesResult struct {
	Table   *season.RateTable
	Factors adjustment.FactorSet
}

// RetrieveSeasonRates fetches league totals for span, builds the rate table
// and stores the resulting adjustment factors.
func (s *AdjustedGoalsService) RetrieveSeasonRates(ctx context.Context, span season.Range) (SeasonRatesResult, error) {
	ctx, spanTrace := startUsecaseSpan(ctx, "usecase.AdjustedGoalsService.RetrieveSeasonRates",
		attribute.Int("season.from", span.From),
		attribute.Int("season.to", span.To),
	)
	defer spanTrace.End()

	if err := span.Validate(); err != nil {
		return SeasonRatesResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if s.stats == nil {
		return SeasonRatesResult{}, fmt.Errorf("%w: season stats provider is not configured", ErrDependencyUnavailable)
	}

	totals, err := s.stats.FetchSeasonRange(ctx, span)
	if err != nil {
		return SeasonRatesResult{}, fmt.Errorf("fetch season totals %s: %w", span, err)
	}
	if err := validateRecords(ctx, "season_totals", totals); err != nil {
		return SeasonRatesResult{}, err
	}

	table, err := season.NewRateTable(totals, span)
	if err != nil {
		return SeasonRatesResult{}, fmt.Errorf("build rate table %s: %w", span, err)
	}
	factors, err := adjustment.ComputeFactors(table, s.cfg.Policy)
	if err != nil {
		return SeasonRatesResult{}, fmt.Errorf("compute adjustment factors: %w", err)
	}

	// Totals and factors are written together only once both are known good.
	if err := s.seasonRepo.UpsertTotals(ctx, totals); err != nil {
		return SeasonRatesResult{}, fmt.Errorf("store season totals: %w", err)
	}
	if err := s.adjustRepo.SaveFactors(ctx, factors); err != nil {
		return SeasonRatesResult{}, fmt.Errorf("store adjustment factors: %w", err)
	}

	s.logger.InfoContext(ctx, "season rates retrieved",
		"range", span.String(),
		"seasons", table.Len(),
		"policy", factors.Policy.String(),
		"baseline", factors.Baseline,
	)
	return SeasonRatesResult{Table: table, Factors: factors}, nil
}

// RetrieveGoalLeaders collects the career leaders and the yearly top scorers
// of every season in span, merged into one list keyed by player.
func (s *AdjustedGoalsService) RetrieveGoalLeaders(ctx context.Context, span season.Range) ([]leader.Leader, error) {
	ctx, spanTrace := startUsecaseSpan(ctx, "usecase.AdjustedGoalsService.RetrieveGoalLeaders",
		attribute.Int("season.from", span.From),
		attribute.Int("season.to", span.To),
	)
	defer spanTrace.End()

	if err := span.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if s.leaders == nil {
		return nil, fmt.Errorf("%w: leader provider is not configured", ErrDependencyUnavailable)
	}

	careerRaw, err := s.leaders.FetchCareerLeaders(ctx, s.cfg.CareerMinGoals)
	if err != nil {
		return nil, fmt.Errorf("fetch career leaders: %w", err)
	}
	career := leader.SelectCareerLeaders(careerRaw, s.cfg.CareerMinGoals)

	var yearly []leader.Leader
	if s.cfg.YearlyTopN > 0 {
		rows, err := s.fetchSeasonScorers(ctx, span.Seasons())
		if err != nil {
			return nil, err
		}
		yearly = leader.SelectYearlyTop(rows, s.cfg.YearlyTopN)
	}

	merged := leader.Merge(career, yearly).List()
	if err := s.leaderRepo.ReplaceLeaders(ctx, merged); err != nil {
		return nil, fmt.Errorf("store goal leaders: %w", err)
	}

	s.logger.InfoContext(ctx, "goal leaders retrieved",
		"range", span.String(),
		"career", len(career),
		"yearly", len(yearly),
		"merged", len(merged),
	)
	return merged, nil
}

func (s *AdjustedGoalsService) fetchSeasonScorers(ctx context.Context, seasons []int) ([]leader.SeasonGoals, error) {
	perSeason := make([][]leader.SeasonGoals, len(seasons))

	p := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.FetchWorkers).
		WithCancelOnError().
		WithFirstError()
	for i, item := range seasons {
		p.Go(func(ctx context.Context) error {
			rows, err := s.leaders.FetchSeasonLeaders(ctx, item, s.cfg.YearlyTopN)
			if err != nil {
				return fmt.Errorf("fetch season leaders %s: %w", season.Label(item), err)
			}
			for j := range rows {
				rows[j].Season = item
			}
			perSeason[i] = rows
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	var out []leader.SeasonGoals
	for _, rows := range perSeason {
		out = append(out, rows...)
	}
	return out, nil
}

// AdjustGoalTotals adjusts every stored leader with the stored factor set.
// Player seasons outside span are not part of the adjusted total.
func (s *AdjustedGoalsService) AdjustGoalTotals(ctx context.Context, span season.Range) ([]adjustment.AdjustedPlayerTotal, error) {
	ctx, spanTrace := startUsecaseSpan(ctx, "usecase.AdjustedGoalsService.AdjustGoalTotals",
		attribute.Int("season.from", span.From),
		attribute.Int("season.to", span.To),
	)
	defer spanTrace.End()

	if err := span.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if s.players == nil {
		return nil, fmt.Errorf("%w: player goals provider is not configured", ErrDependencyUnavailable)
	}

	factors, found, err := s.adjustRepo.GetFactors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load adjustment factors: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: no adjustment factors stored, run the rates step first", ErrNotFound)
	}

	leaders, err := s.leaderRepo.ListLeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load goal leaders: %w", err)
	}
	if len(leaders) == 0 {
		return nil, fmt.Errorf("%w: no goal leaders stored, run the leaders step first", ErrNotFound)
	}

	players, err := s.fetchPlayerGoals(ctx, leaders, span)
	if err != nil {
		return nil, err
	}

	adjusted, err := s.engine.AdjustAll(players, factors)
	if err != nil {
		return nil, fmt.Errorf("adjust goal totals: %w", err)
	}
	sortAdjusted(adjusted)

	if err := s.adjustRepo.ReplaceAdjustedTotals(ctx, adjusted); err != nil {
		return nil, fmt.Errorf("store adjusted totals: %w", err)
	}

	s.logger.InfoContext(ctx, "goal totals adjusted",
		"range", span.String(),
		"players", len(adjusted),
		"policy", factors.Policy.String(),
	)
	return adjusted, nil
}

func (s *AdjustedGoalsService) fetchPlayerGoals(ctx context.Context, leaders []leader.Leader, span season.Range) ([]adjustment.PlayerGoals, error) {
	out := make([]adjustment.PlayerGoals, len(leaders))

	p := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(s.cfg.FetchWorkers).
		WithCancelOnError().
		WithFirstError()
	for i, item := range leaders {
		p.Go(func(ctx context.Context) error {
			seasons, err := s.players.FetchPlayerSeasons(ctx, item.PlayerID)
			if err != nil {
				return fmt.Errorf("fetch seasons for %s (%s): %w", item.Name, item.PlayerID, err)
			}
			if err := validateRecords(ctx, "player_seasons", seasons); err != nil {
				return fmt.Errorf("player %s: %w", item.PlayerID, err)
			}

			inRange := seasons[:0]
			for _, row := range seasons {
				if span.Contains(row.Season) {
					inRange = append(inRange, row)
				}
			}
			if dropped := len(seasons) - len(inRange); dropped > 0 {
				s.logger.DebugContext(ctx, "player seasons outside range skipped",
					"player_id", item.PlayerID,
					"dropped", dropped,
					"range", span.String(),
				)
			}

			out[i] = adjustment.PlayerGoals{
				PlayerID: item.PlayerID,
				Name:     item.Name,
				Seasons:  inRange,
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sortAdjusted orders by adjusted career total, highest first.
func sortAdjusted(items []adjustment.AdjustedPlayerTotal) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AdjustedCareerExact != items[j].AdjustedCareerExact {
			return items[i].AdjustedCareerExact > items[j].AdjustedCareerExact
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

type RunResult struct {
	RunID    string
	Steps    []Step
	Rates    *SeasonRatesResult
	Leaders  []leader.Leader
	Adjusted []adjustment.AdjustedPlayerTotal
	Duration time.Duration
}

// Run executes the selected steps in pipeline order and stops at the first
// failing step.
func (s *AdjustedGoalsService) Run(ctx context.Context, steps []Step, span season.Range) (RunResult, error) {
	runID, err := s.runIDs.NewID()
	if err != nil {
		return RunResult{}, fmt.Errorf("generate run id: %w", err)
	}
	ctx, spanTrace := startRunSpan(ctx, "usecase.AdjustedGoalsService.Run", attribute.String("run.id", runID))
	defer spanTrace.End()

	logger := s.logger.With("run_id", runID)
	start := time.Now()
	result := RunResult{RunID: runID, Steps: steps}

	logger.InfoContext(ctx, "adjusted goals run started", "range", span.String(), "steps", stepNames(steps))
	for _, step := range steps {
		stepStart := time.Now()
		switch step {
		case StepSeasonRates:
			rates, err := s.RetrieveSeasonRates(ctx, span)
			if err != nil {
				logger.ErrorContext(ctx, "step failed", "step", step.String(), "error", err)
				return result, err
			}
			result.Rates = &rates
		case StepGoalLeaders:
			leaders, err := s.RetrieveGoalLeaders(ctx, span)
			if err != nil {
				logger.ErrorContext(ctx, "step failed", "step", step.String(), "error", err)
				return result, err
			}
			result.Leaders = leaders
		case StepAdjustTotals:
			adjusted, err := s.AdjustGoalTotals(ctx, span)
			if err != nil {
				logger.ErrorContext(ctx, "step failed", "step", step.String(), "error", err)
				return result, err
			}
			result.Adjusted = adjusted
		default:
			return result, fmt.Errorf("%w: unknown step %d", ErrInvalidInput, int(step))
		}
		logger.InfoContext(ctx, "step finished", "step", step.String(), "duration", time.Since(stepStart))
	}

	result.Duration = time.Since(start)
	logger.InfoContext(ctx, "adjusted goals run finished", "duration", result.Duration)
	return result, nil
}

// AdjustedTotals returns the stored adjusted totals, at most limit of them
// when limit is positive.
func (s *AdjustedGoalsService) AdjustedTotals(ctx context.Context, limit int) ([]adjustment.AdjustedPlayerTotal, error) {
	items, err := s.adjustRepo.ListAdjustedTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load adjusted totals: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no adjusted totals stored, run the adjust step first", ErrNotFound)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// StoredRates rebuilds the rate table from the stored season totals.
func (s *AdjustedGoalsService) StoredRates(ctx context.Context, span season.Range) (*season.RateTable, error) {
	if err := span.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	totals, err := s.seasonRepo.ListTotals(ctx, span.From, span.To)
	if err != nil {
		return nil, fmt.Errorf("load season totals: %w", err)
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("%w: no season totals stored for %s, run the rates step first", ErrNotFound, span)
	}
	table, err := season.NewRateTable(totals, span)
	if err != nil {
		return nil, fmt.Errorf("build rate table %s: %w", span, err)
	}
	return table, nil
}

// StoredFactors returns the factor set written by the last rates step.
func (s *AdjustedGoalsService) StoredFactors(ctx context.Context) (adjustment.FactorSet, error) {
	factors, found, err := s.adjustRepo.GetFactors(ctx)
	if err != nil {
		return adjustment.FactorSet{}, fmt.Errorf("load adjustment factors: %w", err)
	}
	if !found {
		return adjustment.FactorSet{}, fmt.Errorf("%w: no adjustment factors stored, run the rates step first", ErrNotFound)
	}
	return factors, nil
}

func stepNames(steps []Step) []string {
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		out = append(out, step.String())
	}
	return out
}
