package adjustment

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Engine rescales raw goal totals with a FactorSet. It holds no state
// between calls.
type Engine struct {
	workers int
}

func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Engine{workers: workers}
}

// Adjust applies the factor of each season to the player's raw goals. The
// career total is the rounded sum of unrounded contributions, added in
// ascending season order.
func (e *Engine) Adjust(player PlayerGoals, factors FactorSet) (AdjustedPlayerTotal, error) {
	if len(factors.Factors) == 0 {
		return AdjustedPlayerTotal{}, ErrIncompleteFactors
	}

	rows := append([]PlayerSeasonGoals(nil), player.Seasons...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Season < rows[j].Season })

	out := AdjustedPlayerTotal{
		PlayerID:  player.PlayerID,
		Name:      player.Name,
		PerSeason: make([]SeasonContribution, 0, len(rows)),
	}

	var exact float64
	for i, row := range rows {
		if row.PlayerID != player.PlayerID {
			return AdjustedPlayerTotal{}, fmt.Errorf("%w: player=%s row_player=%s season=%d", ErrForeignPlayerSeason, player.PlayerID, row.PlayerID, row.Season)
		}
		if i > 0 && rows[i-1].Season == row.Season {
			return AdjustedPlayerTotal{}, fmt.Errorf("%w: player=%s season=%d", ErrDuplicatePlayerSeason, player.PlayerID, row.Season)
		}
		if row.Goals < 0 {
			return AdjustedPlayerTotal{}, fmt.Errorf("%w: player=%s season=%d goals=%d", ErrNegativeGoals, player.PlayerID, row.Season, row.Goals)
		}

		factor, ok := factors.Factor(row.Season)
		if !ok {
			return AdjustedPlayerTotal{}, &UnknownSeasonFactorError{PlayerID: player.PlayerID, Season: row.Season}
		}

		contribution := float64(row.Goals) * factor
		exact += contribution
		out.RawCareerTotal += row.Goals
		out.PerSeason = append(out.PerSeason, SeasonContribution{
			Season:   row.Season,
			RawGoals: row.Goals,
			Factor:   factor,
			Adjusted: contribution,
		})
	}

	out.AdjustedCareerExact = exact
	out.AdjustedCareerTotal = roundGoals(exact)
	return out, nil
}

// AdjustAll adjusts every player on a bounded worker pool and returns the
// results in input order. The first failing player, in input order, aborts
// the batch.
func (e *Engine) AdjustAll(players []PlayerGoals, factors FactorSet) ([]AdjustedPlayerTotal, error) {
	if err := factors.Validate(); err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return []AdjustedPlayerTotal{}, nil
	}

	results := make([]AdjustedPlayerTotal, len(players))
	errs := make([]error, len(players))

	workerCount := e.workers
	if workerCount > len(players) {
		workerCount = len(players)
	}
	if workerCount <= 1 {
		for i := range players {
			results[i], errs[i] = e.Adjust(players[i], factors)
		}
		return collect(results, errs)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create adjustment worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := range players {
		idx := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[idx], errs[idx] = e.Adjust(players[idx], factors)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit player to adjustment pool: %w", err)
		}
	}
	workers.Wait()

	return collect(results, errs)
}

func collect(results []AdjustedPlayerTotal, errs []error) ([]AdjustedPlayerTotal, error) {
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
