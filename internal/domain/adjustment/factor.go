package adjustment

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	"github.com/sourcegraph/conc/iter"
)

// FactorSet maps every season of a rate table to its adjustment factor and
// records the policy that defines what 1.0 means.
type FactorSet struct {
	Policy   Policy
	Baseline float64
	Factors  map[int]float64
}

func (f FactorSet) Factor(s int) (float64, bool) {
	v, ok := f.Factors[s]
	return v, ok
}

func (f FactorSet) Seasons() []int {
	out := make([]int, 0, len(f.Factors))
	for s := range f.Factors {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func (f FactorSet) Len() int {
	return len(f.Factors)
}

// Validate rejects factor sets that could not have come out of
// ComputeFactors, e.g. a hand-edited artifact.
func (f FactorSet) Validate() error {
	if len(f.Factors) == 0 {
		return fmt.Errorf("%w: no factors", ErrIncompleteFactors)
	}
	if err := f.Policy.Validate(); err != nil {
		return err
	}
	if f.Baseline <= 0 || math.IsNaN(f.Baseline) || math.IsInf(f.Baseline, 0) {
		return fmt.Errorf("%w: baseline=%g", ErrIncompleteFactors, f.Baseline)
	}
	for _, s := range f.Seasons() {
		v := f.Factors[s]
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: season=%s factor=%g", ErrIncompleteFactors, season.Label(s), v)
		}
	}
	return nil
}

type seasonFactor struct {
	season int
	factor float64
	err    error
}

// ComputeFactors derives factor(season) = baseline / goals_per_game for every
// season in the table. Either all seasons get a factor or none do.
func ComputeFactors(table *season.RateTable, policy Policy) (FactorSet, error) {
	if table == nil || table.Len() == 0 {
		return FactorSet{}, ErrEmptyTable
	}
	if err := policy.Validate(); err != nil {
		return FactorSet{}, err
	}

	records := table.Records()
	for _, record := range records {
		if !isUsableRate(record.GoalsPerGame) {
			return FactorSet{}, &DegenerateRateError{Season: record.Season, Rate: record.GoalsPerGame}
		}
	}

	baseline, err := policy.baseline(table)
	if err != nil {
		return FactorSet{}, err
	}
	if !isUsableRate(baseline) {
		return FactorSet{}, fmt.Errorf("%w: baseline=%g policy=%s", ErrDegenerateRate, baseline, policy)
	}

	computed := iter.Map(records, func(record *season.Record) seasonFactor {
		factor := roundTo(baseline/record.GoalsPerGame, FactorPrecision)
		if !isUsableRate(factor) {
			return seasonFactor{season: record.Season, err: &DegenerateRateError{Season: record.Season, Rate: record.GoalsPerGame}}
		}
		return seasonFactor{season: record.Season, factor: factor}
	})

	factors := make(map[int]float64, len(computed))
	for _, item := range computed {
		if item.err != nil {
			return FactorSet{}, item.err
		}
		factors[item.season] = item.factor
	}

	return FactorSet{
		Policy:   policy,
		Baseline: baseline,
		Factors:  factors,
	}, nil
}

func isUsableRate(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
