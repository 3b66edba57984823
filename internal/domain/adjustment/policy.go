package adjustment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

type PolicyKind string

const (
	PolicyFixedSeason  PolicyKind = "fixed_season"
	PolicyRangeAverage PolicyKind = "range_average"
)

// Policy decides which scoring rate counts as factor 1.0.
type Policy struct {
	Kind   PolicyKind
	Season int
}

func FixedSeason(s int) Policy {
	return Policy{Kind: PolicyFixedSeason, Season: s}
}

func RangeAverage() Policy {
	return Policy{Kind: PolicyRangeAverage}
}

// ParsePolicy accepts "average", "range-average", "fixed:1980" or a bare
// starting year.
func ParsePolicy(raw string) (Policy, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", "average", "avg", "range-average", "range_average":
		return RangeAverage(), nil
	}

	value = strings.TrimPrefix(value, "fixed:")
	value = strings.TrimPrefix(value, "fixed_season:")
	year, err := strconv.Atoi(value)
	if err != nil {
		return Policy{}, fmt.Errorf("%w: %q, expected average or fixed:<season>", ErrInvalidPolicy, raw)
	}
	policy := FixedSeason(year)
	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

func (p Policy) Validate() error {
	switch p.Kind {
	case PolicyRangeAverage:
		return nil
	case PolicyFixedSeason:
		if p.Season <= 0 {
			return fmt.Errorf("%w: fixed season must be > 0, got %d", ErrInvalidPolicy, p.Season)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidPolicy, p.Kind)
	}
}

func (p Policy) String() string {
	if p.Kind == PolicyFixedSeason {
		return "fixed:" + strconv.Itoa(p.Season)
	}
	return string(p.Kind)
}

func (p Policy) baseline(table *season.RateTable) (float64, error) {
	switch p.Kind {
	case PolicyFixedSeason:
		rate, ok := table.Rate(p.Season)
		if !ok {
			return 0, &season.MissingSeasonDataError{Season: p.Season, Reason: "reference season outside table"}
		}
		return rate, nil
	case PolicyRangeAverage:
		var sum float64
		seasons := table.Seasons()
		for _, s := range seasons {
			rate, _ := table.Rate(s)
			sum += rate
		}
		return sum / float64(len(seasons)), nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidPolicy, p.Kind)
	}
}
