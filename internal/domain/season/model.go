package season

import "fmt"

// Totals is the raw league-wide scoring line of one season as retrieved
// from the stats provider.
type Totals struct {
	Season     int `validate:"gte=1900,lte=9999"`
	TotalGoals int `validate:"gte=0"`
	TotalGames int `validate:"gte=0"`
}

// Record is a validated season with its goals-per-game rate.
type Record struct {
	Season       int
	TotalGoals   int
	TotalGames   int
	GoalsPerGame float64
}

func NewRecord(t Totals) (Record, error) {
	if t.TotalGames <= 0 {
		return Record{}, &MissingSeasonDataError{Season: t.Season, Reason: "no games recorded"}
	}
	if t.TotalGoals < 0 {
		return Record{}, fmt.Errorf("%w: season=%s total_goals=%d", ErrInvalidTotals, Label(t.Season), t.TotalGoals)
	}

	return Record{
		Season:       t.Season,
		TotalGoals:   t.TotalGoals,
		TotalGames:   t.TotalGames,
		GoalsPerGame: float64(t.TotalGoals) / float64(t.TotalGames),
	}, nil
}

func (r Record) Totals() Totals {
	return Totals{Season: r.Season, TotalGoals: r.TotalGoals, TotalGames: r.TotalGames}
}

// Range is an inclusive span of seasons. Cancelled seasons (e.g. the
// 2004/05 lockout) are not requested and never expected to carry data.
type Range struct {
	From      int
	To        int
	Cancelled []int
}

func (r Range) Validate() error {
	if r.From <= 0 || r.To <= 0 {
		return fmt.Errorf("%w: from=%d to=%d", ErrInvalidRange, r.From, r.To)
	}
	if r.From > r.To {
		return fmt.Errorf("%w: from=%d is after to=%d", ErrInvalidRange, r.From, r.To)
	}
	return nil
}

// Seasons lists the requested seasons in ascending order.
func (r Range) Seasons() []int {
	if r.From > r.To {
		return nil
	}
	skip := make(map[int]struct{}, len(r.Cancelled))
	for _, s := range r.Cancelled {
		skip[s] = struct{}{}
	}

	out := make([]int, 0, r.To-r.From+1)
	for s := r.From; s <= r.To; s++ {
		if _, ok := skip[s]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r Range) Contains(s int) bool {
	if s < r.From || s > r.To {
		return false
	}
	for _, c := range r.Cancelled {
		if c == s {
			return false
		}
	}
	return true
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", Label(r.From), Label(r.To))
}
