package adjustment

// PlayerSeasonGoals is one player's raw regular-season goal count.
type PlayerSeasonGoals struct {
	PlayerID string `validate:"required"`
	Season   int    `validate:"gte=1900,lte=9999"`
	Goals    int    `validate:"gte=0"`
}

// PlayerGoals is the engine input for a single player.
type PlayerGoals struct {
	PlayerID string
	Name     string
	Seasons  []PlayerSeasonGoals
}

type SeasonContribution struct {
	Season   int
	RawGoals int
	Factor   float64
	Adjusted float64
}

// AdjustedGoals is the contribution rounded for reporting.
func (c SeasonContribution) AdjustedGoals() int {
	return roundGoals(c.Adjusted)
}

// DisplayAdjusted is the contribution at presentation precision. Career
// totals are never summed from it.
func (c SeasonContribution) DisplayAdjusted() float64 {
	return roundTo(c.Adjusted, DisplayPrecision)
}

type AdjustedPlayerTotal struct {
	PlayerID            string
	Name                string
	RawCareerTotal      int
	AdjustedCareerExact float64
	AdjustedCareerTotal int
	PerSeason           []SeasonContribution
}
