package jsonfile

type seasonTotalsFileModel struct {
	Season       int     `json:"season"`
	Label        string  `json:"label"`
	TotalGoals   int     `json:"total_goals"`
	TotalGames   int     `json:"total_games"`
	GoalsPerGame float64 `json:"goals_per_game"`
}

type policyFileModel struct {
	Kind   string `json:"kind"`
	Season int    `json:"season,omitempty"`
}

type factorSetFileModel struct {
	Policy   policyFileModel    `json:"policy"`
	Baseline float64            `json:"baseline"`
	Factors  map[string]float64 `json:"factors"`
}

type leaderFileModel struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	CareerGoals int    `json:"career_goals"`
	Source      string `json:"source"`
	TopSeasons  []int  `json:"top_seasons,omitempty"`
}

type seasonContributionFileModel struct {
	Season   int     `json:"season"`
	Goals    int     `json:"goals"`
	Factor   float64 `json:"factor"`
	Adjusted float64 `json:"adjusted"`
}

type adjustedTotalFileModel struct {
	PlayerID            string                        `json:"player_id"`
	Name                string                        `json:"name"`
	RawCareerTotal      int                           `json:"raw_career_total"`
	AdjustedCareerExact float64                       `json:"adjusted_career_exact"`
	AdjustedCareerTotal int                           `json:"adjusted_career_total"`
	PerSeason           []seasonContributionFileModel `json:"per_season"`
}
