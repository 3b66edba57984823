package postgres

type adjustmentFactorTableModel struct {
	Season       int     `db:"season"`
	Factor       float64 `db:"factor"`
	Baseline     float64 `db:"baseline"`
	PolicyKind   string  `db:"policy_kind"`
	PolicySeason int     `db:"policy_season"`
}

type adjustedTotalTableModel struct {
	PlayerID            string  `db:"player_id"`
	Name                string  `db:"name"`
	RawCareerTotal      int     `db:"raw_career_total"`
	AdjustedCareerExact float64 `db:"adjusted_career_exact"`
	AdjustedCareerTotal int     `db:"adjusted_career_total"`
	Position            int     `db:"position"`
}

type adjustedSeasonTableModel struct {
	PlayerID string  `db:"player_id"`
	Season   int     `db:"season"`
	RawGoals int     `db:"raw_goals"`
	Factor   float64 `db:"factor"`
	Adjusted float64 `db:"adjusted"`
}
