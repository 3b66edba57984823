package postgres

import "time"

type seasonTotalsTableModel struct {
	Season     int       `db:"season"`
	TotalGoals int       `db:"total_goals"`
	TotalGames int       `db:"total_games"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type seasonTotalsInsertModel struct {
	Season     int `db:"season"`
	TotalGoals int `db:"total_goals"`
	TotalGames int `db:"total_games"`
}
