package postgres

import "github.com/lib/pq"

type goalLeaderTableModel struct {
	LeaderKey   string        `db:"leader_key"`
	PlayerID    string        `db:"player_id"`
	Name        string        `db:"name"`
	URL         string        `db:"url"`
	CareerGoals int           `db:"career_goals"`
	Source      string        `db:"source"`
	TopSeasons  pq.Int64Array `db:"top_seasons"`
	Position    int           `db:"position"`
}
