package nhlstats

// Stats REST envelopes. Only the fields the client reads are mapped.

type envelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type teamSummaryRow struct {
	TeamID       int64  `json:"teamId"`
	TeamFullName string `json:"teamFullName"`
	SeasonID     int64  `json:"seasonId"`
	GamesPlayed  int    `json:"gamesPlayed"`
	GoalsFor     int    `json:"goalsFor"`
}

type skaterSummaryRow struct {
	PlayerID       int64  `json:"playerId"`
	SkaterFullName string `json:"skaterFullName"`
	SeasonID       int64  `json:"seasonId"`
	GamesPlayed    int    `json:"gamesPlayed"`
	Goals          int    `json:"goals"`
}

type sortSpec struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}
