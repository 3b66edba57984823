package leader

import "context"

type Source string

const (
	SourceCareer Source = "career"
	SourceYearly Source = "yearly"
)

// Leader is a goal scorer whose career is going to be adjusted.
type Leader struct {
	PlayerID    string
	Name        string
	URL         string
	CareerGoals int
	Source      Source
	// TopSeasons lists the seasons the player finished among the yearly top.
	TopSeasons []int
}

// Key is the stable identity used to deduplicate leaders.
func (l Leader) Key() string {
	if l.PlayerID != "" {
		return l.PlayerID
	}
	return l.URL
}

// SeasonGoals is one player's goal count in one season, as returned by a
// per-season scorer listing.
type SeasonGoals struct {
	PlayerID string
	Name     string
	URL      string
	Season   int
	Goals    int
}

type Repository interface {
	ReplaceLeaders(ctx context.Context, items []Leader) error
	ListLeaders(ctx context.Context) ([]Leader, error)
}
