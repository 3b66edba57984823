package jsonfile

import (
	"context"

	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
)

type LeaderRepository struct {
	store *Store
}

func NewLeaderRepository(store *Store) *LeaderRepository {
	return &LeaderRepository{store: store}
}

func (r *LeaderRepository) ReplaceLeaders(_ context.Context, items []leader.Leader) error {
	rows := make([]leaderFileModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, leaderFileModel{
			PlayerID:    item.PlayerID,
			Name:        item.Name,
			URL:         item.URL,
			CareerGoals: item.CareerGoals,
			Source:      string(item.Source),
			TopSeasons:  append([]int(nil), item.TopSeasons...),
		})
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.writeJSON(LeadersFile, rows)
}

func (r *LeaderRepository) ListLeaders(_ context.Context) ([]leader.Leader, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rows []leaderFileModel
	if _, err := r.store.readJSON(LeadersFile, &rows); err != nil {
		return nil, err
	}

	out := make([]leader.Leader, 0, len(rows))
	for _, row := range rows {
		out = append(out, leader.Leader{
			PlayerID:    row.PlayerID,
			Name:        row.Name,
			URL:         row.URL,
			CareerGoals: row.CareerGoals,
			Source:      leader.Source(row.Source),
			TopSeasons:  row.TopSeasons,
		})
	}
	return out, nil
}
