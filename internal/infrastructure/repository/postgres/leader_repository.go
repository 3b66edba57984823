package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	qb "github.com/riskibarqy/adjusted-goals/internal/platform/querybuilder"
)

type LeaderRepository struct {
	db *sqlx.DB
}

func NewLeaderRepository(db *sqlx.DB) *LeaderRepository {
	return &LeaderRepository{db: db}
}

// ReplaceLeaders swaps the stored leader list in one transaction, keeping the
// given order through the position column.
func (r *LeaderRepository) ReplaceLeaders(ctx context.Context, items []leader.Leader) error {
	rows := make([]goalLeaderTableModel, 0, len(items))
	for i, item := range items {
		topSeasons := make(pq.Int64Array, 0, len(item.TopSeasons))
		for _, s := range item.TopSeasons {
			topSeasons = append(topSeasons, int64(s))
		}
		rows = append(rows, goalLeaderTableModel{
			LeaderKey:   item.Key(),
			PlayerID:    item.PlayerID,
			Name:        strings.TrimSpace(item.Name),
			URL:         item.URL,
			CareerGoals: item.CareerGoals,
			Source:      string(item.Source),
			TopSeasons:  topSeasons,
			Position:    i,
		})
	}

	return withTx(ctx, r.db, "replace goal leaders", func(tx *sqlx.Tx) error {
		clearQuery, clearArgs, err := qb.DeleteFrom("goal_leaders").ToSQL()
		if err != nil {
			return fmt.Errorf("build clear goal leaders query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear goal leaders: %w", err)
		}

		for _, chunk := range chunks(rows, insertChunkSize) {
			query, args, err := qb.InsertModels("goal_leaders", chunk, "")
			if err != nil {
				return fmt.Errorf("build insert goal leaders query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert goal leaders: %w", err)
			}
		}
		return nil
	})
}

func (r *LeaderRepository) ListLeaders(ctx context.Context) ([]leader.Leader, error) {
	cols, err := qb.Columns(goalLeaderTableModel{})
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select(cols...).From("goal_leaders").OrderBy("position").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list goal leaders query: %w", err)
	}

	var rows []goalLeaderTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goal leaders: %w", err)
	}

	out := make([]leader.Leader, 0, len(rows))
	for _, row := range rows {
		var topSeasons []int
		for _, s := range row.TopSeasons {
			topSeasons = append(topSeasons, int(s))
		}
		out = append(out, leader.Leader{
			PlayerID:    row.PlayerID,
			Name:        row.Name,
			URL:         row.URL,
			CareerGoals: row.CareerGoals,
			Source:      leader.Source(row.Source),
			TopSeasons:  topSeasons,
		})
	}
	return out, nil
}
