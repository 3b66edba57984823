package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	qb "github.com/riskibarqy/adjusted-goals/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) UpsertTotals(ctx context.Context, items []season.Totals) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]seasonTotalsInsertModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, seasonTotalsInsertModel{
			Season:     item.Season,
			TotalGoals: item.TotalGoals,
			TotalGames: item.TotalGames,
		})
	}

	suffix := "ON CONFLICT (season) DO UPDATE SET\n    " +
		excludedSet("total_goals", "total_games") +
		",\n    updated_at = NOW()"

	return withTx(ctx, r.db, "upsert season totals", func(tx *sqlx.Tx) error {
		for _, chunk := range chunks(rows, insertChunkSize) {
			query, args, err := qb.InsertModels("season_totals", chunk, suffix)
			if err != nil {
				return fmt.Errorf("build upsert season totals query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("upsert season totals: %w", err)
			}
		}
		return nil
	})
}

func (r *SeasonRepository) ListTotals(ctx context.Context, from, to int) ([]season.Totals, error) {
	query, args, err := qb.Select("season", "total_goals", "total_games", "created_at", "updated_at").
		From("season_totals").
		Where(qb.Between("season", from, to)).
		OrderBy("season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season totals query: %w", err)
	}

	var rows []seasonTotalsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season totals: %w", err)
	}

	out := make([]season.Totals, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Totals{
			Season:     row.Season,
			TotalGoals: row.TotalGoals,
			TotalGames: row.TotalGames,
		})
	}
	return out, nil
}
