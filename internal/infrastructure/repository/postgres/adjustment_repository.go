package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	qb "github.com/riskibarqy/adjusted-goals/internal/platform/querybuilder"
)

type AdjustmentRepository struct {
	db *sqlx.DB
}

func NewAdjustmentRepository(db *sqlx.DB) *AdjustmentRepository {
	return &AdjustmentRepository{db: db}
}

// SaveFactors replaces the stored factor set. Policy and baseline are
// repeated on every row so a single table describes the whole set.
func (r *AdjustmentRepository) SaveFactors(ctx context.Context, factors adjustment.FactorSet) error {
	rows := make([]adjustmentFactorTableModel, 0, factors.Len())
	for _, s := range factors.Seasons() {
		rows = append(rows, adjustmentFactorTableModel{
			Season:       s,
			Factor:       factors.Factors[s],
			Baseline:     factors.Baseline,
			PolicyKind:   string(factors.Policy.Kind),
			PolicySeason: factors.Policy.Season,
		})
	}

	return withTx(ctx, r.db, "save adjustment factors", func(tx *sqlx.Tx) error {
		clearQuery, clearArgs, err := qb.DeleteFrom("adjustment_factors").ToSQL()
		if err != nil {
			return fmt.Errorf("build clear adjustment factors query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear adjustment factors: %w", err)
		}

		for _, chunk := range chunks(rows, insertChunkSize) {
			query, args, err := qb.InsertModels("adjustment_factors", chunk, "")
			if err != nil {
				return fmt.Errorf("build insert adjustment factors query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert adjustment factors: %w", err)
			}
		}
		return nil
	})
}

func (r *AdjustmentRepository) GetFactors(ctx context.Context) (adjustment.FactorSet, bool, error) {
	cols, err := qb.Columns(adjustmentFactorTableModel{})
	if err != nil {
		return adjustment.FactorSet{}, false, err
	}
	query, args, err := qb.Select(cols...).From("adjustment_factors").OrderBy("season").ToSQL()
	if err != nil {
		return adjustment.FactorSet{}, false, fmt.Errorf("build get adjustment factors query: %w", err)
	}

	var rows []adjustmentFactorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isNotFound(err) {
			return adjustment.FactorSet{}, false, nil
		}
		return adjustment.FactorSet{}, false, fmt.Errorf("get adjustment factors: %w", err)
	}
	if len(rows) == 0 {
		return adjustment.FactorSet{}, false, nil
	}

	out := adjustment.FactorSet{
		Policy: adjustment.Policy{
			Kind:   adjustment.PolicyKind(rows[0].PolicyKind),
			Season: rows[0].PolicySeason,
		},
		Baseline: rows[0].Baseline,
		Factors:  make(map[int]float64, len(rows)),
	}
	for _, row := range rows {
		out.Factors[row.Season] = row.Factor
	}
	return out, true, nil
}

func (r *AdjustmentRepository) ReplaceAdjustedTotals(ctx context.Context, items []adjustment.AdjustedPlayerTotal) error {
	totals := make([]adjustedTotalTableModel, 0, len(items))
	seasons := make([]adjustedSeasonTableModel, 0, len(items)*16)
	for i, item := range items {
		totals = append(totals, adjustedTotalTableModel{
			PlayerID:            item.PlayerID,
			Name:                item.Name,
			RawCareerTotal:      item.RawCareerTotal,
			AdjustedCareerExact: item.AdjustedCareerExact,
			AdjustedCareerTotal: item.AdjustedCareerTotal,
			Position:            i,
		})
		for _, c := range item.PerSeason {
			seasons = append(seasons, adjustedSeasonTableModel{
				PlayerID: item.PlayerID,
				Season:   c.Season,
				RawGoals: c.RawGoals,
				Factor:   c.Factor,
				Adjusted: c.Adjusted,
			})
		}
	}

	return withTx(ctx, r.db, "replace adjusted totals", func(tx *sqlx.Tx) error {
		// adjusted_season_totals rows go with their parent through ON DELETE CASCADE.
		clearQuery, clearArgs, err := qb.DeleteFrom("adjusted_totals").ToSQL()
		if err != nil {
			return fmt.Errorf("build clear adjusted totals query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear adjusted totals: %w", err)
		}

		for _, chunk := range chunks(totals, insertChunkSize) {
			query, args, err := qb.InsertModels("adjusted_totals", chunk, "")
			if err != nil {
				return fmt.Errorf("build insert adjusted totals query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert adjusted totals: %w", err)
			}
		}
		for _, chunk := range chunks(seasons, insertChunkSize) {
			query, args, err := qb.InsertModels("adjusted_season_totals", chunk, "")
			if err != nil {
				return fmt.Errorf("build insert adjusted season totals query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert adjusted season totals: %w", err)
			}
		}
		return nil
	})
}

func (r *AdjustmentRepository) ListAdjustedTotals(ctx context.Context) ([]adjustment.AdjustedPlayerTotal, error) {
	totalCols, err := qb.Columns(adjustedTotalTableModel{})
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select(totalCols...).From("adjusted_totals").OrderBy("position").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list adjusted totals query: %w", err)
	}

	var totals []adjustedTotalTableModel
	if err := r.db.SelectContext(ctx, &totals, query, args...); err != nil {
		return nil, fmt.Errorf("list adjusted totals: %w", err)
	}
	if len(totals) == 0 {
		return nil, nil
	}

	seasonCols, err := qb.Columns(adjustedSeasonTableModel{})
	if err != nil {
		return nil, err
	}
	seasonQuery, seasonArgs, err := qb.Select(seasonCols...).
		From("adjusted_season_totals").
		OrderBy("player_id", "season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list adjusted season totals query: %w", err)
	}

	var seasons []adjustedSeasonTableModel
	if err := r.db.SelectContext(ctx, &seasons, seasonQuery, seasonArgs...); err != nil {
		return nil, fmt.Errorf("list adjusted season totals: %w", err)
	}

	byPlayer := make(map[string][]adjustment.SeasonContribution, len(totals))
	for _, row := range seasons {
		byPlayer[row.PlayerID] = append(byPlayer[row.PlayerID], adjustment.SeasonContribution{
			Season:   row.Season,
			RawGoals: row.RawGoals,
			Factor:   row.Factor,
			Adjusted: row.Adjusted,
		})
	}

	out := make([]adjustment.AdjustedPlayerTotal, 0, len(totals))
	for _, row := range totals {
		out = append(out, adjustment.AdjustedPlayerTotal{
			PlayerID:            row.PlayerID,
			Name:                row.Name,
			RawCareerTotal:      row.RawCareerTotal,
			AdjustedCareerExact: row.AdjustedCareerExact,
			AdjustedCareerTotal: row.AdjustedCareerTotal,
			PerSeason:           byPlayer[row.PlayerID],
		})
	}
	return out, nil
}
