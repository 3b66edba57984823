package jsonfile

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
)

type AdjustmentRepository struct {
	store *Store
}

func NewAdjustmentRepository(store *Store) *AdjustmentRepository {
	return &AdjustmentRepository{store: store}
}

func (r *AdjustmentRepository) SaveFactors(_ context.Context, factors adjustment.FactorSet) error {
	row := factorSetFileModel{
		Policy: policyFileModel{
			Kind:   string(factors.Policy.Kind),
			Season: factors.Policy.Season,
		},
		Baseline: factors.Baseline,
		Factors:  make(map[string]float64, factors.Len()),
	}
	for s, v := range factors.Factors {
		row.Factors[strconv.Itoa(s)] = v
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.writeJSON(AdjustmentFile, row)
}

func (r *AdjustmentRepository) GetFactors(_ context.Context) (adjustment.FactorSet, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var row factorSetFileModel
	found, err := r.store.readJSON(AdjustmentFile, &row)
	if err != nil || !found {
		return adjustment.FactorSet{}, false, err
	}

	out := adjustment.FactorSet{
		Policy: adjustment.Policy{
			Kind:   adjustment.PolicyKind(row.Policy.Kind),
			Season: row.Policy.Season,
		},
		Baseline: row.Baseline,
		Factors:  make(map[int]float64, len(row.Factors)),
	}
	for key, v := range row.Factors {
		s, err := strconv.Atoi(key)
		if err != nil {
			return adjustment.FactorSet{}, false, fmt.Errorf("decode %s: season key %q: %w", AdjustmentFile, key, err)
		}
		out.Factors[s] = v
	}
	return out, true, nil
}

func (r *AdjustmentRepository) ReplaceAdjustedTotals(_ context.Context, items []adjustment.AdjustedPlayerTotal) error {
	rows := make([]adjustedTotalFileModel, 0, len(items))
	for _, item := range items {
		perSeason := make([]seasonContributionFileModel, 0, len(item.PerSeason))
		for _, c := range item.PerSeason {
			perSeason = append(perSeason, seasonContributionFileModel{
				Season:   c.Season,
				Goals:    c.RawGoals,
				Factor:   c.Factor,
				Adjusted: c.DisplayAdjusted(),
			})
		}
		rows = append(rows, adjustedTotalFileModel{
			PlayerID:            item.PlayerID,
			Name:                item.Name,
			RawCareerTotal:      item.RawCareerTotal,
			AdjustedCareerExact: item.AdjustedCareerExact,
			AdjustedCareerTotal: item.AdjustedCareerTotal,
			PerSeason:           perSeason,
		})
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.writeJSON(AdjustedTotalsFile, rows)
}

func (r *AdjustmentRepository) ListAdjustedTotals(_ context.Context) ([]adjustment.AdjustedPlayerTotal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rows []adjustedTotalFileModel
	if _, err := r.store.readJSON(AdjustedTotalsFile, &rows); err != nil {
		return nil, err
	}

	out := make([]adjustment.AdjustedPlayerTotal, 0, len(rows))
	for _, row := range rows {
		perSeason := make([]adjustment.SeasonContribution, 0, len(row.PerSeason))
		for _, c := range row.PerSeason {
			perSeason = append(perSeason, adjustment.SeasonContribution{
				Season:   c.Season,
				RawGoals: c.Goals,
				Factor:   c.Factor,
				Adjusted: c.Adjusted,
			})
		}
		out = append(out, adjustment.AdjustedPlayerTotal{
			PlayerID:            row.PlayerID,
			Name:                row.Name,
			RawCareerTotal:      row.RawCareerTotal,
			AdjustedCareerExact: row.AdjustedCareerExact,
			AdjustedCareerTotal: row.AdjustedCareerTotal,
			PerSeason:           perSeason,
		})
	}
	return out, nil
}
