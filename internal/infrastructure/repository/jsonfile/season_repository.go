package jsonfile

import (
	"context"
	"sort"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

// UpsertTotals merges items into goals_per_season.json by season.
func (r *SeasonRepository) UpsertTotals(_ context.Context, items []season.Totals) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rows []seasonTotalsFileModel
	if _, err := r.store.readJSON(SeasonTotalsFile, &rows); err != nil {
		return err
	}

	bySeason := make(map[int]seasonTotalsFileModel, len(rows)+len(items))
	for _, row := range rows {
		bySeason[row.Season] = row
	}
	for _, item := range items {
		row := seasonTotalsFileModel{
			Season:     item.Season,
			Label:      season.Label(item.Season),
			TotalGoals: item.TotalGoals,
			TotalGames: item.TotalGames,
		}
		if item.TotalGames > 0 {
			row.GoalsPerGame = float64(item.TotalGoals) / float64(item.TotalGames)
		}
		bySeason[item.Season] = row
	}

	out := make([]seasonTotalsFileModel, 0, len(bySeason))
	for _, row := range bySeason {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })

	return r.store.writeJSON(SeasonTotalsFile, out)
}

func (r *SeasonRepository) ListTotals(_ context.Context, from, to int) ([]season.Totals, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rows []seasonTotalsFileModel
	if _, err := r.store.readJSON(SeasonTotalsFile, &rows); err != nil {
		return nil, err
	}

	out := make([]season.Totals, 0, len(rows))
	for _, row := range rows {
		if row.Season < from || row.Season > to {
			continue
		}
		out = append(out, season.Totals{
			Season:     row.Season,
			TotalGoals: row.TotalGoals,
			TotalGames: row.TotalGames,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}
