package leader

import (
	"sort"
	"strings"
)

// SelectCareerLeaders keeps leaders with at least minGoals career goals,
// ordered by goals then name.
func SelectCareerLeaders(items []Leader, minGoals int) []Leader {
	out := make([]Leader, 0, len(items))
	for _, item := range items {
		if item.CareerGoals < minGoals {
			continue
		}
		item.Source = SourceCareer
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CareerGoals != out[j].CareerGoals {
			return out[i].CareerGoals > out[j].CareerGoals
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// SelectYearlyTop picks the top n scorers of every season. Players tied
// with the n-th place are kept as well. A player leading several seasons is
// returned once, at the position of the earliest appearance.
func SelectYearlyTop(rows []SeasonGoals, n int) []Leader {
	if n <= 0 || len(rows) == 0 {
		return nil
	}

	bySeason := make(map[int][]SeasonGoals)
	for _, row := range rows {
		if row.PlayerID == "" && row.URL == "" {
			continue
		}
		bySeason[row.Season] = append(bySeason[row.Season], row)
	}

	seasons := make([]int, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	set := NewSet()
	for _, s := range seasons {
		scorers := bySeason[s]
		sort.SliceStable(scorers, func(i, j int) bool {
			if scorers[i].Goals != scorers[j].Goals {
				return scorers[i].Goals > scorers[j].Goals
			}
			return strings.ToLower(scorers[i].Name) < strings.ToLower(scorers[j].Name)
		})

		for i, row := range scorers {
			if i >= n && row.Goals < scorers[n-1].Goals {
				break
			}
			set.Add(Leader{
				PlayerID:   row.PlayerID,
				Name:       row.Name,
				URL:        row.URL,
				Source:     SourceYearly,
				TopSeasons: []int{row.Season},
			})
		}
	}
	return set.List()
}
