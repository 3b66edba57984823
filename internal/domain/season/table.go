package season

import "fmt"

// RateTable holds exactly one Record per requested season. It is immutable
// once built.
type RateTable struct {
	span    Range
	seasons []int
	records map[int]Record
}

// NewRateTable builds a table for every season requested by span. Totals
// outside the span are ignored; a requested season without totals, or with
// zero games, fails the whole construction.
func NewRateTable(totals []Totals, span Range) (*RateTable, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}

	bySeason := make(map[int]Totals, len(totals))
	for _, item := range totals {
		if !span.Contains(item.Season) {
			continue
		}
		if _, exists := bySeason[item.Season]; exists {
			return nil, fmt.Errorf("%w: season=%s", ErrDuplicateSeason, Label(item.Season))
		}
		bySeason[item.Season] = item
	}

	requested := span.Seasons()
	records := make(map[int]Record, len(requested))
	for _, s := range requested {
		item, ok := bySeason[s]
		if !ok {
			return nil, &MissingSeasonDataError{Season: s, Reason: "no totals retrieved"}
		}
		record, err := NewRecord(item)
		if err != nil {
			return nil, err
		}
		records[s] = record
	}

	return &RateTable{
		span:    span,
		seasons: requested,
		records: records,
	}, nil
}

func (t *RateTable) Range() Range {
	return t.span
}

func (t *RateTable) Len() int {
	return len(t.seasons)
}

// Seasons returns the table's seasons in ascending order.
func (t *RateTable) Seasons() []int {
	return append([]int(nil), t.seasons...)
}

func (t *RateTable) Rate(season int) (float64, bool) {
	record, ok := t.records[season]
	if !ok {
		return 0, false
	}
	return record.GoalsPerGame, true
}

func (t *RateTable) Record(season int) (Record, bool) {
	record, ok := t.records[season]
	return record, ok
}

// Records returns every record ordered by season.
func (t *RateTable) Records() []Record {
	out := make([]Record, 0, len(t.seasons))
	for _, s := range t.seasons {
		out = append(out, t.records[s])
	}
	return out
}
