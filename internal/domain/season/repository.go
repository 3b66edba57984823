package season

import "context"

type Repository interface {
	UpsertTotals(ctx context.Context, items []Totals) error
	ListTotals(ctx context.Context, from, to int) ([]Totals, error)
}
