package adjustment

import "context"

type Repository interface {
	SaveFactors(ctx context.Context, factors FactorSet) error
	GetFactors(ctx context.Context) (FactorSet, bool, error)
	ReplaceAdjustedTotals(ctx context.Context, items []AdjustedPlayerTotal) error
	ListAdjustedTotals(ctx context.Context) ([]AdjustedPlayerTotal, error)
}
