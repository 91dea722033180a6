package stats

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines the aggregate queries over movement history.
type Repository interface {
	// GroupByArticle sums quantities per article for the given kind,
	// ordered by summed quantity descending. Article name and prices
	// come from a LEFT JOIN; the name falls back to "N/A" when the
	// article row no longer exists.
	GroupByArticle(ctx context.Context, kind Kind, filter Filter) ([]ArticleGroup, error)

	// SumSolde returns the sum of all persisted out_stores.solde values.
	SumSolde(ctx context.Context) (decimal.Decimal, error)
}
