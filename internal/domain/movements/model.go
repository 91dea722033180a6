// Package movements provides inbound (enter) and outbound (sell) stock
// movements, the ledger that keeps article quantities in lock-step with
// the movement history, and the batch processors on top of it.
package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
)

// StockEntry is an inbound movement. Immutable once created.
type StockEntry struct {
	ID        id.ID     `db:"id" json:"id"`
	Quantity  int64     `db:"quantity" json:"quantity"`
	ArticleID id.ID     `db:"article_id" json:"article_id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// StockExit is an outbound movement (sale). Immutable once created.
// Solde is the monetary value at time of sale: quantity * priceSell.
type StockExit struct {
	ID        id.ID           `db:"id" json:"id"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	Solde     decimal.Decimal `db:"solde" json:"solde"`
	ArticleID id.ID           `db:"article_id" json:"article_id"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// Line is one (article, quantity) item of a movement request.
type Line struct {
	ArticleID id.ID
	Quantity  int64
}

// ValidateLines checks the structural shape of a batch before any
// movement is attempted. A structurally invalid line fails the whole
// request with no partial state.
func ValidateLines(ctx context.Context, lines []Line) error {
	if len(lines) == 0 {
		return apperror.NewValidation("at least one line is required")
	}
	for i, line := range lines {
		if line.Quantity < 1 {
			return apperror.NewValidation(fmt.Sprintf("line %d: quantity must be at least 1", i)).
				WithDetail("line", i).
				WithDetail("quantity", line.Quantity)
		}
		if id.IsNil(line.ArticleID) {
			return apperror.NewValidation(fmt.Sprintf("line %d: article_id is required", i)).
				WithDetail("line", i)
		}
	}
	return nil
}
