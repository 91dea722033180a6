// Package stats aggregates movement history into per-article summaries.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"gestock/internal/core/id"
)

// Kind selects which movement history to aggregate.
type Kind string

const (
	KindInbound  Kind = "inbound"
	KindOutbound Kind = "outbound"
)

// Filter restricts the aggregation to a creation-timestamp window.
// From and To must be set together or not at all; To is exclusive
// (callers pass the day after the requested inclusive end date).
type Filter struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether no window is set.
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil
}

// ArticleGroup is the aggregate for one article.
//
// Monetary fields are computed from the article's CURRENT prices, which
// can diverge from the solde persisted at sale time; the summary-level
// SoldeTotal stays authoritative for what was actually sold.
type ArticleGroup struct {
	ArticleID   id.ID  `db:"article_id" json:"article_id"`
	ArticleName string `db:"article_name" json:"article_name"`
	Quantity    int64  `db:"quantity" json:"quantity"`

	// Inbound only: cost price and quantity * priceInit.
	PriceInit *decimal.Decimal `db:"price_init" json:"priceInit,omitempty"`
	SoldeUse  *decimal.Decimal `db:"-" json:"soldeUse,omitempty"`

	// Outbound only: sale price and quantity * priceSell.
	PriceSell *decimal.Decimal `db:"price_sell" json:"priceSell,omitempty"`
	Solde     *decimal.Decimal `db:"-" json:"solde,omitempty"`
}

// Summary is the aggregation result for one movement kind.
type Summary struct {
	TotalQuantity int64          `json:"total_quantity"`
	Articles      []ArticleGroup `json:"articles"`
	MostMoved     *ArticleGroup  `json:"most_moved"`

	// SoldeTotal is the sum of persisted solde values, returned only
	// for the overall (unfiltered) outbound summary.
	SoldeTotal *decimal.Decimal `json:"soldeTotal,omitempty"`
}
