// Package article provides the Article catalog.
// An article is a stock-keeping unit with a cost price, a derived sale
// price and a cached available quantity maintained by the stock ledger.
package article

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/category"
)

// markupRate is the fixed margin applied to the cost price.
var markupRate = decimal.NewFromFloat(0.10)

// SellPrice derives the sale price from the cost price:
// priceInit + 10%, rounded to 2 decimal places.
func SellPrice(priceInit decimal.Decimal) decimal.Decimal {
	return priceInit.Add(priceInit.Mul(markupRate)).Round(2)
}

// Article is a stock-keeping unit.
// AvailableQuantity is a denormalized aggregate over the movement
// history; it is only ever mutated inside a movement transaction.
type Article struct {
	ID                id.ID           `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	PriceInit         decimal.Decimal `db:"price_init" json:"priceInit"`
	PriceSell         decimal.Decimal `db:"price_sell" json:"priceSell"`
	AvailableQuantity int64           `db:"available_quantity" json:"available_quantity"`
	CategorieID       id.ID           `db:"categorie_id" json:"categorie_id"`
	CreatedAt         time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updatedAt"`

	// Categorie is populated by list/read queries, not persisted here.
	Categorie *category.Category `db:"categorie" json:"categorie,omitempty"`
}

// NewArticle creates an Article with a generated ID and derived sale price.
func NewArticle(name string, priceInit decimal.Decimal, availableQuantity int64, categorieID id.ID) *Article {
	now := time.Now()
	return &Article{
		ID:                id.New(),
		Name:              name,
		PriceInit:         priceInit,
		PriceSell:         SellPrice(priceInit),
		AvailableQuantity: availableQuantity,
		CategorieID:       categorieID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Validate checks field constraints before persistence.
func (a *Article) Validate(ctx context.Context) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if len(name) > 255 {
		return apperror.NewValidation("name must not exceed 255 characters").
			WithDetail("field", "name")
	}
	if a.PriceInit.IsNegative() {
		return apperror.NewValidation("priceInit cannot be negative").
			WithDetail("field", "priceInit")
	}
	if a.AvailableQuantity < 0 {
		return apperror.NewValidation("available_quantity cannot be negative").
			WithDetail("field", "available_quantity")
	}
	if id.IsNil(a.CategorieID) {
		return apperror.NewValidation("categorie_id is required").
			WithDetail("field", "categorie_id")
	}
	return nil
}
