package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
)

// CreateArticleRequest for creating an article. priceSell is never
// accepted from clients; it is derived from priceInit.
type CreateArticleRequest struct {
	Name              string          `json:"name" binding:"required"`
	PriceInit         decimal.Decimal `json:"priceInit" binding:"required"`
	AvailableQuantity int64           `json:"available_quantity" binding:"min=0"`
	CategorieID       string          `json:"categorie_id" binding:"required,uuid"`
}

// UpdateArticleRequest for updating an article. Every field is
// optional; absent fields keep their current value. available_quantity
// is not accepted: only stock movements change it.
type UpdateArticleRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1"`
	PriceInit   *decimal.Decimal `json:"priceInit"`
	CategorieID *string          `json:"categorie_id" binding:"omitempty,uuid"`
}

// Apply copies the supplied fields onto the article.
func (r UpdateArticleRequest) Apply(art *article.Article) error {
	if r.Name != nil {
		art.Name = *r.Name
	}
	if r.PriceInit != nil {
		art.PriceInit = *r.PriceInit
	}
	if r.CategorieID != nil {
		catID, err := id.Parse(*r.CategorieID)
		if err != nil {
			return apperror.NewValidation("invalid categorie_id").WithDetail("categorie_id", *r.CategorieID)
		}
		art.CategorieID = catID
	}
	return nil
}

// ArticleResponse contains article fields with the category embedded
// when the query joined it.
type ArticleResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	PriceInit         decimal.Decimal   `json:"priceInit"`
	PriceSell         decimal.Decimal   `json:"priceSell"`
	AvailableQuantity int64             `json:"available_quantity"`
	CategorieID       string            `json:"categorie_id"`
	Categorie         *CategoryResponse `json:"categorie,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// FromArticle creates ArticleResponse from the domain model.
func FromArticle(a *article.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		PriceInit:         a.PriceInit,
		PriceSell:         a.PriceSell,
		AvailableQuantity: a.AvailableQuantity,
		CategorieID:       a.CategorieID.String(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.Categorie != nil {
		cat := FromCategory(a.Categorie)
		resp.Categorie = &cat
	}
	return resp
}

// FromArticles maps a list of articles.
func FromArticles(arts []*article.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(arts))
	for _, a := range arts {
		out = append(out, FromArticle(a))
	}
	return out
}
