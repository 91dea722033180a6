package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
)

func TestUpdateArticleRequest_BindsSubset(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		var req UpdateArticleRequest
		require.NoError(t, binding.JSON.BindBody([]byte(`{"name":"Stylo"}`), &req))
		require.NotNil(t, req.Name)
		assert.Equal(t, "Stylo", *req.Name)
		assert.Nil(t, req.PriceInit)
		assert.Nil(t, req.CategorieID)
	})

	t.Run("price only", func(t *testing.T) {
		var req UpdateArticleRequest
		require.NoError(t, binding.JSON.BindBody([]byte(`{"priceInit":"12.50"}`), &req))
		require.NotNil(t, req.PriceInit)
		assert.True(t, req.PriceInit.Equal(decimal.RequireFromString("12.50")))
		assert.Nil(t, req.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		var req UpdateArticleRequest
		require.NoError(t, binding.JSON.BindBody([]byte(`{}`), &req))
	})

	t.Run("malformed category id", func(t *testing.T) {
		var req UpdateArticleRequest
		assert.Error(t, binding.JSON.BindBody([]byte(`{"categorie_id":"nope"}`), &req))
	})
}

func TestUpdateArticleRequest_Apply(t *testing.T) {
	catID := id.New()
	art := article.NewArticle("Écran", decimal.RequireFromString("200"), 3, catID)

	name := "Écran 24"
	require.NoError(t, UpdateArticleRequest{Name: &name}.Apply(art))
	assert.Equal(t, name, art.Name)

	// Untouched fields keep their values
	assert.True(t, art.PriceInit.Equal(decimal.RequireFromString("200")))
	assert.Equal(t, catID, art.CategorieID)
	assert.Equal(t, int64(3), art.AvailableQuantity)

	price := decimal.RequireFromString("300")
	require.NoError(t, UpdateArticleRequest{PriceInit: &price}.Apply(art))
	assert.True(t, art.PriceInit.Equal(price))
	assert.Equal(t, name, art.Name)

	otherCat := id.New().String()
	require.NoError(t, UpdateArticleRequest{CategorieID: &otherCat}.Apply(art))
	assert.Equal(t, otherCat, art.CategorieID.String())

	bad := "not-a-uuid"
	err := UpdateArticleRequest{CategorieID: &bad}.Apply(art)
	require.Error(t, err)
	assert.Equal(t, otherCat, art.CategorieID.String())
}
