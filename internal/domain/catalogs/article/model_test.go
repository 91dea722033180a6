package article

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
)

func TestSellPrice(t *testing.T) {
	cases := []struct {
		name      string
		priceInit string
		want      string
	}{
		{"simple", "100", "110"},
		{"rounds half up", "10.05", "11.06"},
		{"two decimals kept", "19.99", "21.99"},
		{"zero", "0", "0"},
		{"small value", "0.10", "0.11"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SellPrice(decimal.RequireFromString(tc.priceInit))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"SellPrice(%s) = %s, want %s", tc.priceInit, got, tc.want)
		})
	}
}

func TestNewArticle_DerivesSellPrice(t *testing.T) {
	art := NewArticle("Clavier", decimal.RequireFromString("50"), 10, id.New())

	assert.True(t, art.PriceSell.Equal(decimal.RequireFromString("55")))
	assert.False(t, id.IsNil(art.ID))
	assert.Equal(t, int64(10), art.AvailableQuantity)
}

func TestArticle_Validate(t *testing.T) {
	ctx := context.Background()
	valid := func() *Article {
		return NewArticle("Souris", decimal.RequireFromString("12.50"), 5, id.New())
	}

	t.Run("valid article passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate(ctx))
	})

	t.Run("empty name", func(t *testing.T) {
		art := valid()
		art.Name = "   "
		err := art.Validate(ctx)
		appErr, ok := apperror.AsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})

	t.Run("name too long", func(t *testing.T) {
		art := valid()
		art.Name = strings.Repeat("x", 256)
		assert.Error(t, art.Validate(ctx))
	})

	t.Run("negative price", func(t *testing.T) {
		art := valid()
		art.PriceInit = decimal.RequireFromString("-1")
		assert.Error(t, art.Validate(ctx))
	})

	t.Run("negative quantity", func(t *testing.T) {
		art := valid()
		art.AvailableQuantity = -1
		assert.Error(t, art.Validate(ctx))
	})

	t.Run("missing category", func(t *testing.T) {
		art := valid()
		art.CategorieID = id.Nil()
		assert.Error(t, art.Validate(ctx))
	})
}
