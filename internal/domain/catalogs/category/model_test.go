package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid category passes", func(t *testing.T) {
		cat := NewCategory("Informatique", "Matériel informatique")
		assert.NoError(t, cat.Validate(ctx))
	})

	t.Run("empty name", func(t *testing.T) {
		cat := NewCategory("", "desc")
		assert.Error(t, cat.Validate(ctx))
	})

	t.Run("blank name", func(t *testing.T) {
		cat := NewCategory("   ", "desc")
		assert.Error(t, cat.Validate(ctx))
	})

	t.Run("name too long", func(t *testing.T) {
		cat := NewCategory(strings.Repeat("a", 256), "")
		assert.Error(t, cat.Validate(ctx))
	})

	t.Run("description too long", func(t *testing.T) {
		cat := NewCategory("ok", strings.Repeat("a", 1001))
		assert.Error(t, cat.Validate(ctx))
	})
}
