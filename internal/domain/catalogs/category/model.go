// Package category provides the Category catalog.
// Every article belongs to exactly one category.
package category

import (
	"context"
	"strings"
	"time"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
)

// Category groups articles. Deleting a category cascades to its articles.
type Category struct {
	ID          id.ID     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// NewCategory creates a Category with a generated ID.
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		ID:          id.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks field constraints before persistence.
func (c *Category) Validate(ctx context.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if len(name) > 255 {
		return apperror.NewValidation("name must not exceed 255 characters").
			WithDetail("field", "name")
	}
	if len(c.Description) > 1000 {
		return apperror.NewValidation("description must not exceed 1000 characters").
			WithDetail("field", "description")
	}
	return nil
}
