package dto

import (
	"time"

	"gestock/internal/domain/catalogs/category"
)

// CreateCategoryRequest for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest for updating a category. Absent fields keep
// their current value.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

// Apply copies the supplied fields onto the category.
func (r UpdateCategoryRequest) Apply(cat *category.Category) {
	if r.Name != nil {
		cat.Name = *r.Name
	}
	if r.Description != nil {
		cat.Description = *r.Description
	}
}

// CategoryResponse contains category fields.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromCategory creates CategoryResponse from the domain model.
func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromCategories maps a list of categories.
func FromCategories(cats []*category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, FromCategory(c))
	}
	return out
}
