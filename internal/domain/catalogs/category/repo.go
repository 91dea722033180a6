package category

import (
	"context"

	"gestock/internal/core/id"
)

// Repository defines the interface for Category persistence.
type Repository interface {
	Create(ctx context.Context, cat *Category) error
	GetByID(ctx context.Context, catID id.ID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, cat *Category) error

	// Delete removes the category; owned articles are removed by
	// the ON DELETE CASCADE constraint.
	Delete(ctx context.Context, catID id.ID) error

	Exists(ctx context.Context, catID id.ID) (bool, error)

	// ExistsByName reports whether another category already uses the name.
	ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error)
}
