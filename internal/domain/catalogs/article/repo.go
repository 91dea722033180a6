package article

import (
	"context"
	"errors"

	"gestock/internal/core/id"
)

// ErrQuantityGuard is returned by AdjustQuantity when the conditional
// decrement would drive available_quantity negative. The ledger checks
// availability under a row lock first, so hitting this means the guard
// caught a logic error rather than a normal shortage.
var ErrQuantityGuard = errors.New("quantity adjustment rejected: available_quantity would become negative")

// Repository defines the interface for Article persistence.
type Repository interface {
	Create(ctx context.Context, art *Article) error
	GetByID(ctx context.Context, artID id.ID) (*Article, error)

	// GetForUpdate retrieves the article with a row lock (FOR UPDATE).
	// Must be called inside a transaction.
	GetForUpdate(ctx context.Context, artID id.ID) (*Article, error)

	List(ctx context.Context) ([]*Article, error)
	Update(ctx context.Context, art *Article) error

	// Delete removes the article; its movement rows are removed by
	// the ON DELETE CASCADE constraints.
	Delete(ctx context.Context, artID id.ID) error

	// ExistsByName reports whether another article already uses the name.
	ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error)

	// AdjustQuantity applies a signed delta to available_quantity with a
	// non-negativity guard in the UPDATE itself. Returns ErrQuantityGuard
	// when the guard rejects the adjustment.
	AdjustQuantity(ctx context.Context, artID id.ID, delta int64) error
}
