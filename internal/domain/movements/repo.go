package movements

import (
	"context"
)

// EntryRepository persists inbound movements.
type EntryRepository interface {
	Create(ctx context.Context, entry *StockEntry) error
}

// ExitRepository persists outbound movements.
type ExitRepository interface {
	Create(ctx context.Context, exit *StockExit) error
}
