package movements

import (
	"context"

	"gestock/internal/core/tx"
	"gestock/pkg/logger"
)

// EntryService records inbound stock movements.
type EntryService struct {
	ledger    *Ledger
	txManager tx.Manager
}

// NewEntryService creates a new inbound movement service.
func NewEntryService(ledger *Ledger, txManager tx.Manager) *EntryService {
	return &EntryService{
		ledger:    ledger,
		txManager: txManager,
	}
}

// Record applies a single inbound movement.
func (s *EntryService) Record(ctx context.Context, line Line) (*StockEntry, error) {
	if err := ValidateLines(ctx, []Line{line}); err != nil {
		return nil, err
	}

	var entry *StockEntry
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.ledger.ApplyEntry(ctx, line.ArticleID, line.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "stock entry recorded",
		"id", entry.ID,
		"article_id", entry.ArticleID,
		"quantity", entry.Quantity,
	)
	return entry, nil
}

// RecordBatch applies a batch of inbound movements in one transaction.
// Inbound lines cannot fail business rules, so the transaction only
// exists to absorb persistence failures atomically.
func (s *EntryService) RecordBatch(ctx context.Context, lines []Line) ([]*StockEntry, error) {
	if err := ValidateLines(ctx, lines); err != nil {
		return nil, err
	}

	entries := make([]*StockEntry, 0, len(lines))
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, line := range lines {
			entry, err := s.ledger.ApplyEntry(ctx, line.ArticleID, line.Quantity)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "stock entry batch recorded", "count", len(entries))
	return entries, nil
}
