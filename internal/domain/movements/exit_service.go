package movements

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"gestock/internal/core/id"
	"gestock/internal/core/tx"
	"gestock/pkg/logger"
)

// errBatchRejected forces the rollback of a batch whose diagnostics
// have already been captured in the result.
var errBatchRejected = errors.New("batch rejected: one or more lines failed")

// ExitLineError describes one rejected line of an outbound batch.
type ExitLineError struct {
	ArticleID         id.ID  `json:"article_id"`
	Message           string `json:"message"`
	AvailableQuantity int64  `json:"available_quantity"`
}

// BatchExitResult is the outcome of an outbound batch.
//
// When RolledBack is true, Exits and SoldeTotal describe what WOULD
// have been persisted had the failing lines not been present; nothing
// was written.
type BatchExitResult struct {
	Exits      []*StockExit
	Errors     []ExitLineError
	SoldeTotal decimal.Decimal
	RolledBack bool
}

// ExitService records outbound stock movements (sales).
type ExitService struct {
	ledger    *Ledger
	txManager tx.Manager
}

// NewExitService creates a new outbound movement service.
func NewExitService(ledger *Ledger, txManager tx.Manager) *ExitService {
	return &ExitService{
		ledger:    ledger,
		txManager: txManager,
	}
}

// Record applies a single outbound movement. Fails with
// InsufficientStock when the article cannot cover the quantity.
func (s *ExitService) Record(ctx context.Context, line Line) (*StockExit, error) {
	if err := ValidateLines(ctx, []Line{line}); err != nil {
		return nil, err
	}

	var exit *StockExit
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		exit, err = s.ledger.ApplyExit(ctx, line.ArticleID, line.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "stock exit recorded",
		"id", exit.ID,
		"article_id", exit.ArticleID,
		"quantity", exit.Quantity,
		"solde", exit.Solde,
	)
	return exit, nil
}

// RecordBatch applies a batch of outbound movements in one transaction.
//
// Lines are processed in input order. A line that the stock cannot
// cover is recorded as a line error and processing continues, so the
// caller learns about every shortage in one pass. If any line failed,
// the whole transaction is rolled back: batch success is strictly
// all-or-nothing even though failure reporting is per line. An unknown
// article fails the whole request immediately.
func (s *ExitService) RecordBatch(ctx context.Context, lines []Line) (*BatchExitResult, error) {
	if err := ValidateLines(ctx, lines); err != nil {
		return nil, err
	}

	result := &BatchExitResult{SoldeTotal: decimal.Zero}
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, line := range lines {
			art, err := s.ledger.articles.GetForUpdate(ctx, line.ArticleID)
			if err != nil {
				return err
			}

			if art.AvailableQuantity < line.Quantity {
				result.Errors = append(result.Errors, ExitLineError{
					ArticleID:         line.ArticleID,
					Message:           "requested quantity exceeds available quantity",
					AvailableQuantity: art.AvailableQuantity,
				})
				continue
			}

			exit, err := s.ledger.applyExitLocked(ctx, art, line.Quantity)
			if err != nil {
				return err
			}
			result.Exits = append(result.Exits, exit)
			result.SoldeTotal = result.SoldeTotal.Add(exit.Solde)
		}

		if len(result.Errors) > 0 {
			return errBatchRejected
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errBatchRejected) {
			result.RolledBack = true
			logger.Warn(ctx, "stock exit batch rolled back",
				"lines", len(lines),
				"rejected", len(result.Errors),
			)
			return result, nil
		}
		return nil, err
	}

	logger.Info(ctx, "stock exit batch recorded",
		"count", len(result.Exits),
		"solde_total", result.SoldeTotal,
	)
	return result, nil
}
