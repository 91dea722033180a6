package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
)

// ArticleStore is the slice of the article repository the ledger needs.
type ArticleStore interface {
	GetForUpdate(ctx context.Context, artID id.ID) (*article.Article, error)
	AdjustQuantity(ctx context.Context, artID id.ID, delta int64) error
}

// Ledger applies individual stock movements to an article, keeping
// available_quantity consistent with the movement history.
//
// All methods must run inside a transaction owned by the caller: the
// availability check and the decrement are only atomic because the
// article row stays locked until commit.
type Ledger struct {
	articles ArticleStore
	entries  EntryRepository
	exits    ExitRepository
}

// NewLedger creates a stock ledger.
func NewLedger(articles ArticleStore, entries EntryRepository, exits ExitRepository) *Ledger {
	return &Ledger{
		articles: articles,
		entries:  entries,
		exits:    exits,
	}
}

// ApplyEntry increments the article's available quantity and records
// the inbound movement.
func (l *Ledger) ApplyEntry(ctx context.Context, artID id.ID, quantity int64) (*StockEntry, error) {
	art, err := l.articles.GetForUpdate(ctx, artID)
	if err != nil {
		return nil, err
	}
	return l.applyEntryLocked(ctx, art, quantity)
}

// ApplyExit decrements the article's available quantity and records the
// outbound movement with its solde. Fails with InsufficientStock, and
// without any mutation, when the article cannot cover the quantity.
func (l *Ledger) ApplyExit(ctx context.Context, artID id.ID, quantity int64) (*StockExit, error) {
	art, err := l.articles.GetForUpdate(ctx, artID)
	if err != nil {
		return nil, err
	}

	if art.AvailableQuantity < quantity {
		return nil, apperror.NewInsufficientStock(art.ID.String(), quantity, art.AvailableQuantity)
	}

	return l.applyExitLocked(ctx, art, quantity)
}

// applyEntryLocked applies an inbound movement to an already locked article.
func (l *Ledger) applyEntryLocked(ctx context.Context, art *article.Article, quantity int64) (*StockEntry, error) {
	if err := l.articles.AdjustQuantity(ctx, art.ID, quantity); err != nil {
		return nil, fmt.Errorf("increment quantity: %w", err)
	}

	entry := &StockEntry{
		ID:        id.New(),
		Quantity:  quantity,
		ArticleID: art.ID,
		CreatedAt: time.Now(),
	}
	if err := l.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create stock entry: %w", err)
	}

	art.AvailableQuantity += quantity
	return entry, nil
}

// applyExitLocked applies an outbound movement to an already locked
// article whose availability has been verified by the caller.
func (l *Ledger) applyExitLocked(ctx context.Context, art *article.Article, quantity int64) (*StockExit, error) {
	// The availability check happened under the row lock; the
	// conditional UPDATE is a second guard against quantity ever
	// going negative.
	if err := l.articles.AdjustQuantity(ctx, art.ID, -quantity); err != nil {
		return nil, fmt.Errorf("decrement quantity: %w", err)
	}

	solde := art.PriceSell.Mul(decimal.NewFromInt(quantity))

	exit := &StockExit{
		ID:        id.New(),
		Quantity:  quantity,
		Solde:     solde,
		ArticleID: art.ID,
		CreatedAt: time.Now(),
	}
	if err := l.exits.Create(ctx, exit); err != nil {
		return nil, fmt.Errorf("create stock exit: %w", err)
	}

	art.AvailableQuantity -= quantity
	return exit, nil
}
