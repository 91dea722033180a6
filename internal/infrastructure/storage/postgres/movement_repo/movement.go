// Package movement_repo provides PostgreSQL persistence for stock
// movements. Movement rows are append-only.
package movement_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"gestock/internal/core/apperror"
	"gestock/internal/domain/movements"
	"gestock/internal/infrastructure/storage/postgres"
)

const (
	entryTable = "enter_stores"
	exitTable  = "out_stores"
)

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// EntryRepo implements movements.EntryRepository.
type EntryRepo struct {
	tm *postgres.TxManager
}

// NewEntryRepo creates a new inbound movement repository.
func NewEntryRepo(tm *postgres.TxManager) *EntryRepo {
	return &EntryRepo{tm: tm}
}

// Create inserts an inbound movement row.
func (r *EntryRepo) Create(ctx context.Context, entry *movements.StockEntry) error {
	q := builder().
		Insert(entryTable).
		Columns("id", "quantity", "article_id", "created_at").
		Values(entry.ID, entry.Quantity, entry.ArticleID, entry.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewNotFound("article", entry.ArticleID.String()).WithCause(err)
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// ExitRepo implements movements.ExitRepository.
type ExitRepo struct {
	tm *postgres.TxManager
}

// NewExitRepo creates a new outbound movement repository.
func NewExitRepo(tm *postgres.TxManager) *ExitRepo {
	return &ExitRepo{tm: tm}
}

// Create inserts an outbound movement row with its solde.
func (r *ExitRepo) Create(ctx context.Context, exit *movements.StockExit) error {
	q := builder().
		Insert(exitTable).
		Columns("id", "quantity", "solde", "article_id", "created_at").
		Values(exit.ID, exit.Quantity, exit.Solde, exit.ArticleID, exit.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewNotFound("article", exit.ArticleID.String()).WithCause(err)
		}
		return fmt.Errorf("insert stock exit: %w", err)
	}
	return nil
}
