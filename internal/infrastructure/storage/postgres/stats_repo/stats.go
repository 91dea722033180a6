// Package stats_repo provides PostgreSQL aggregate queries over the
// movement history.
package stats_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"gestock/internal/domain/stats"
	"gestock/internal/infrastructure/storage/postgres"
)

// StatsRepo implements stats.Repository.
type StatsRepo struct {
	tm      *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewStatsRepo creates a new statistics repository.
func NewStatsRepo(tm *postgres.TxManager) *StatsRepo {
	return &StatsRepo{
		tm:      tm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GroupByArticle sums movement quantities per article, ordered by the
// summed quantity descending. The article row is joined for its name
// and current prices; the LEFT JOIN keeps groups whose article has been
// deleted, with the name falling back to 'N/A'.
func (r *StatsRepo) GroupByArticle(ctx context.Context, kind stats.Kind, filter stats.Filter) ([]stats.ArticleGroup, error) {
	table, err := movementTable(kind)
	if err != nil {
		return nil, err
	}

	q := r.builder.
		Select(
			"m.article_id",
			"COALESCE(a.name, 'N/A') AS article_name",
			"SUM(m.quantity) AS quantity",
			"a.price_init",
			"a.price_sell",
		).
		From(table + " m").
		LeftJoin("articles a ON a.id = m.article_id").
		GroupBy("m.article_id", "a.name", "a.price_init", "a.price_sell").
		OrderBy("quantity DESC")

	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"m.created_at": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.Lt{"m.created_at": *filter.To})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build group query: %w", err)
	}

	var groups []stats.ArticleGroup
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &groups, sql, args...); err != nil {
		return nil, fmt.Errorf("group movements by article: %w", err)
	}
	return groups, nil
}

// SumSolde returns the total of all persisted out_stores.solde values.
func (r *StatsRepo) SumSolde(ctx context.Context) (decimal.Decimal, error) {
	sql, args, err := r.builder.
		Select("COALESCE(SUM(solde), 0)").
		From("out_stores").
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build sum query: %w", err)
	}

	var total decimal.Decimal
	if err := r.tm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum solde: %w", err)
	}
	return total, nil
}

func movementTable(kind stats.Kind) (string, error) {
	switch kind {
	case stats.KindInbound:
		return "enter_stores", nil
	case stats.KindOutbound:
		return "out_stores", nil
	default:
		return "", fmt.Errorf("unknown movement kind: %q", kind)
	}
}
