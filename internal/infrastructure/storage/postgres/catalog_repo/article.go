package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
	"gestock/internal/infrastructure/storage/postgres"
)

const articleTable = "articles"

var articleCols = []string{
	"id", "name", "price_init", "price_sell",
	"available_quantity", "categorie_id", "created_at", "updated_at",
}

// articleJoinCols aliases the joined category row into the nested
// "categorie" struct via pgxscan's dot notation.
var articleJoinCols = []string{
	"a.id", "a.name", "a.price_init", "a.price_sell",
	"a.available_quantity", "a.categorie_id", "a.created_at", "a.updated_at",
	`c.id AS "categorie.id"`,
	`c.name AS "categorie.name"`,
	`c.description AS "categorie.description"`,
	`c.created_at AS "categorie.created_at"`,
	`c.updated_at AS "categorie.updated_at"`,
}

// ArticleRepo implements article.Repository.
type ArticleRepo struct {
	tm *postgres.TxManager
}

// NewArticleRepo creates a new article repository.
func NewArticleRepo(tm *postgres.TxManager) *ArticleRepo {
	return &ArticleRepo{tm: tm}
}

// Create inserts a new article.
func (r *ArticleRepo) Create(ctx context.Context, art *article.Article) error {
	q := builder().
		Insert(articleTable).
		Columns(articleCols...).
		Values(art.ID, art.Name, art.PriceInit, art.PriceSell,
			art.AvailableQuantity, art.CategorieID, art.CreatedAt, art.UpdatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperror.NewDuplicate("article", "name", art.Name).WithCause(err)
			case "23503":
				return apperror.NewNotFound("category", art.CategorieID.String()).WithCause(err)
			}
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retrieves an article with its category embedded.
func (r *ArticleRepo) GetByID(ctx context.Context, artID id.ID) (*article.Article, error) {
	q := builder().
		Select(articleJoinCols...).
		From(articleTable + " a").
		Join("categories c ON c.id = a.categorie_id").
		Where(squirrel.Eq{"a.id": artID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var art article.Article
	if err := pgxscan.Get(ctx, r.tm.GetQuerier(ctx), &art, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("article", artID.String())
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &art, nil
}

// GetForUpdate retrieves an article with a row lock. Must run inside a
// transaction or the lock is released immediately.
func (r *ArticleRepo) GetForUpdate(ctx context.Context, artID id.ID) (*article.Article, error) {
	q := builder().
		Select(articleCols...).
		From(articleTable).
		Where(squirrel.Eq{"id": artID}).
		Suffix("FOR UPDATE")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var art article.Article
	if err := pgxscan.Get(ctx, r.tm.GetQuerier(ctx), &art, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("article", artID.String())
		}
		return nil, fmt.Errorf("get article for update: %w", err)
	}
	return &art, nil
}

// List retrieves all articles with their categories embedded, ordered
// by name.
func (r *ArticleRepo) List(ctx context.Context) ([]*article.Article, error) {
	q := builder().
		Select(articleJoinCols...).
		From(articleTable + " a").
		Join("categories c ON c.id = a.categorie_id").
		OrderBy("a.name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var arts []*article.Article
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &arts, sql, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return arts, nil
}

// Update modifies an existing article. available_quantity is excluded:
// only the ledger moves it, through AdjustQuantity.
func (r *ArticleRepo) Update(ctx context.Context, art *article.Article) error {
	q := builder().
		Update(articleTable).
		Set("name", art.Name).
		Set("price_init", art.PriceInit).
		Set("price_sell", art.PriceSell).
		Set("categorie_id", art.CategorieID).
		Set("updated_at", art.UpdatedAt).
		Where(squirrel.Eq{"id": art.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewNotFound("category", art.CategorieID.String()).WithCause(err)
		}
		return fmt.Errorf("update article: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("article", art.ID.String())
	}
	return nil
}

// Delete removes an article. Movement rows go with it via ON DELETE
// CASCADE.
func (r *ArticleRepo) Delete(ctx context.Context, artID id.ID) error {
	q := builder().
		Delete(articleTable).
		Where(squirrel.Eq{"id": artID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("article", artID.String())
	}
	return nil
}

// ExistsByName checks if another article already uses the name.
func (r *ArticleRepo) ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	q := builder().
		Select("1").
		From(articleTable).
		Where(squirrel.Eq{"name": name}).
		Limit(1)
	if !id.IsNil(excludeID) {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.tm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("article exists by name: %w", err)
	}
	return true, nil
}

// AdjustQuantity applies a signed delta to available_quantity. The
// WHERE clause rejects any adjustment that would drive the quantity
// negative, as a second guard behind the ledger's availability check.
func (r *ArticleRepo) AdjustQuantity(ctx context.Context, artID id.ID, delta int64) error {
	q := builder().
		Update(articleTable).
		Set("available_quantity", squirrel.Expr("available_quantity + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": artID}).
		Where(squirrel.Expr("available_quantity + ? >= 0", delta))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build adjust: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return article.ErrQuantityGuard
	}
	return nil
}
