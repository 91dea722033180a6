// Package catalog_repo provides PostgreSQL implementations for catalog
// repositories.
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
	"gestock/internal/domain/catalogs/category"
	"gestock/internal/infrastructure/storage/postgres"
)

const categoryTable = "categories"

var categoryCols = []string{"id", "name", "description", "created_at", "updated_at"}

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	tm *postgres.TxManager
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(tm *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{tm: tm}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new category.
func (r *CategoryRepo) Create(ctx context.Context, cat *category.Category) error {
	q := builder().
		Insert(categoryTable).
		Columns(categoryCols...).
		Values(cat.ID, cat.Name, cat.Description, cat.CreatedAt, cat.UpdatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewDuplicate("category", "name", cat.Name).WithCause(err)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, catID id.ID) (*category.Category, error) {
	q := builder().
		Select(categoryCols...).
		From(categoryTable).
		Where(squirrel.Eq{"id": catID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cat category.Category
	if err := pgxscan.Get(ctx, r.tm.GetQuerier(ctx), &cat, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("category", catID.String())
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &cat, nil
}

// List retrieves all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	q := builder().
		Select(categoryCols...).
		From(categoryTable).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cats []*category.Category
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &cats, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Update modifies an existing category.
func (r *CategoryRepo) Update(ctx context.Context, cat *category.Category) error {
	q := builder().
		Update(categoryTable).
		Set("name", cat.Name).
		Set("description", cat.Description).
		Set("updated_at", cat.UpdatedAt).
		Where(squirrel.Eq{"id": cat.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("category", cat.ID.String())
	}
	return nil
}

// Delete removes a category. Owned articles go with it via ON DELETE
// CASCADE, so a foreign key violation here is unexpected.
func (r *CategoryRepo) Delete(ctx context.Context, catID id.ID) error {
	q := builder().
		Delete(categoryTable).
		Where(squirrel.Eq{"id": catID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewConflict("category is still referenced").
				WithDetail("id", catID.String()).
				WithCause(err)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("category", catID.String())
	}
	return nil
}

// Exists checks if a category exists.
func (r *CategoryRepo) Exists(ctx context.Context, catID id.ID) (bool, error) {
	q := builder().
		Select("1").
		From(categoryTable).
		Where(squirrel.Eq{"id": catID}).
		Limit(1)

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
		return false, fmt.Errorf("category exists: %w", err)
	}
	return true, nil
}

// ExistsByName checks if another category already uses the name.
func (r *CategoryRepo) ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	q := builder().
		Select("1").
		From(categoryTable).
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
		return false, fmt.Errorf("category exists by name: %w", err)
	}
	return true, nil
}
