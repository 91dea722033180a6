package article

import (
	"context"
	"fmt"
	"time"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/pkg/logger"
)

// CategoryChecker verifies that a referenced category exists.
// Satisfied by category.Repository.
type CategoryChecker interface {
	Exists(ctx context.Context, catID id.ID) (bool, error)
}

// Service provides business logic for the Article catalog.
type Service struct {
	repo       Repository
	categories CategoryChecker
}

// NewService creates a new Article service.
func NewService(repo Repository, categories CategoryChecker) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
	}
}

// Create validates and persists a new article.
// The sale price is derived from the cost price here, never accepted
// from the caller.
func (s *Service) Create(ctx context.Context, art *Article) error {
	art.PriceSell = SellPrice(art.PriceInit)

	if err := art.Validate(ctx); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, art); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, art); err != nil {
		return fmt.Errorf("create article: %w", err)
	}

	logger.Info(ctx, "article created",
		"id", art.ID,
		"name", art.Name,
		"price_sell", art.PriceSell,
	)
	return nil
}

// GetByID retrieves an article with its category.
func (s *Service) GetByID(ctx context.Context, artID id.ID) (*Article, error) {
	return s.repo.GetByID(ctx, artID)
}

// List retrieves all articles with their categories.
func (s *Service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.List(ctx)
}

// Update validates and persists changes to an existing article.
// PriceSell is always re-derived so it can never drift from PriceInit.
func (s *Service) Update(ctx context.Context, art *Article) error {
	art.PriceSell = SellPrice(art.PriceInit)

	if err := art.Validate(ctx); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, art); err != nil {
		return err
	}

	art.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, art); err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	logger.Info(ctx, "article updated", "id", art.ID)
	return nil
}

// Delete removes an article and, through the cascade, its movement history.
func (s *Service) Delete(ctx context.Context, artID id.ID) error {
	if err := s.repo.Delete(ctx, artID); err != nil {
		return err
	}

	logger.Info(ctx, "article deleted", "id", artID)
	return nil
}

// checkReferences enforces name uniqueness and category existence.
func (s *Service) checkReferences(ctx context.Context, art *Article) error {
	dup, err := s.repo.ExistsByName(ctx, art.Name, art.ID)
	if err != nil {
		return fmt.Errorf("check name uniqueness: %w", err)
	}
	if dup {
		return apperror.NewDuplicate("article", "name", art.Name)
	}

	ok, err := s.categories.Exists(ctx, art.CategorieID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return apperror.NewNotFound("category", art.CategorieID.String())
	}
	return nil
}
