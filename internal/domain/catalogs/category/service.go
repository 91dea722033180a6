package category

import (
	"context"
	"fmt"
	"time"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/pkg/logger"
)

// Service provides business logic for the Category catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new category.
func (s *Service) Create(ctx context.Context, cat *Category) error {
	if err := cat.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByName(ctx, cat.Name, cat.ID)
	if err != nil {
		return fmt.Errorf("check name uniqueness: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("category", "name", cat.Name)
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	logger.Info(ctx, "category created", "id", cat.ID, "name", cat.Name)
	return nil
}

// GetByID retrieves a category.
func (s *Service) GetByID(ctx context.Context, catID id.ID) (*Category, error) {
	return s.repo.GetByID(ctx, catID)
}

// List retrieves all categories.
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// Update validates and persists changes to an existing category.
func (s *Service) Update(ctx context.Context, cat *Category) error {
	if err := cat.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByName(ctx, cat.Name, cat.ID)
	if err != nil {
		return fmt.Errorf("check name uniqueness: %w", err)
	}
	if exists {
		return apperror.NewDuplicate("category", "name", cat.Name)
	}

	cat.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, cat); err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	logger.Info(ctx, "category updated", "id", cat.ID)
	return nil
}

// Delete removes a category and, through the cascade, its articles
// and their movement history.
func (s *Service) Delete(ctx context.Context, catID id.ID) error {
	if err := s.repo.Delete(ctx, catID); err != nil {
		return err
	}

	logger.Info(ctx, "category deleted", "id", catID)
	return nil
}
