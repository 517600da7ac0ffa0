package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// ListCategories returns every category in creation order.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return categories, nil
}

// GetCategory returns a single category.
func (s *Service) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if categoryID <= 0 {
		return nil, domain.NewValidationError("category_id", "must be a positive id")
	}

	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}
