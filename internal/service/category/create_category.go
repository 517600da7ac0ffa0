package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// CreateCategory creates a new category. The name is trimmed;
// duplicate names are allowed.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(s.cfg.MaxCategoryNameLength); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	created, err := s.categories.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.Int64("category_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}
