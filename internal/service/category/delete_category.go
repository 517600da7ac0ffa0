package category

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteCategory removes a category and every association to it.
// The notes that carried it are kept and their updatedAt is not touched.
func (s *Service) DeleteCategory(ctx context.Context, input DeleteCategoryInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, input.CategoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.Int64("category_id", input.CategoryID))

	return nil
}
