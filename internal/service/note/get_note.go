package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// GetNote returns a single note with its categories.
func (s *Service) GetNote(ctx context.Context, noteID int64) (*domain.Note, error) {
	if noteID <= 0 {
		return nil, domain.NewValidationError("note_id", "must be a positive id")
	}

	var n *domain.Note
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.notes.GetByID(txCtx, noteID)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if err := s.loadCategories(txCtx, n); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return n, nil
}
