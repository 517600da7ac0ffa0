package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// ListNotes returns the notes matching every given filter, most recently
// updated first, with their categories populated. Notes and categories are
// read from a single snapshot.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) ([]*domain.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.NoteFilter{
		IsArchived: input.IsArchived,
		CategoryID: input.CategoryID,
	}

	var notes []*domain.Note
	err := s.tx.RunInReadTx(ctx, func(txCtx context.Context) error {
		var err error
		notes, err = s.notes.List(txCtx, filter)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}

		if err := s.loadCategories(txCtx, notes...); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []*domain.Note{}
	}
	return notes, nil
}
