package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// UpdateNote merges the provided scalar fields into the note and, when
// Categories is set, replaces its associations with exactly that set.
// The note row stays locked until commit, so concurrent updates of the same
// note apply one after the other. updatedAt always moves forward.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	params := domain.NoteUpdateParams{
		Content:    input.Content,
		IsArchived: input.IsArchived,
		UpdatedAt:  s.timestamp(),
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}

	var (
		updated          *domain.Note
		linked, unlinked int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.notes.GetByIDForUpdate(txCtx, input.NoteID); err != nil {
			return fmt.Errorf("lock note: %w", err)
		}

		if input.Categories != nil {
			var err error
			linked, unlinked, err = s.replaceCategories(txCtx, input.NoteID, *input.Categories)
			if err != nil {
				return err
			}
		}

		var err error
		updated, err = s.notes.Update(txCtx, input.NoteID, params)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}

		if err := s.loadCategories(txCtx, updated); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note updated",
		slog.Int64("note_id", updated.ID),
		slog.Int("categories_linked", linked),
		slog.Int("categories_unlinked", unlinked),
	)

	return updated, nil
}

// replaceCategories rewrites the note's join rows so they match refs exactly,
// touching only the rows that differ.
func (s *Service) replaceCategories(ctx context.Context, noteID int64, refs []domain.CategoryRef) (linked, unlinked int, err error) {
	desired, err := s.resolveCategories(ctx, refs)
	if err != nil {
		return 0, 0, err
	}

	current, err := s.notes.GetCategoriesByNoteIDs(ctx, []int64{noteID})
	if err != nil {
		return 0, 0, fmt.Errorf("get current categories: %w", err)
	}
	currentIDs := make([]int64, len(current))
	for i, c := range current {
		currentIDs[i] = c.ID
	}

	add, remove := domain.DiffCategoryIDs(currentIDs, categoryIDs(desired))

	if unlinked, err = s.notes.UnlinkCategories(ctx, noteID, remove); err != nil {
		return 0, 0, fmt.Errorf("unlink categories: %w", err)
	}
	if linked, err = s.notes.LinkCategories(ctx, noteID, add); err != nil {
		return 0, 0, fmt.Errorf("link categories: %w", err)
	}

	return linked, unlinked, nil
}
