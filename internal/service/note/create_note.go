package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// CreateNote stores a new note and its category associations atomically.
// createdAt and updatedAt are both set to the current time.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	now := s.timestamp()
	archived := input.IsArchived != nil && *input.IsArchived

	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cats, err := s.resolveCategories(txCtx, input.Categories)
		if err != nil {
			return err
		}

		created, err = s.notes.Create(txCtx, &domain.Note{
			Title:      strings.TrimSpace(input.Title),
			Content:    input.Content,
			IsArchived: archived,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		if _, err := s.notes.LinkCategories(txCtx, created.ID, categoryIDs(cats)); err != nil {
			return fmt.Errorf("link categories: %w", err)
		}

		created.Categories = cats
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note created",
		slog.Int64("note_id", created.ID),
		slog.Int("categories", len(created.Categories)),
		slog.Bool("archived", created.IsArchived),
	)

	return created, nil
}
