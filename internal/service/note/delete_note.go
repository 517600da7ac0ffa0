package note

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteNote removes a note and its associations. Categories are kept.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, input.NoteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted", slog.Int64("note_id", input.NoteID))

	return nil
}
