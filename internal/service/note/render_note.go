package note

import (
	"bytes"
	"context"
	"fmt"
)

// RenderedNote is a note whose Markdown content has been converted to HTML.
type RenderedNote struct {
	NoteID int64
	Title  string
	HTML   string
}

// RenderNote converts a note's Markdown content to HTML.
// Raw HTML in the source is not passed through.
func (s *Service) RenderNote(ctx context.Context, noteID int64) (*RenderedNote, error) {
	n, err := s.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(n.Content), &buf); err != nil {
		return nil, fmt.Errorf("render note %d: %w", noteID, err)
	}

	return &RenderedNote{
		NoteID: n.ID,
		Title:  n.Title,
		HTML:   buf.String(),
	}, nil
}
