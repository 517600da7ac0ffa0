package note

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/mynotes-backend/internal/config"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// ListNotesInput holds the optional filters of ListNotes.
type ListNotesInput struct {
	IsArchived *bool
	CategoryID *int64
}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate() error {
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		return domain.NewValidationError("category", "must be a positive id")
	}
	return nil
}

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title      string
	Content    string
	IsArchived *bool // nil = active
	Categories []domain.CategoryRef
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate(cfg config.NotesConfig) error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title, cfg.MaxTitleLength)
	errs = validateContent(errs, i.Content)
	errs = validateRefs(errs, i.Categories, cfg.MaxCategoryNameLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput holds the parameters for updating a note.
// Nil scalar fields keep their stored value. Categories == nil keeps the
// current associations; a non-nil pointer replaces them entirely, so a
// pointer to an empty slice clears them.
type UpdateNoteInput struct {
	NoteID     int64
	Title      *string
	Content    *string
	IsArchived *bool
	Categories *[]domain.CategoryRef
}

// Validate checks all fields and collects all errors.
// An input with no fields set is valid and only refreshes updatedAt.
func (i UpdateNoteInput) Validate(cfg config.NotesConfig) error {
	var errs []domain.FieldError

	if i.NoteID <= 0 {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "must be a positive id"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title, cfg.MaxTitleLength)
	}
	if i.Content != nil {
		errs = validateContent(errs, *i.Content)
	}
	if i.Categories != nil {
		errs = validateRefs(errs, *i.Categories, cfg.MaxCategoryNameLength)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteNoteInput holds the parameters for deleting a note.
type DeleteNoteInput struct {
	NoteID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteNoteInput) Validate() error {
	if i.NoteID <= 0 {
		return domain.NewValidationError("note_id", "must be a positive id")
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string, maxLen int) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxLen {
		return append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

func validateContent(errs []domain.FieldError, content string) []domain.FieldError {
	if strings.TrimSpace(content) == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	return errs
}

func validateRefs(errs []domain.FieldError, refs []domain.CategoryRef, maxNameLen int) []domain.FieldError {
	for idx, ref := range refs {
		field := fmt.Sprintf("categories[%d]", idx)
		switch {
		case ref.ID != nil:
			if *ref.ID <= 0 {
				errs = append(errs, domain.FieldError{Field: field, Message: "id must be positive"})
			}
		case ref.Name != nil:
			name := strings.TrimSpace(*ref.Name)
			if name == "" {
				errs = append(errs, domain.FieldError{Field: field, Message: "name required"})
			} else if utf8.RuneCountInString(name) > maxNameLen {
				errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("name max %d characters", maxNameLen)})
			}
		default:
			errs = append(errs, domain.FieldError{Field: field, Message: "id or name required"})
		}
	}
	return errs
}
