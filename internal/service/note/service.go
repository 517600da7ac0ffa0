// Package note implements note queries and mutations, including the
// note-to-category association lifecycle.
package note

import (
	"context"
	"log/slog"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/heartmarshall/mynotes-backend/internal/config"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

type noteRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Note, error)
	List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, id int64, params domain.NoteUpdateParams) (*domain.Note, error)
	Delete(ctx context.Context, id int64) error

	// M2M: note <-> category
	GetCategoriesByNoteIDs(ctx context.Context, noteIDs []int64) ([]domain.NoteCategory, error)
	LinkCategories(ctx context.Context, noteID int64, categoryIDs []int64) (int, error)
	UnlinkCategories(ctx context.Context, noteID int64, categoryIDs []int64) (int, error)
}

type categoryRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note operations.
type Service struct {
	notes      noteRepo
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
	cfg        config.NotesConfig
	md         goldmark.Markdown
	now        func() time.Time
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	categories categoryRepo,
	tx txManager,
	cfg config.NotesConfig,
) *Service {
	return &Service{
		notes:      notes,
		categories: categories,
		tx:         tx,
		log:        log.With("service", "note"),
		cfg:        cfg,
		md:         goldmark.New(goldmark.WithExtensions(extension.GFM)),
		now:        time.Now,
	}
}

// timestamp returns the current time as stored by Postgres (UTC, microseconds).
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// loadCategories fills in the categories of every note with one batch query.
func (s *Service) loadCategories(ctx context.Context, notes ...*domain.Note) error {
	if len(notes) == 0 {
		return nil
	}

	ids := make([]int64, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}

	links, err := s.notes.GetCategoriesByNoteIDs(ctx, ids)
	if err != nil {
		return err
	}

	attachCategories(notes, links)
	return nil
}

// attachCategories distributes join rows onto their notes, preserving the
// row order within each note. Notes without rows get an empty slice.
func attachCategories(notes []*domain.Note, links []domain.NoteCategory) {
	byNote := make(map[int64][]domain.Category, len(notes))
	for _, l := range links {
		byNote[l.NoteID] = append(byNote[l.NoteID], l.Category)
	}
	for _, n := range notes {
		cats := byNote[n.ID]
		if cats == nil {
			cats = []domain.Category{}
		}
		n.Categories = cats
	}
}
