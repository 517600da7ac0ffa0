package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	return SeedCategoryNamed(t, pool, "category-"+UniqueSuffix())
}

// SeedCategoryNamed inserts a category with the given name.
func SeedCategoryNamed(t *testing.T, pool *pgxpool.Pool, name string) domain.Category {
	t.Helper()

	c := domain.Category{Name: name}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// NoteOption customizes a seeded note.
type NoteOption func(n *domain.Note)

// WithArchived marks the seeded note as archived.
func WithArchived() NoteOption {
	return func(n *domain.Note) { n.IsArchived = true }
}

// WithUpdatedAt overrides the seeded note's timestamps.
func WithUpdatedAt(ts time.Time) NoteOption {
	return func(n *domain.Note) {
		n.CreatedAt = ts
		n.UpdatedAt = ts
	}
}

// WithCategories links the seeded note to the given categories.
func WithCategories(cats ...domain.Category) NoteOption {
	return func(n *domain.Note) { n.Categories = append(n.Categories, cats...) }
}

// SeedNote inserts a note (and its category links) and returns it.
func SeedNote(t *testing.T, pool *pgxpool.Pool, opts ...NoteOption) domain.Note {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	n := domain.Note{
		Title:     "Note " + suffix,
		Content:   "Content " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&n)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO notes (title, content, is_archived, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		n.Title, n.Content, n.IsArchived, n.CreatedAt, n.UpdatedAt,
	).Scan(&n.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	for _, c := range n.Categories {
		_, err := pool.Exec(ctx,
			`INSERT INTO note_categories (note_id, category_id) VALUES ($1, $2)`,
			n.ID, c.ID,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedNote link category %d: %v", c.ID, err)
		}
	}

	return n
}

// CountNoteLinks returns the number of join rows for a category.
func CountNoteLinks(t *testing.T, pool *pgxpool.Pool, categoryID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM note_categories WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountNoteLinks: %v", err)
	}
	return n
}
