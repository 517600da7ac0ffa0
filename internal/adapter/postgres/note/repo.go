// Package note implements the Note repository using PostgreSQL.
// It owns the notes table and the note_categories join table.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO notes (title, content, is_archived, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, title, content, is_archived, created_at, updated_at`

const getByIDSQL = `
SELECT id, title, content, is_archived, created_at, updated_at
FROM notes
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const deleteSQL = `DELETE FROM notes WHERE id = $1`

const getCategoriesByNoteIDsSQL = `
SELECT nc.note_id, c.id, c.name
FROM note_categories nc
JOIN categories c ON c.id = nc.category_id
WHERE nc.note_id = ANY($1::bigint[])
ORDER BY nc.note_id, c.id`

const unlinkCategoriesSQL = `
DELETE FROM note_categories
WHERE note_id = $1 AND category_id = ANY($2::bigint[])`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a note's scalar columns. Categories are not loaded.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetByIDForUpdate is GetByID that also takes a row lock held until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Note, error) {
	return r.getOne(ctx, getByIDForUpdateSQL, id)
}

func (r *Repo) getOne(ctx context.Context, query string, id int64) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	n, err := scanNote(querier.QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return n, nil
}

// List returns notes matching filter, ordered by updated_at DESC, id ASC.
// Categories are not loaded. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error) {
	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	result := []*domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return result, nil
}

// GetCategoriesByNoteIDs returns the categories of many notes in one query,
// grouped by note id and ordered by category id within each note.
func (r *Repo) GetCategoriesByNoteIDs(ctx context.Context, noteIDs []int64) ([]domain.NoteCategory, error) {
	if len(noteIDs) == 0 {
		return []domain.NoteCategory{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, getCategoriesByNoteIDsSQL, noteIDs)
	if err != nil {
		return nil, fmt.Errorf("get categories by note_ids: %w", err)
	}
	defer rows.Close()

	result := []domain.NoteCategory{}
	for rows.Next() {
		var c domain.NoteCategory
		if err := rows.Scan(&c.NoteID, &c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("get categories by note_ids: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get categories by note_ids: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the note's scalar columns. n.Categories is ignored;
// use LinkCategories in the same transaction.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanNote(querier.QueryRow(ctx, createSQL,
		n.Title, n.Content, n.IsArchived, n.CreatedAt, n.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "note", 0)
	}

	return created, nil
}

// Update applies the non-nil fields of params and bumps updated_at.
// updated_at becomes params.UpdatedAt, or one microsecond past its stored
// value if the clock has not moved past it, so every update is observable.
func (r *Repo) Update(ctx context.Context, id int64, params domain.NoteUpdateParams) (*domain.Note, error) {
	q := postgres.Builder().
		Update("notes").
		Set("updated_at", squirrel.Expr(
			"GREATEST(?::timestamptz, updated_at + interval '1 microsecond')",
			params.UpdatedAt.UTC(),
		)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, title, content, is_archived, created_at, updated_at")

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Content != nil {
		q = q.Set("content", *params.Content)
	}
	if params.IsArchived != nil {
		q = q.Set("is_archived", *params.IsArchived)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update note: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanNote(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return updated, nil
}

// Delete removes a note. Its note_categories rows go with it via
// ON DELETE CASCADE; categories themselves are untouched.
// Returns domain.ErrNotFound if the note does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// LinkCategories associates the note with every category in categoryIDs.
// Idempotent: existing links are skipped (ON CONFLICT DO NOTHING).
// A category id that does not exist yields a ValidationError on "categories".
func (r *Repo) LinkCategories(ctx context.Context, noteID int64, categoryIDs []int64) (int, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}

	q := postgres.Builder().
		Insert("note_categories").
		Columns("note_id", "category_id").
		Suffix("ON CONFLICT (note_id, category_id) DO NOTHING")
	for _, cid := range categoryIDs {
		q = q.Values(noteID, cid)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build link categories: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return 0, domain.NewValidationError("categories", "unknown category")
		}
		return 0, postgres.MapError(err, "note_category", noteID)
	}

	return int(tag.RowsAffected()), nil
}

// UnlinkCategories removes the note's links to categoryIDs.
// Links that do not exist are not an error.
func (r *Repo) UnlinkCategories(ctx context.Context, noteID int64, categoryIDs []int64) (int, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, unlinkCategoriesSQL, noteID, categoryIDs)
	if err != nil {
		return 0, postgres.MapError(err, "note_category", noteID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNote(row pgx.Row) (*domain.Note, error) {
	var (
		n         domain.Note
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &n.IsArchived, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	n.CreatedAt = createdAt.UTC()
	n.UpdatedAt = updatedAt.UTC()
	n.Categories = []domain.Category{}
	return &n, nil
}
