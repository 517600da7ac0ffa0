// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createSQL = `INSERT INTO categories (name) VALUES ($1) RETURNING id, name`

const getByIDSQL = `SELECT id, name FROM categories WHERE id = $1`

const listSQL = `SELECT id, name FROM categories ORDER BY id`

const findByNameSQL = `SELECT id, name FROM categories WHERE name = $1 ORDER BY id LIMIT 1`

const deleteSQL = `DELETE FROM categories WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.Category
	if err := querier.QueryRow(ctx, getByIDSQL, id).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// List returns every category in insertion order.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// GetByIDs returns the categories among ids that exist, ordered by id.
// Missing ids are silently skipped; the caller compares lengths.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "name").
		From("categories").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get categories by ids: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get categories by ids: %w", err)
	}
	defer rows.Close()

	result, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("get categories by ids: %w", err)
	}

	return result, nil
}

// FindByName returns the oldest category with exactly this name.
// Returns domain.ErrNotFound if no category has the name.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.Category
	if err := querier.QueryRow(ctx, findByNameSQL, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	return &c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a category and returns it with its generated id.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.Category
	if err := querier.QueryRow(ctx, createSQL, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	return &c, nil
}

// Delete removes a category. Its note_categories rows go with it via
// ON DELETE CASCADE; notes themselves are untouched.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCategories(rows pgx.Rows) ([]*domain.Category, error) {
	result := []*domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
