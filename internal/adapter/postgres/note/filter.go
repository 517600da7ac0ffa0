package note

import (
	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/mynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

var noteColumns = []string{
	"n.id", "n.title", "n.content", "n.is_archived", "n.created_at", "n.updated_at",
}

// buildListQuery turns a NoteFilter into a SELECT over notes.
// Filters combine with AND; a nil field does not constrain the result.
// Rows come back newest-updated first; equal timestamps fall back to
// insertion order (id ascending) so the order is total and stable.
func buildListQuery(filter domain.NoteFilter) squirrel.SelectBuilder {
	q := postgres.Builder().
		Select(noteColumns...).
		From("notes n")

	if filter.IsArchived != nil {
		q = q.Where(squirrel.Eq{"n.is_archived": *filter.IsArchived})
	}

	if filter.CategoryID != nil {
		q = q.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM note_categories nc WHERE nc.note_id = n.id AND nc.category_id = ?)",
			*filter.CategoryID,
		))
	}

	return q.OrderBy("n.updated_at DESC", "n.id ASC")
}
