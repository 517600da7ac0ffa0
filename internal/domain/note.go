package domain

import "time"

// Category is a named tag that can be attached to any number of notes.
// Names are not unique.
type Category struct {
	ID   int64
	Name string
}

// Note is a persisted text record with its associated categories.
type Note struct {
	ID         int64
	Title      string
	Content    string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Categories []Category
}

// CategoryIDs returns the ids of the note's categories in their current order.
func (n *Note) CategoryIDs() []int64 {
	ids := make([]int64, len(n.Categories))
	for i, c := range n.Categories {
		ids[i] = c.ID
	}
	return ids
}

// HasCategory reports whether the note is associated with the category.
func (n *Note) HasCategory(categoryID int64) bool {
	for _, c := range n.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// CategoryRef points at a category either by id or by name.
// When both are set the id is authoritative.
type CategoryRef struct {
	ID   *int64
	Name *string
}

// NoteFilter narrows ListNotes. Nil fields do not filter.
type NoteFilter struct {
	IsArchived *bool
	CategoryID *int64
}

// NoteUpdateParams carries the scalar columns of a partial note update.
// Nil fields keep their stored value.
type NoteUpdateParams struct {
	Title      *string
	Content    *string
	IsArchived *bool
	UpdatedAt  time.Time
}

// NoteCategory is one association row joined with its category.
type NoteCategory struct {
	NoteID int64
	Category
}
