package rest

import (
	"time"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

type categoryRefRequest struct {
	ID   *int64  `json:"id"   validate:"omitnil,gt=0"`
	Name *string `json:"name" validate:"required_without=ID"`
}

type createNoteRequest struct {
	Title      string               `json:"title"      validate:"required"`
	Content    string               `json:"content"    validate:"required"`
	IsArchived *bool                `json:"isArchived"`
	Categories []categoryRefRequest `json:"categories" validate:"omitempty,dive"`
}

// updateNoteRequest is a partial update: absent fields keep their value.
// A present "categories" array replaces the note's categories.
type updateNoteRequest struct {
	Title      *string               `json:"title"`
	Content    *string               `json:"content"`
	IsArchived *bool                 `json:"isArchived"`
	Categories *[]categoryRefRequest `json:"categories" validate:"omitempty,dive"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type noteResponse struct {
	ID         int64              `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	IsArchived bool               `json:"isArchived"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	Categories []categoryResponse `json:"categories"`
}

type renderedNoteResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}

func toCategoryRefs(in []categoryRefRequest) []domain.CategoryRef {
	out := make([]domain.CategoryRef, len(in))
	for i, ref := range in {
		out[i] = domain.CategoryRef{ID: ref.ID, Name: ref.Name}
	}
	return out
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toCategoryResponses(cats []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cats))
	for i, c := range cats {
		out[i] = toCategoryResponse(*c)
	}
	return out
}

func toNoteResponse(n *domain.Note) noteResponse {
	cats := make([]categoryResponse, len(n.Categories))
	for i, c := range n.Categories {
		cats[i] = toCategoryResponse(c)
	}
	return noteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		IsArchived: n.IsArchived,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Categories: cats,
	}
}

func toNoteResponses(notes []*domain.Note) []noteResponse {
	out := make([]noteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}
