package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	categorysvc "github.com/heartmarshall/mynotes-backend/internal/service/category"
)

// categoryService defines the category operations needed by CategoryHandler.
type categoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, input categorysvc.CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, input categorysvc.DeleteCategoryInput) error
}

// CategoryHandler serves the /categories endpoints.
type CategoryHandler struct {
	svc categoryService
	dec *requestDecoder
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) (*CategoryHandler, error) {
	dec, err := newRequestDecoder()
	if err != nil {
		return nil, err
	}
	return &CategoryHandler{svc: svc, dec: dec, log: logger.With("handler", "category")}, nil
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := h.dec.decode(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), categorysvc.CreateCategoryInput{Name: req.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// Delete handles DELETE /categories/{id}. Notes that carried the category
// lose the association; the notes themselves are kept.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), categorysvc.DeleteCategoryInput{CategoryID: id}); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(w, r, h.log, err)
}
