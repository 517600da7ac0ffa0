package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	notesvc "github.com/heartmarshall/mynotes-backend/internal/service/note"
)

// noteService defines the note operations needed by NoteHandler.
type noteService interface {
	ListNotes(ctx context.Context, input notesvc.ListNotesInput) ([]*domain.Note, error)
	GetNote(ctx context.Context, noteID int64) (*domain.Note, error)
	RenderNote(ctx context.Context, noteID int64) (*notesvc.RenderedNote, error)
	CreateNote(ctx context.Context, input notesvc.CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input notesvc.UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, input notesvc.DeleteNoteInput) error
}

// NoteHandler serves the /notes endpoints.
type NoteHandler struct {
	svc noteService
	dec *requestDecoder
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc noteService, logger *slog.Logger) (*NoteHandler, error) {
	dec, err := newRequestDecoder()
	if err != nil {
		return nil, err
	}
	return &NoteHandler{svc: svc, dec: dec, log: logger.With("handler", "note")}, nil
}

// List handles GET /notes?archived=<bool>&category=<id>.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	archived, err := queryBool(r, "archived")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	categoryID, err := queryID(r, "category")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), notesvc.ListNotesInput{
		IsArchived: archived,
		CategoryID: categoryID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Rendered handles GET /notes/{id}/rendered.
func (h *NoteHandler) Rendered(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out, err := h.svc.RenderNote(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, renderedNoteResponse{ID: out.NoteID, Title: out.Title, HTML: out.HTML})
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := h.dec.decode(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	n, err := h.svc.CreateNote(r.Context(), notesvc.CreateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		IsArchived: req.IsArchived,
		Categories: toCategoryRefs(req.Categories),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// Update handles PATCH /notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateNoteRequest
	if err := h.dec.decode(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	input := notesvc.UpdateNoteInput{
		NoteID:     id,
		Title:      req.Title,
		Content:    req.Content,
		IsArchived: req.IsArchived,
	}
	if req.Categories != nil {
		refs := toCategoryRefs(*req.Categories)
		input.Categories = &refs
	}

	n, err := h.svc.UpdateNote(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), notesvc.DeleteNoteInput{NoteID: id}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	handleError(w, r, h.log, err)
}
