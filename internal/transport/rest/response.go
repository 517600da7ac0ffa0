package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps a service error to an HTTP status and JSON body.
// Unexpected errors are logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]fieldResponse, len(verr.Errors))
		for i, fe := range verr.Errors {
			fields[i] = fieldResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
