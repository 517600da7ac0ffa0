package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// RequestIDHeader is read from incoming requests and echoed on responses.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID takes the caller's X-Request-Id (or generates a UUID when it is
// missing or oversized), stores it in the context and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Origin tags every request context with the transport name so service logs
// can tell REST calls from MCP tool calls.
func Origin(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithOrigin(r.Context(), name)))
		})
	}
}
