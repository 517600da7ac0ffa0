package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes groups the handlers mounted by NewRouter. MCP is optional.
type Routes struct {
	Notes      *NoteHandler
	Categories *CategoryHandler
	Health     *HealthHandler
	MCP        http.Handler
	MCPPath    string
}

// NewRouter builds the HTTP route table. Unknown paths and methods get JSON
// 404/405 responses.
func NewRouter(rt Routes) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/live", rt.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", rt.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", rt.Health.Health).Methods(http.MethodGet)

	r.HandleFunc("/notes", rt.Notes.List).Methods(http.MethodGet)
	r.HandleFunc("/notes", rt.Notes.Create).Methods(http.MethodPost)
	r.HandleFunc("/notes/{id}", rt.Notes.Get).Methods(http.MethodGet)
	r.HandleFunc("/notes/{id}", rt.Notes.Update).Methods(http.MethodPatch)
	r.HandleFunc("/notes/{id}", rt.Notes.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/notes/{id}/rendered", rt.Notes.Rendered).Methods(http.MethodGet)

	r.HandleFunc("/categories", rt.Categories.List).Methods(http.MethodGet)
	r.HandleFunc("/categories", rt.Categories.Create).Methods(http.MethodPost)
	r.HandleFunc("/categories/{id}", rt.Categories.Get).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id}", rt.Categories.Delete).Methods(http.MethodDelete)

	if rt.MCP != nil {
		r.Handle(rt.MCPPath, rt.MCP).Methods(http.MethodGet, http.MethodPost, http.MethodDelete)
	}

	return r
}
