package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/heartmarshall/mynotes-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing for the
// browser frontend. Preflight requests are answered with 204 without reaching
// the wrapped handler.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.AllowedOriginList()
	wildcard := slices.Contains(origins, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			switch {
			case origin == "":
			case wildcard:
				// "*" is never combined with credentials.
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case slices.Contains(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
