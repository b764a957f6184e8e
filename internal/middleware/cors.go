package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:8080",
	"test",
}

// Cors lets browser requests through only from the allowed origins. Requests without
// an Origin (curl, the CLI, MCP clients) are not cross-origin and pass as they are.
// Preflight OPTIONS requests are answered here.
func Cors(extraOrigins ...string) func(next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool)
	for _, o := range append(defaultAllowedOrigins, extraOrigins...) {
		allowedOrigins[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case origin == "":
				// same-origin or non-browser client
			case
				allowedOrigins[origin],
				// MCP clients running in a browser context
				strings.HasPrefix(r.URL.Path, "/mcp"):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Headers",
					"Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-Id, MCP-Protocol-Version, MCP-Session-Id",
				)
				w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
				w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-Id")
			default:
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
