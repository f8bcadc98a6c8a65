package middleware

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAnyOrigin = "*"
	corsMaxAge    = "86400" // 24h
)

var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}, ", ")
	// Last-Event-ID é reenviado pelo EventSource ao reconectar no stream
	corsHeaders = "Accept, Authorization, Content-Type, Last-Event-ID"
	// Content-Disposition traz o nome dos CSVs exportados
	corsExposed = "Content-Disposition"
)

func originAllowed(allowedOrigins []string, origin string) bool {
	return slices.Contains(allowedOrigins, corsAnyOrigin) || slices.Contains(allowedOrigins, origin)
}

// Cors libera as origens configuradas em CORS_ALLOWED_ORIGINS ("*" libera todas).
// Preflight de origem não liberada recebe 403.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && originAllowed(allowedOrigins, origin)

			if allowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Expose-Headers", corsExposed)
				h.Add("Vary", "Origin")
			}

			if r.Method != http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if origin != "" && !allowed {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Methods", corsMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
