package middleware

import (
	"net/http"

	"github.com/Abhinay9346/portfolio/internal/ctxkeys"
)

// WithURLPath stores the request path so views can mark the active page.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithURLPath(r.Context(), r.URL.Path)))
	})
}
