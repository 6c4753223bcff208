package middleware

import (
	"net/http"

	"github.com/Abhinay9346/portfolio/internal/config"
	"github.com/Abhinay9346/portfolio/internal/ctxkeys"
)

// Config puts the sanitized config into the request context.
// API keys and DB connection strings never reach templates.
func Config(cfg *config.Config) Middleware {
	public := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), public)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
