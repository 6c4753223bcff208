package middleware

import "net/http"

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so the middlewares run in the order given:
//
//	Chain(mux, Config(cfg), Nonce, SecurityHeaders)
//
// runs Config first and SecurityHeaders last, right before mux.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
