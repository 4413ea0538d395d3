package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// routeUnmatched labels requests that matched no route.
const routeUnmatched = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := wrapResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := routeUnmatched
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.ObserveHTTPRequest(r.Method, route, mw.statusOrOK(), time.Since(start))
	})
}
