package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withRequestTimeout bounds the handling time of a request. Handlers observe
// the deadline through the request context; one that gives up without
// writing a response gets a 504 envelope.
func (h *Handler) withRequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := wrapResponseWriter(w)
			next.ServeHTTP(tw, r.WithContext(ctx))

			if !tw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				h.renderError(tw, r, ctx.Err())
			}
		})
	}
}
