// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/idea-backlog/internal/logger"
)

// withRecovery turns a panic into an error envelope: an HTTP error panic
// value keeps its own shape, anything else becomes an internal error. When the
// handler already started the response nothing more is written.
// http.ErrAbortHandler is re-raised so that net/http aborts the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapResponseWriter(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecovery").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			h.renderError(rw, r, panicError(rec))
		}()

		next.ServeHTTP(rw, r)
	})
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanicRecovered, err)
	}
	return fmt.Errorf("%w: %v", ErrPanicRecovered, rec)
}
