// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// routableMethods are probed when building the Allow header.
var routableMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// checkHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi invokes it when the request path matches a registered route but the
// HTTP method is not handled. The handler lists the methods that the path
// does accept in the Allow header and renders a 405 error envelope, so the
// response goes through the same normalization as every other failure.
//
// The lookup asks router to match the raw request path
// ([http.Request.URL.Path]) for each method in routableMethods, so
// parameterised segments such as /api/items/{id} are expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(h.checkHTTPMethod(router))
//	// ... register routes ...
func (h *Handler) checkHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		return NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}

func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range routableMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
