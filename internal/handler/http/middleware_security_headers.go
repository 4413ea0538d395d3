// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/idea-backlog/internal/config"
)

const (
	headerCSP                       = "Content-Security-Policy"
	headerFrameOptions              = "X-Frame-Options"
	headerContentTypeOptions        = "X-Content-Type-Options"
	headerPermissionsPolicy         = "Permissions-Policy"
	headerCrossOriginOpenerPolicy   = "Cross-Origin-Opener-Policy"
	headerCrossOriginEmbedderPolicy = "Cross-Origin-Embedder-Policy"
	headerCrossOriginResourcePolicy = "Cross-Origin-Resource-Policy"
	headerCacheControl              = "Cache-Control"
)

// securityHeaders is the fixed header set attached to every response.
// The order is stable so that responses are byte-identical.
type securityHeaders [][2]string

// newSecurityHeaders computes the header set once, at handler construction.
func newSecurityHeaders(cfg config.Security) securityHeaders {
	return securityHeaders{
		{headerCSP, contentSecurityPolicy(cfg.CSPAllowedCDN, cfg.CSPRelaxed)},
		{headerFrameOptions, "DENY"},
		{headerContentTypeOptions, "nosniff"},
		{headerPermissionsPolicy, "geolocation=(), microphone=(), camera=()"},
		{headerCrossOriginOpenerPolicy, "same-origin"},
		{headerCrossOriginEmbedderPolicy, "require-corp"},
		{headerCrossOriginResourcePolicy, "same-origin"},
		{headerCacheControl, "no-store"},
	}
}

// contentSecurityPolicy builds the CSP value. cdn is an extra allowed source
// for scripts and styles. The relaxed policy allows inline styles and has no
// form-action directive.
func contentSecurityPolicy(cdn string, relaxed bool) string {
	src := func(extra ...string) string {
		parts := append([]string{"'self'"}, extra...)
		if cdn != "" {
			parts = append(parts, cdn)
		}
		return strings.Join(parts, " ")
	}

	directives := []string{
		"default-src 'self'",
		"img-src 'self' data:",
		"script-src " + src(),
	}
	if relaxed {
		directives = append(directives, "style-src "+src("'unsafe-inline'"))
	} else {
		directives = append(directives, "style-src "+src())
	}
	directives = append(directives,
		"connect-src 'self'",
		"frame-ancestors 'none'",
	)
	if !relaxed {
		directives = append(directives, "form-action 'self'")
	}

	return strings.Join(directives, "; ") + ";"
}

// apply overwrites the security headers on h, replacing whatever an inner
// handler may have set.
func (s securityHeaders) apply(h http.Header) {
	for _, kv := range s {
		h.Set(kv[0], kv[1])
	}
}

// withSecurityHeaders attaches the security headers to every response,
// whatever produced it: a route, the error renderer, the recovery middleware
// or a handler that wrote nothing at all.
func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &securityHeadersWriter{ResponseWriter: w, headers: h.securityHeaders}
		next.ServeHTTP(sw, r)
		sw.ensureApplied()
	})
}

// securityHeadersWriter applies the headers right before the status line
// goes out.
type securityHeadersWriter struct {
	http.ResponseWriter
	headers securityHeaders
	applied bool
}

func (w *securityHeadersWriter) ensureApplied() {
	if w.applied {
		return
	}
	w.applied = true
	w.headers.apply(w.ResponseWriter.Header())
}

func (w *securityHeadersWriter) WriteHeader(statusCode int) {
	w.ensureApplied()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *securityHeadersWriter) Write(b []byte) (int, error) {
	w.ensureApplied()
	return w.ResponseWriter.Write(b)
}

func (w *securityHeadersWriter) Flush() {
	w.ensureApplied()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *securityHeadersWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
