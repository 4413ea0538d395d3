// Package http implements the HTTP transport layer of the idea-backlog
// service.
//
// It exposes route wiring, request handlers and middleware. Handlers return
// an error instead of writing failures themselves; the error-normalization
// layer (errors_render.go) turns every error into exactly one JSON envelope.
// The security-header middleware wraps the whole chain and rewrites a fixed
// set of response headers at the moment the status line is sent.
package http
