// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors raised by the HTTP layer itself.
var (
	// ErrRequestBodyTooLarge is returned when a request body exceeds
	// maxRequestBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrPanicRecovered wraps a panic value recovered by withRecovery.
	ErrPanicRecovered = errors.New("panic recovered")
)

// HTTPError is a failure that carries its own HTTP status.
//
// Detail is rendered as the "error" member of the envelope when it is a map,
// otherwise it is wrapped as {"detail": Detail}. A nil Detail falls back to
// the status text. Err is the optional cause; it is never rendered.
type HTTPError struct {
	Status int
	Detail any
	Err    error
}

// NewHTTPError builds an HTTPError. A nil detail renders as the status text.
func NewHTTPError(status int, detail any) *HTTPError {
	if detail == nil {
		detail = http.StatusText(status)
	}

	return &HTTPError{
		Status: status,
		Detail: detail,
	}
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("http %d: %v: %v", e.Status, e.Detail, e.Err)
	}
	return fmt.Sprintf("http %d: %v", e.Status, e.Detail)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// WithCause returns a copy of e carrying err as its cause.
func (e *HTTPError) WithCause(err error) *HTTPError {
	cp := *e
	cp.Err = err
	return &cp
}
