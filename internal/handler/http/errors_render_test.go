// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-backlog/internal/service"
	"github.com/MKhiriev/idea-backlog/internal/store"
	"github.com/MKhiriev/idea-backlog/internal/validators"
)

const internalEnvelopeJSON = `{"code":"INTERNAL_ERROR","message":"Unexpected error","details":{}}`

func TestClassifyError_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantKind        string
		wantStatus      int
		wantContentType string
	}{
		{
			name:            "http 404",
			err:             NewHTTPError(http.StatusNotFound, nil),
			wantKind:        kindNotFound,
			wantStatus:      http.StatusNotFound,
			wantContentType: "application/json",
		},
		{
			name:            "store not found sentinel",
			err:             fmt.Errorf("error getting item: %w", store.ErrItemNotFound),
			wantKind:        kindNotFound,
			wantStatus:      http.StatusNotFound,
			wantContentType: "application/json",
		},
		{
			name:            "http 405",
			err:             NewHTTPError(http.StatusMethodNotAllowed, nil),
			wantKind:        kindHTTP,
			wantStatus:      http.StatusMethodNotAllowed,
			wantContentType: "application/json",
		},
		{
			name:            "duplicate item",
			err:             fmt.Errorf("%w: UNIQUE constraint failed", store.ErrItemAlreadyExists),
			wantKind:        kindHTTP,
			wantStatus:      http.StatusConflict,
			wantContentType: "application/json",
		},
		{
			name:            "body too large",
			err:             ErrRequestBodyTooLarge,
			wantKind:        kindHTTP,
			wantStatus:      http.StatusRequestEntityTooLarge,
			wantContentType: "application/json",
		},
		{
			name:            "deadline exceeded",
			err:             fmt.Errorf("%w: %w", store.ErrAcquiringConnection, context.DeadlineExceeded),
			wantKind:        kindHTTP,
			wantStatus:      http.StatusGatewayTimeout,
			wantContentType: "application/json",
		},
		{
			name:            "validation error",
			err:             validators.NewValidationError(validators.Issue{Type: validators.TypeMissing}),
			wantKind:        kindValidation,
			wantStatus:      http.StatusUnprocessableEntity,
			wantContentType: "application/json",
		},
		{
			name:            "wrapped validation error",
			err:             fmt.Errorf("error during item validation before saving: %w", validators.NewValidationError()),
			wantKind:        kindValidation,
			wantStatus:      http.StatusUnprocessableEntity,
			wantContentType: "application/json",
		},
		{
			name:            "bad input",
			err:             service.NewBadInputError("priority must be positive"),
			wantKind:        kindBadInput,
			wantStatus:      http.StatusBadRequest,
			wantContentType: "application/problem+json",
		},
		{
			name:            "generic error",
			err:             errors.New("disk on fire"),
			wantKind:        kindInternal,
			wantStatus:      http.StatusInternalServerError,
			wantContentType: "application/json",
		},
		{
			name:            "generic error wrapping http error is re-classified",
			err:             fmt.Errorf("middleware failed: %w", NewHTTPError(http.StatusTeapot, "short and stout")),
			wantKind:        kindHTTP,
			wantStatus:      http.StatusTeapot,
			wantContentType: "application/json",
		},
		{
			name:            "http error wins over validation error",
			err:             errors.Join(validators.NewValidationError(), NewHTTPError(http.StatusNotFound, nil)),
			wantKind:        kindNotFound,
			wantStatus:      http.StatusNotFound,
			wantContentType: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := classifyError(tt.err)

			assert.Equal(t, tt.wantKind, out.kind)
			assert.Equal(t, tt.wantStatus, out.status)
			assert.Equal(t, tt.wantContentType, out.contentType)
		})
	}
}

func TestRenderError_Bodies(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{
			name:     "not found",
			err:      store.ErrItemNotFound,
			wantBody: `{"error":{"code":"not_found"}}`,
		},
		{
			name:     "string detail is wrapped",
			err:      NewHTTPError(http.StatusConflict, "item already exists"),
			wantBody: `{"error":{"detail":"item already exists"}}`,
		},
		{
			name:     "nil detail falls back to status text",
			err:      NewHTTPError(http.StatusTooManyRequests, nil),
			wantBody: `{"error":{"detail":"Too Many Requests"}}`,
		},
		{
			name:     "literal without detail falls back to status text",
			err:      &HTTPError{Status: http.StatusServiceUnavailable},
			wantBody: `{"error":{"detail":"Service Unavailable"}}`,
		},
		{
			name:     "map detail is kept as is",
			err:      NewHTTPError(http.StatusForbidden, map[string]any{"reason": "locked"}),
			wantBody: `{"error":{"reason":"locked"}}`,
		},
		{
			name:     "list detail is wrapped",
			err:      NewHTTPError(http.StatusBadRequest, []string{"a", "b"}),
			wantBody: `{"error":{"detail":["a","b"]}}`,
		},
		{
			name:     "gateway timeout",
			err:      context.DeadlineExceeded,
			wantBody: `{"error":{"detail":"Gateway Timeout"}}`,
		},
		{
			name: "validation issues are sanitized",
			err: validators.NewValidationError(validators.Issue{
				Type:  validators.TypeJSONInvalid,
				Loc:   []any{validators.LocBody, 7},
				Msg:   "JSON decode error",
				Input: map[string]any{},
				Ctx:   map[string]any{"error": errors.New("unexpected end of JSON input")},
			}),
			wantBody: `{"error":{"code":"validation_error","details":[{"type":"json_invalid","loc":["body",7],"msg":"JSON decode error","input":{},"ctx":{"error":"unexpected end of JSON input"}}]}}`,
		},
		{
			name:     "bad input problem",
			err:      service.NewBadInputError("quantity must be positive"),
			wantBody: `{"type":"about:blank#bad-input","title":"Bad Request","status":400,"detail":"quantity must be positive"}`,
		},
		{
			name:     "internal",
			err:      errors.New("pq: password authentication failed for user admin"),
			wantBody: internalEnvelopeJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			h.renderError(rec, req, tt.err)

			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRenderError_UnencodableDetailFallsBackToInternalJSON(t *testing.T) {
	h, deps := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.renderError(rec, httptest.NewRequest(http.MethodGet, "/", nil), NewHTTPError(http.StatusConflict, make(chan int)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, internalEnvelopeJSON, rec.Body.String())
	assert.Equal(t, 1.0, promtest.ToFloat64(deps.metrics.ErrorResponsesTotal.WithLabelValues(kindInternal)))
}

// Shape D never depends on the fault's message.
func TestRenderError_InternalIgnoresMessage(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, msg := range []string{"", "boom", "secret=hunter2", `{"json":"inside"}`} {
		rec := httptest.NewRecorder()
		h.renderError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New(msg))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, internalEnvelopeJSON, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "hunter2")
	}
}

func TestRenderError_CountsKinds(t *testing.T) {
	h, deps := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	h.renderError(httptest.NewRecorder(), req, store.ErrItemNotFound)
	h.renderError(httptest.NewRecorder(), req, errors.New("x"))
	h.renderError(httptest.NewRecorder(), req, errors.New("y"))

	assert.Equal(t, 1.0, promtest.ToFloat64(deps.metrics.ErrorResponsesTotal.WithLabelValues(kindNotFound)))
	assert.Equal(t, 2.0, promtest.ToFloat64(deps.metrics.ErrorResponsesTotal.WithLabelValues(kindInternal)))
}

func TestHandle_NoErrorWritesNothingExtra(t *testing.T) {
	h, _ := newTestHandler(t)
	fn := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusAccepted)
		return nil
	})

	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPError(t *testing.T) {
	cause := errors.New("cause")
	err := NewHTTPError(http.StatusConflict, nil).WithCause(cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "Conflict", err.Detail)
	assert.Contains(t, err.Error(), "http 409")

	var target *HTTPError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
	assert.Equal(t, http.StatusConflict, target.Status)
}
