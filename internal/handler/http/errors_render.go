// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/MKhiriev/idea-backlog/internal/app"
	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/service"
	"github.com/MKhiriev/idea-backlog/internal/utils"
	"github.com/MKhiriev/idea-backlog/internal/validators"
)

// Error kinds, used as the metrics label of a rendered envelope.
const (
	kindNotFound   = "not_found"
	kindHTTP       = "http_error"
	kindValidation = "validation_error"
	kindBadInput   = "bad_input"
	kindInternal   = "internal"
)

// handlerFunc is an HTTP handler that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc, rendering any returned error.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.renderError(w, r, err)
		}
	}
}

type codeBody struct {
	Code string `json:"code"`
}

type notFoundEnvelope struct {
	Error codeBody `json:"error"`
}

type httpErrorEnvelope struct {
	Error any `json:"error"`
}

type validationBody struct {
	Code    string             `json:"code"`
	Details []validators.Issue `json:"details"`
}

type validationEnvelope struct {
	Error validationBody `json:"error"`
}

type internalEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details struct{} `json:"details"`
}

// problem is an RFC 7807 problem detail.
type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// rendered is the outcome of classifying one failure.
type rendered struct {
	kind        string
	status      int
	body        any
	contentType string
}

// classifyError picks exactly one envelope for err. HTTP errors win over
// validation errors, which win over bad input; anything else is internal.
// A generic error wrapping an HTTP error is classified by the wrapped one.
func classifyError(err error) rendered {
	if httpErr, ok := asHTTPError(err); ok {
		if httpErr.Status == http.StatusNotFound {
			return rendered{
				kind:        kindNotFound,
				status:      http.StatusNotFound,
				body:        notFoundEnvelope{Error: codeBody{Code: app.CodeNotFound}},
				contentType: utils.ContentTypeJSON,
			}
		}
		return rendered{
			kind:        kindHTTP,
			status:      httpErr.Status,
			body:        httpErrorEnvelope{Error: errorDetail(httpErr.Status, httpErr.Detail)},
			contentType: utils.ContentTypeJSON,
		}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]validators.Issue, 0, len(validationErr.Issues))
		for _, issue := range validationErr.Issues {
			details = append(details, issue.Sanitized())
		}
		return rendered{
			kind:   kindValidation,
			status: http.StatusUnprocessableEntity,
			body: validationEnvelope{Error: validationBody{
				Code:    app.CodeValidationError,
				Details: details,
			}},
			contentType: utils.ContentTypeJSON,
		}
	}

	var badInput *service.BadInputError
	if errors.As(err, &badInput) {
		return rendered{
			kind:   kindBadInput,
			status: http.StatusBadRequest,
			body: problem{
				Type:   app.ProblemTypeBadInput,
				Title:  app.ProblemTitleBadRequest,
				Status: http.StatusBadRequest,
				Detail: badInput.Msg,
			},
			contentType: utils.ContentTypeProblemJSON,
		}
	}

	return rendered{
		kind:   kindInternal,
		status: http.StatusInternalServerError,
		body: internalEnvelope{
			Code:    app.CodeInternalError,
			Message: app.MsgUnexpectedError,
		},
		contentType: utils.ContentTypeJSON,
	}
}

// errorDetail keeps mapping payloads as they are and wraps anything else.
// A nil detail becomes the status text.
func errorDetail(status int, detail any) any {
	if detail == nil {
		detail = http.StatusText(status)
	}

	v := reflect.ValueOf(detail)
	if v.IsValid() && (v.Kind() == reflect.Map || (v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Map)) {
		return detail
	}

	return map[string]any{"detail": detail}
}

// renderError is the single place where failures become responses.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	out := classifyError(err)

	if out.kind == kindInternal {
		log.Err(err).Str("func", "*Handler.renderError").Msg("unexpected error")
	} else {
		log.Debug().Err(err).Str("kind", out.kind).Int("status", out.status).Msg("request failed")
	}

	_, writeErr := utils.WriteJSONAs(w, out.body, out.status, out.contentType)
	if errors.Is(writeErr, utils.ErrEncodingJSON) {
		// the fixed internal envelope went out instead
		out.kind = kindInternal
	}
	if writeErr != nil {
		log.Err(writeErr).Str("func", "*Handler.renderError").Msg("error writing error envelope")
	}

	h.metrics.ObserveErrorResponse(out.kind)
}
