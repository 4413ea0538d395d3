package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/idea-backlog/internal/store"
)

// errorStatuses lists lower-layer sentinels that are rendered as HTTP
// errors, checked in order. Everything else that is not a validation or
// bad-input error ends up as an internal error.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrItemNotFound, http.StatusNotFound},
	{store.ErrItemAlreadyExists, http.StatusConflict},

	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// asHTTPError finds an HTTP classification for err: an *HTTPError anywhere
// in its chain, or a sentinel from errorStatuses.
func asHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}

	for _, m := range errorStatuses {
		if errors.Is(err, m.target) {
			return statusError(m.status, m.target), true
		}
	}

	return nil, false
}

// statusError renders a mapped sentinel. Not-found keeps no detail: its
// envelope is fixed.
func statusError(status int, target error) *HTTPError {
	if status == http.StatusNotFound || status == http.StatusGatewayTimeout {
		return NewHTTPError(status, nil).WithCause(target)
	}

	return NewHTTPError(status, target.Error()).WithCause(target)
}
