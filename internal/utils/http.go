// Package utils provides general-purpose helpers shared by the HTTP layer
// and the command-line entry point: JSON response writing, the resty-based
// HTTP client and trace id generation.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/idea-backlog/internal/app"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeProblemJSON = "application/problem+json"
)

// ErrEncodingJSON is returned when the response payload cannot be marshaled.
var ErrEncodingJSON = errors.New("error writing data to JSON")

// internalErrorJSON is sent instead of a payload that cannot be marshaled.
const internalErrorJSON = `{"code":"` + app.CodeInternalError + `","message":"` + app.MsgUnexpectedError + `","details":{}}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error and the
// fixed internal error envelope, and returns an error wrapping ErrEncodingJSON.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return WriteJSONAs(w, data, statusCode, ContentTypeJSON)
}

// WriteJSONAs is WriteJSON with a caller-chosen Content-Type, e.g.
// application/problem+json.
func WriteJSONAs(w http.ResponseWriter, data any, statusCode int, contentType string) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorJSON))
		return 0, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
