package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/idea-backlog/internal/validators"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// errTrailingData is reported when the body holds more than one JSON value.
var errTrailingData = errors.New("invalid character after top-level value")

// decodeJSONBody decodes the request body into dst. The body must hold exactly
// one JSON value. Malformed input is reported as a *validators.ValidationError
// located in the body.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return decodeError(dec, err)
	}

	offset := dec.InputOffset()
	var rest json.RawMessage
	switch err := dec.Decode(&rest); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return jsonInvalid(offset, errTrailingData)
	default:
		return decodeError(dec, err)
	}
}

func decodeError(dec *json.Decoder, err error) error {
	var (
		maxBytesErr  *http.MaxBytesError
		syntaxErr    *json.SyntaxError
		unmarshalErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)

	case errors.Is(err, io.EOF):
		return validators.NewValidationError(validators.Issue{
			Type:  validators.TypeMissing,
			Loc:   []any{validators.LocBody},
			Msg:   "Field required",
			Input: nil,
		})

	case errors.As(err, &syntaxErr):
		return jsonInvalid(syntaxErr.Offset, err)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return jsonInvalid(dec.InputOffset(), err)

	case errors.As(err, &unmarshalErr):
		return validators.NewValidationError(typeIssue(unmarshalErr))

	default:
		return jsonInvalid(dec.InputOffset(), err)
	}
}

func jsonInvalid(offset int64, err error) error {
	return validators.NewValidationError(validators.Issue{
		Type:  validators.TypeJSONInvalid,
		Loc:   []any{validators.LocBody, offset},
		Msg:   "JSON decode error",
		Input: map[string]any{},
		Ctx:   map[string]any{"error": err},
	})
}

// typeIssue reports a JSON value of the wrong type for its field.
func typeIssue(err *json.UnmarshalTypeError) validators.Issue {
	loc := []any{validators.LocBody}
	if err.Field != "" {
		for _, part := range strings.Split(err.Field, ".") {
			loc = append(loc, part)
		}
	}

	issue := validators.Issue{Loc: loc, Input: err.Value}
	switch err.Type.Kind() {
	case reflect.String:
		issue.Type, issue.Msg = validators.TypeStringType, "Input should be a valid string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		issue.Type, issue.Msg = validators.TypeIntType, "Input should be a valid integer"
	case reflect.Bool:
		issue.Type, issue.Msg = validators.TypeBoolType, "Input should be a valid boolean"
	default:
		issue.Type, issue.Msg = validators.TypeValueError, "Input has an invalid type"
	}

	return issue
}

// itemIDParam parses the {id} path parameter.
func itemIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validators.NewValidationError(validators.Issue{
			Type:  validators.TypeIntParsing,
			Loc:   []any{validators.LocPath, "id"},
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw,
		})
	}

	return id, nil
}
