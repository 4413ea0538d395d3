package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Issue types.
const (
	TypeMissing        = "missing"
	TypeStringTooShort = "string_too_short"
	TypeStringTooLong  = "string_too_long"
	TypeIntParsing     = "int_parsing"
	TypeJSONInvalid    = "json_invalid"
	TypeValueError     = "value_error"
	TypeStringType     = "string_type"
	TypeIntType        = "int_type"
	TypeBoolType       = "bool_type"
)

// Issue locations, the first element of Issue.Loc.
const (
	LocBody  = "body"
	LocQuery = "query"
	LocPath  = "path"
)

// Issue describes one rejected input value.
type Issue struct {
	Type  string         `json:"type"`
	Loc   []any          `json:"loc"`
	Msg   string         `json:"msg"`
	Input any            `json:"input"`
	Ctx   map[string]any `json:"ctx,omitempty"`
}

// Sanitized returns a copy of the issue where every error value in Ctx is
// replaced by its message, so the issue can be serialized as plain JSON.
func (i Issue) Sanitized() Issue {
	if len(i.Ctx) == 0 {
		return i
	}

	ctx := make(map[string]any, len(i.Ctx))
	for k, v := range i.Ctx {
		if err, ok := v.(error); ok {
			ctx[k] = err.Error()
			continue
		}
		ctx[k] = v
	}
	i.Ctx = ctx

	return i
}

// ValidationError is returned when request input breaks one or more rules.
type ValidationError struct {
	Issues []Issue
}

// NewValidationError builds a ValidationError from issues.
func NewValidationError(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%v: %s", issue.Loc, issue.Msg))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
