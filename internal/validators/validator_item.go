package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/idea-backlog/models"
)

// Struct field names accepted for field-level scoping.
const (
	FieldName        = "Name"
	FieldDescription = "Description"
)

type ItemValidator struct {
	validate *validator.Validate
}

func NewItemValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// issues are reported with the json names clients send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &ItemValidator{validate: v}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemRequest:
		return v.validateStruct(ctx, LocBody, &value, fields...)
	case *models.ItemRequest:
		return v.validateStruct(ctx, LocBody, value, fields...)

	case models.LegacyItemRequest:
		return v.validateStruct(ctx, LocQuery, &value, fields...)
	case *models.LegacyItemRequest:
		return v.validateStruct(ctx, LocQuery, value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ItemValidator) validateStruct(ctx context.Context, loc string, obj any, fields ...string) error {
	if err := checkFields(obj, fields); err != nil {
		return err
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, issueFromFieldError(loc, fe))
	}

	return NewValidationError(issues...)
}

func checkFields(obj any, fields []string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func issueFromFieldError(loc string, fe validator.FieldError) Issue {
	issue := Issue{
		Loc:   []any{loc, fe.Field()},
		Input: inputValue(fe.Value()),
	}

	switch fe.Tag() {
	case "required":
		issue.Type = TypeMissing
		issue.Msg = "Field required"
		if issue.Input == "" {
			// an empty string is present, just too short
			issue.Type = TypeStringTooShort
			issue.Msg = "String should have at least 1 character"
			issue.Ctx = map[string]any{"min_length": 1}
		}
	case "min":
		n, _ := strconv.Atoi(fe.Param())
		issue.Type = TypeStringTooShort
		issue.Msg = fmt.Sprintf("String should have at least %d %s", n, plural(n, "character"))
		issue.Ctx = map[string]any{"min_length": n}
	case "max":
		n, _ := strconv.Atoi(fe.Param())
		issue.Type = TypeStringTooLong
		issue.Msg = fmt.Sprintf("String should have at most %d %s", n, plural(n, "character"))
		issue.Ctx = map[string]any{"max_length": n}
	default:
		issue.Type = TypeValueError
		issue.Msg = fmt.Sprintf("Value failed the %q rule", fe.Tag())
		issue.Ctx = map[string]any{"rule": fe.Tag(), "param": fe.Param()}
	}

	return issue
}

// inputValue unwraps pointers; a nil pointer means the value was absent.
func inputValue(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}

	return rv.Interface()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
