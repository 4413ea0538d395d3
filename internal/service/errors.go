package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Messages of the business rules reported as BadInputError.
const (
	MsgPriorityMustBePositive = "priority must be positive"
)

// BadInputError reports input that passed request validation but breaks a
// business rule. Its message is meant to be shown to the client.
type BadInputError struct {
	Msg string
}

func NewBadInputError(msg string) *BadInputError {
	return &BadInputError{Msg: msg}
}

func (e *BadInputError) Error() string {
	return e.Msg
}
