package pricing

import (
	"errors"
	"fmt"
)

// ErrInvalidServiceType is returned when service_type is not one of the
// known booking categories.
var ErrInvalidServiceType = errors.New("invalid service type")

const CodeInvalidServiceType = "invalid_service_type"

// Error carries a stable code for the HTTP boundary.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newInvalidServiceType(value string) error {
	return &Error{
		Code:    CodeInvalidServiceType,
		Message: fmt.Sprintf("unsupported service_type %q", value),
		Err:     ErrInvalidServiceType,
	}
}
