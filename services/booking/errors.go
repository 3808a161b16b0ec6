package booking

import (
	"errors"
	"fmt"
)

// ErrInvalidPaymentState is returned when a payment step does not fit the
// booking's current status.
var ErrInvalidPaymentState = errors.New("invalid payment state")

// ErrPaymentUnverified is returned when a payment confirmation cannot be
// matched to a paid checkout session.
var ErrPaymentUnverified = errors.New("payment not verified")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{
		Field:   field,
		Message: msg,
	}
}

func paymentStateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPaymentState, fmt.Sprintf(format, args...))
}

func paymentUnverifiedError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPaymentUnverified, fmt.Sprintf(format, args...))
}
