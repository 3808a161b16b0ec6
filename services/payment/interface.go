package payment

import (
	"context"
	"errors"
	"math"
)

// ErrNotConfigured is returned when no payment provider key is set.
var ErrNotConfigured = errors.New("payment: provider not configured")

// CheckoutSessionRequest describes one hosted-checkout payment.
type CheckoutSessionRequest struct {
	BookingID      string
	Description    string
	CustomerEmail  string
	Currency       string
	AmountCents    int64
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
	Metadata       map[string]string
}

// CheckoutSession is the provider's session and the page to redirect to.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionStatus is what the processor reports for an existing session.
type SessionStatus struct {
	ID          string
	Paid        bool
	AmountCents int64
	Currency    string
	Reference   string
}

// Provider creates checkout sessions with a payment processor and reads
// back their payment state.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
	RetrieveCheckoutSession(ctx context.Context, id string) (SessionStatus, error)
}

// ToCents converts a dollar amount to the smallest currency unit.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Unconfigured rejects every request. Used when STRIPE_KEY is empty.
type Unconfigured struct{}

func (Unconfigured) CreateCheckoutSession(context.Context, CheckoutSessionRequest) (CheckoutSession, error) {
	return CheckoutSession{}, ErrNotConfigured
}

func (Unconfigured) RetrieveCheckoutSession(context.Context, string) (SessionStatus, error) {
	return SessionStatus{}, ErrNotConfigured
}
