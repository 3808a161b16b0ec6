package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

type stripeSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeProvider creates Stripe Checkout sessions.
type StripeProvider struct {
	sessions stripeSessionAPI
	logger   *zap.Logger
}

// NewStripeProvider builds a provider from a secret key.
func NewStripeProvider(apiKey string, logger *zap.Logger) (*StripeProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("stripe: api key is required")
	}
	sc := client.New(apiKey, nil)
	return newStripeProvider(sc.CheckoutSessions, logger), nil
}

func newStripeProvider(sessions stripeSessionAPI, logger *zap.Logger) *StripeProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StripeProvider{sessions: sessions, logger: logger}
}

// CreateCheckoutSession creates a one-line payment-mode Checkout session.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error) {
	if req.AmountCents <= 0 {
		return CheckoutSession{}, fmt.Errorf("stripe: invalid amount %d", req.AmountCents)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.BookingID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
	}
	params.Context = ctx
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		params.SetIdempotencyKey(key)
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if len(req.Metadata) > 0 {
		params.Metadata = make(map[string]string, len(req.Metadata))
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: make(map[string]string, len(req.Metadata)),
		}
		for k, v := range req.Metadata {
			params.Metadata[k] = v
			params.PaymentIntentData.Metadata[k] = v
		}
	}

	session, err := p.sessions.New(params)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("stripe: create checkout session: %w", err)
	}

	p.logger.Info("stripe checkout session created",
		zap.String("session_id", session.ID),
		zap.String("booking_id", req.BookingID),
		zap.Int64("amount_cents", req.AmountCents),
	)
	return CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// RetrieveCheckoutSession fetches a session and reports whether Stripe
// considers it paid.
func (p *StripeProvider) RetrieveCheckoutSession(ctx context.Context, id string) (SessionStatus, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SessionStatus{}, errors.New("stripe: session id is required")
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := p.sessions.Get(id, params)
	if err != nil {
		return SessionStatus{}, fmt.Errorf("stripe: retrieve checkout session %s: %w", id, err)
	}
	return SessionStatus{
		ID:          session.ID,
		Paid:        session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountCents: session.AmountTotal,
		Currency:    string(session.Currency),
		Reference:   session.ClientReferenceID,
	}, nil
}
