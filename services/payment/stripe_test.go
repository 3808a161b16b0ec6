package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type stubSessions struct {
	params  *stripe.CheckoutSessionParams
	fetched *stripe.CheckoutSession
	err     error
}

func (s *stubSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil
}

func (s *stubSessions) Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return s.fetched, nil
}

func TestStripeCreateCheckoutSession(t *testing.T) {
	stub := &stubSessions{}
	p := newStripeProvider(stub, nil)

	sess, err := p.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{
		BookingID:      "bk-1",
		Description:    "Bridal deposit (30%)",
		CustomerEmail:  "bride@example.com",
		Currency:       "CAD",
		AmountCents:    13051,
		SuccessURL:     "https://example.com/ok",
		CancelURL:      "https://example.com/cancel",
		IdempotencyKey: "bk-1-deposit",
		Metadata:       map[string]string{"booking_id": "bk-1", "kind": "deposit"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", sess.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", sess.URL)

	params := stub.params
	require.NotNil(t, params)
	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "bk-1", *params.ClientReferenceID)
	assert.Equal(t, "bride@example.com", *params.CustomerEmail)
	require.Len(t, params.LineItems, 1)
	assert.Equal(t, int64(13051), *params.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "cad", *params.LineItems[0].PriceData.Currency)
	assert.Equal(t, "deposit", params.Metadata["kind"])
	assert.Equal(t, "bk-1", params.PaymentIntentData.Metadata["booking_id"])
	require.NotNil(t, params.IdempotencyKey)
	assert.Equal(t, "bk-1-deposit", *params.IdempotencyKey)
}

func TestStripeRejectsZeroAmount(t *testing.T) {
	p := newStripeProvider(&stubSessions{}, nil)
	_, err := p.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{AmountCents: 0})
	assert.Error(t, err)
}

func TestStripeWrapsProviderError(t *testing.T) {
	boom := errors.New("card network down")
	p := newStripeProvider(&stubSessions{err: boom}, nil)
	_, err := p.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{AmountCents: 100})
	assert.True(t, errors.Is(err, boom))
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(13052), ToCents(130.52))
	// 30% of 435.05 is 130.51499999999999 in float64, below the half cent
	assert.Equal(t, int64(13051), ToCents(130.51499999999999))
	assert.Equal(t, int64(6780), ToCents(67.8))
	assert.Equal(t, int64(0), ToCents(0))
}

func TestUnconfigured(t *testing.T) {
	_, err := Unconfigured{}.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{})
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = Unconfigured{}.RetrieveCheckoutSession(context.Background(), "cs_test_123")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestStripeRetrieveCheckoutSession(t *testing.T) {
	stub := &stubSessions{fetched: &stripe.CheckoutSession{
		ID:                "cs_test_123",
		PaymentStatus:     stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal:       13051,
		Currency:          stripe.CurrencyCAD,
		ClientReferenceID: "bk-1",
	}}
	p := newStripeProvider(stub, nil)

	ctx := context.Background()
	st, err := p.RetrieveCheckoutSession(ctx, " cs_test_123 ")
	require.NoError(t, err)
	assert.Equal(t, SessionStatus{ID: "cs_test_123", Paid: true, AmountCents: 13051, Currency: "cad", Reference: "bk-1"}, st)
	assert.Equal(t, ctx, stub.params.Context)

	stub.fetched.PaymentStatus = stripe.CheckoutSessionPaymentStatusUnpaid
	st, err = p.RetrieveCheckoutSession(ctx, "cs_test_123")
	require.NoError(t, err)
	assert.False(t, st.Paid)

	_, err = p.RetrieveCheckoutSession(ctx, "")
	assert.Error(t, err)

	boom := errors.New("no such session")
	stub.err = boom
	_, err = p.RetrieveCheckoutSession(ctx, "cs_missing")
	assert.True(t, errors.Is(err, boom))
}
