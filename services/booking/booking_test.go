package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"glambook/database"
	"glambook/database/repository"
	"glambook/models"
	"glambook/services/payment"
	"glambook/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayments struct {
	requests []payment.CheckoutSessionRequest
	sessions map[string]payment.SessionStatus
	err      error
}

func (s *stubPayments) CreateCheckoutSession(_ context.Context, req payment.CheckoutSessionRequest) (payment.CheckoutSession, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return payment.CheckoutSession{}, s.err
	}
	id := "cs_" + req.IdempotencyKey
	if s.sessions == nil {
		s.sessions = map[string]payment.SessionStatus{}
	}
	s.sessions[id] = payment.SessionStatus{ID: id, Paid: true, AmountCents: req.AmountCents, Currency: req.Currency, Reference: req.BookingID}
	return payment.CheckoutSession{ID: id, URL: "https://pay.example/" + req.IdempotencyKey}, nil
}

func (s *stubPayments) RetrieveCheckoutSession(_ context.Context, id string) (payment.SessionStatus, error) {
	st, ok := s.sessions[id]
	if !ok {
		return payment.SessionStatus{}, errors.New("no such checkout session")
	}
	return st, nil
}

func newTestService(t *testing.T) (*DefaultBookingService, *stubPayments) {
	t.Helper()
	pay := &stubPayments{}
	svc := NewBookingService(
		pricing.NewEngine(nil, nil),
		repository.NewStoreBookingRepo(database.NewMemoryStore()),
		pay,
		CheckoutConfig{Currency: "cad", SuccessURL: "https://example.com/ok", CancelURL: "https://example.com/no"},
		nil,
	)
	svc.Now = func() time.Time { return time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC) }
	svc.NewID = func() string { return "bk-1" }
	return svc, pay
}

func studioHairOnly() models.QuoteRequest {
	return models.QuoteRequest{
		BookingSelection: models.BookingSelection{
			ServiceType:  "Bridal",
			ServiceMode:  "Studio Service",
			BrideService: "Hair Only",
			FirstName:    "Amira",
			Email:        "amira@example.com",
		},
		Artist: "Lead",
	}
}

func TestQuoteBothTiers(t *testing.T) {
	svc, _ := newTestService(t)
	dq, err := svc.Quote(context.Background(), models.BookingSelection{
		ServiceType:  "Bridal",
		ServiceMode:  "Mobile Makeup Artist",
		Region:       "Toronto/GTA",
		BrideService: "Both Hair & Makeup",
	})
	require.NoError(t, err)
	assert.InDelta(t, 385.0, dq.Team.Subtotal, 1e-9)
	assert.InDelta(t, 500.0, dq.Lead.Subtotal, 1e-9)
	assert.Same(t, dq.Lead, dq.For(pricing.TierLead))

	resp := dq.Response()
	assert.Equal(t, resp.Team, resp.QuoteResponse)
	assert.Equal(t, 385.0, resp.Subtotal)
	assert.Equal(t, 500.0, resp.Lead.Subtotal)
	assert.Equal(t, "Bridal", resp.ServiceType)
	assert.Nil(t, resp.Warnings)
}

func TestQuoteRejectsUnknownServiceType(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Quote(context.Background(), models.BookingSelection{ServiceType: "Quinceañera"})
	assert.True(t, errors.Is(err, pricing.ErrInvalidServiceType))
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, studioHairOnly())
	require.NoError(t, err)
	assert.Equal(t, "bk-1", b.ID)
	assert.Equal(t, models.StatusPendingDeposit, b.Status)
	assert.Equal(t, "Lead", b.Artist)
	assert.Equal(t, 226.0, b.Quote.Total)
	assert.Equal(t, 67.8, b.Quote.Deposit)
	assert.Equal(t, 158.2, b.Balance)

	stored, err := svc.GetBooking(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, b.Quote, stored.Quote)

	list, err := svc.ListBookings(ctx, 0, -1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bk-1", list[0].ID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := studioHairOnly()
	req.Email = "not-an-email"
	_, err := svc.CreateBooking(ctx, req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)

	req = studioHairOnly()
	req.FirstName = " "
	_, err = svc.CreateBooking(ctx, req)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "first_name", verr.Field)

	req = studioHairOnly()
	req.ServiceType = "Prom"
	_, err = svc.CreateBooking(ctx, req)
	assert.True(t, errors.Is(err, pricing.ErrInvalidServiceType))

	list, err := svc.ListBookings(ctx, 0, -1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDepositThenBalanceFlow(t *testing.T) {
	svc, pay := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, studioHairOnly())
	require.NoError(t, err)

	_, err = svc.CreateCheckout(ctx, "bk-1", models.PaymentBalance)
	assert.True(t, errors.Is(err, ErrInvalidPaymentState))

	rec, err := svc.CreateCheckout(ctx, "bk-1", models.PaymentDeposit)
	require.NoError(t, err)
	assert.Equal(t, "cs_bk-1-deposit-0", rec.SessionID)
	assert.Equal(t, 67.8, rec.Amount)
	require.Len(t, pay.requests, 1)
	assert.Equal(t, int64(6780), pay.requests[0].AmountCents)
	assert.Equal(t, "amira@example.com", pay.requests[0].CustomerEmail)

	again, err := svc.CreateCheckout(ctx, "bk-1", models.PaymentDeposit)
	require.NoError(t, err)
	assert.Equal(t, "cs_bk-1-deposit-1", again.SessionID)

	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit, SessionID: rec.SessionID, Amount: 10})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	b, err := svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit, SessionID: rec.SessionID})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDepositPaid, b.Status)
	assert.InDelta(t, 67.8, b.AmountPaid(), 1e-9)
	assert.Equal(t, rec.SessionID, b.Invoices[0].SessionID)

	_, err = svc.CreateCheckout(ctx, "bk-1", models.PaymentDeposit)
	assert.True(t, errors.Is(err, ErrInvalidPaymentState))

	bal, err := svc.CreateCheckout(ctx, "bk-1", models.PaymentBalance)
	require.NoError(t, err)
	assert.Equal(t, 158.2, bal.Amount)
	assert.Equal(t, int64(15820), pay.requests[len(pay.requests)-1].AmountCents)

	// a deposit session cannot settle the balance
	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentBalance, SessionID: rec.SessionID})
	assert.True(t, errors.Is(err, ErrPaymentUnverified))

	b, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentBalance, SessionID: bal.SessionID, Amount: 158.2})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaidInFull, b.Status)
	assert.InDelta(t, 226.0, b.AmountPaid(), 1e-9)
	assert.Len(t, b.Checkouts, 3)
}

func TestCreateCheckoutErrors(t *testing.T) {
	svc, pay := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCheckout(ctx, "missing", models.PaymentDeposit)
	assert.True(t, errors.Is(err, database.ErrNotFound))

	_, err = svc.CreateBooking(ctx, studioHairOnly())
	require.NoError(t, err)

	_, err = svc.CreateCheckout(ctx, "bk-1", models.PaymentKind("tip"))
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	pay.err = payment.ErrNotConfigured
	_, err = svc.CreateCheckout(ctx, "bk-1", models.PaymentDeposit)
	assert.True(t, errors.Is(err, payment.ErrNotConfigured))

	b, err := svc.GetBooking(ctx, "bk-1")
	require.NoError(t, err)
	assert.Empty(t, b.Checkouts)
}

func TestRecordPaymentRequiresVerifiedSession(t *testing.T) {
	svc, pay := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, studioHairOnly())
	require.NoError(t, err)
	rec, err := svc.CreateCheckout(ctx, "bk-1", models.PaymentDeposit)
	require.NoError(t, err)

	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "session_id", verr.Field)

	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit, SessionID: "cs_forged"})
	assert.True(t, errors.Is(err, ErrPaymentUnverified))

	st := pay.sessions[rec.SessionID]
	st.Paid = false
	pay.sessions[rec.SessionID] = st
	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit, SessionID: rec.SessionID})
	assert.True(t, errors.Is(err, ErrPaymentUnverified))

	st.Paid = true
	st.AmountCents = 100
	pay.sessions[rec.SessionID] = st
	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit, SessionID: rec.SessionID})
	assert.True(t, errors.Is(err, ErrPaymentUnverified))

	st.AmountCents = 6780
	st.Reference = "bk-other"
	pay.sessions[rec.SessionID] = st
	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentDeposit, SessionID: rec.SessionID})
	assert.True(t, errors.Is(err, ErrPaymentUnverified))

	b, err := svc.GetBooking(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingDeposit, b.Status)
	assert.Empty(t, b.Invoices)

	// no balance without a deposit, even with a forged session
	_, err = svc.RecordPayment(ctx, "bk-1", models.PaymentConfirmation{Kind: models.PaymentBalance, SessionID: "cs_forged"})
	assert.True(t, errors.Is(err, ErrInvalidPaymentState))
}
