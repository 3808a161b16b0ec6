package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"glambook/models"
	"glambook/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// amountDue returns what the next payment of kind should be, or an error if
// the booking is not waiting for that payment.
func amountDue(b *models.Booking, kind models.PaymentKind) (float64, error) {
	switch kind {
	case models.PaymentDeposit:
		if b.Status != models.StatusPendingDeposit {
			return 0, paymentStateError("booking %s is %s, deposit already settled", b.ID, b.Status)
		}
		return b.Quote.Deposit, nil
	case models.PaymentBalance:
		if b.Status != models.StatusDepositPaid {
			return 0, paymentStateError("booking %s is %s, balance needs a paid deposit", b.ID, b.Status)
		}
		return b.Balance, nil
	default:
		return 0, NewValidationError("kind", fmt.Sprintf("unsupported payment kind %q", kind))
	}
}

func checkoutDescription(b *models.Booking, kind models.PaymentKind) string {
	if kind == models.PaymentDeposit {
		return fmt.Sprintf("%s booking deposit", b.ServiceType)
	}
	return fmt.Sprintf("%s booking balance", b.ServiceType)
}

// CreateCheckout opens a hosted checkout for the deposit or the balance.
func (s *DefaultBookingService) CreateCheckout(ctx context.Context, id string, kind models.PaymentKind) (*models.CheckoutRecord, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	amount, err := amountDue(b, kind)
	if err != nil {
		return nil, err
	}

	attempt := 0
	for _, c := range b.Checkouts {
		if c.Kind == kind {
			attempt++
		}
	}

	sess, err := s.Payments.CreateCheckoutSession(ctx, payment.CheckoutSessionRequest{
		BookingID:      b.ID,
		Description:    checkoutDescription(b, kind),
		CustomerEmail:  b.Selection.Email,
		Currency:       s.Checkout.Currency,
		AmountCents:    payment.ToCents(amount),
		SuccessURL:     s.Checkout.SuccessURL,
		CancelURL:      s.Checkout.CancelURL,
		IdempotencyKey: fmt.Sprintf("%s-%s-%d", b.ID, kind, attempt),
		Metadata: map[string]string{
			"booking_id": b.ID,
			"kind":       string(kind),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	rec := models.CheckoutRecord{
		Kind:      kind,
		SessionID: sess.ID,
		URL:       sess.URL,
		Amount:    amount,
		Currency:  s.Checkout.Currency,
		CreatedAt: s.Now(),
	}
	b.Checkouts = append(b.Checkouts, rec)
	b.UpdatedAt = rec.CreatedAt
	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save checkout: %w", err)
	}

	s.Logger.Info("checkout created",
		zap.String("booking_id", b.ID),
		zap.String("kind", string(kind)),
		zap.String("session_id", sess.ID),
	)
	return &rec, nil
}

// verifyPayment checks that sessionID is one of the booking's checkouts for
// kind and that the provider reports it paid in full.
func (s *DefaultBookingService) verifyPayment(ctx context.Context, b *models.Booking, kind models.PaymentKind, sessionID string, due float64) error {
	known := false
	for _, c := range b.Checkouts {
		if c.Kind == kind && c.SessionID == sessionID {
			known = true
			break
		}
	}
	if !known {
		return paymentUnverifiedError("session %s is not a %s checkout of booking %s", sessionID, kind, b.ID)
	}

	st, err := s.Payments.RetrieveCheckoutSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to verify checkout session: %w", err)
	}
	switch {
	case !st.Paid:
		return paymentUnverifiedError("session %s is not paid", sessionID)
	case st.Reference != "" && st.Reference != b.ID:
		return paymentUnverifiedError("session %s belongs to booking %s", sessionID, st.Reference)
	case st.AmountCents != payment.ToCents(due):
		return paymentUnverifiedError("session %s paid %d cents, expected %d", sessionID, st.AmountCents, payment.ToCents(due))
	}
	return nil
}

// RecordPayment marks the deposit or the balance paid and advances the
// booking status. The payment must come from one of the booking's checkout
// sessions and be confirmed by the provider.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, id string, conf models.PaymentConfirmation) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	due, err := amountDue(b, conf.Kind)
	if err != nil {
		return nil, err
	}
	sessionID := strings.TrimSpace(conf.SessionID)
	if sessionID == "" {
		return nil, NewValidationError("session_id", "is required")
	}
	if conf.Amount != 0 && math.Abs(conf.Amount-due) >= 0.005 {
		return nil, NewValidationError("amount", fmt.Sprintf("expected %.2f, got %.2f", due, conf.Amount))
	}
	if err := s.verifyPayment(ctx, b, conf.Kind, sessionID, due); err != nil {
		s.Logger.Warn("payment rejected",
			zap.String("booking_id", b.ID),
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	paid := due

	now := s.Now()
	b.Invoices = append(b.Invoices, models.Invoice{
		InvoiceID: uuid.New().String(),
		Kind:      conf.Kind,
		SessionID: sessionID,
		Amount:    paid,
		Currency:  s.Checkout.Currency,
		Status:    "paid",
		CreatedAt: now,
	})
	if conf.Kind == models.PaymentDeposit {
		b.Status = models.StatusDepositPaid
	} else {
		b.Status = models.StatusPaidInFull
	}
	b.UpdatedAt = now

	if err := s.Repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	s.Logger.Info("payment recorded",
		zap.String("booking_id", b.ID),
		zap.String("kind", string(conf.Kind)),
		zap.Float64("amount", paid),
		zap.String("status", string(b.Status)),
	)
	return b, nil
}
