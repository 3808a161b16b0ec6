package booking

import (
	"context"
	"time"

	"glambook/database/repository"
	"glambook/models"
	"glambook/services/payment"
	"glambook/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService defines the operations behind the booking wizard.
type BookingService interface {
	Quote(ctx context.Context, sel models.BookingSelection) (*DualQuote, error)
	CreateBooking(ctx context.Context, req models.QuoteRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, start, end int64) ([]models.Booking, error)
	CreateCheckout(ctx context.Context, id string, kind models.PaymentKind) (*models.CheckoutRecord, error)
	RecordPayment(ctx context.Context, id string, conf models.PaymentConfirmation) (*models.Booking, error)
}

// CheckoutConfig holds the payment settings the service needs.
type CheckoutConfig struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine   *pricing.Engine
	Repo     repository.BookingRepository
	Payments payment.Provider
	Checkout CheckoutConfig
	Logger   *zap.Logger
	Now      func() time.Time
	NewID    func() string
}

// NewBookingService wires the service with a wall clock and random ids.
func NewBookingService(engine *pricing.Engine, repo repository.BookingRepository, payments payment.Provider, checkout CheckoutConfig, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Engine:   engine,
		Repo:     repo,
		Payments: payments,
		Checkout: checkout,
		Logger:   logger,
		Now:      time.Now,
		NewID:    uuid.NewString,
	}
}
