package booking

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"glambook/models"
	"glambook/services/pricing"

	"go.uber.org/zap"
)

// CreateBooking prices the selection for the chosen artist tier and stores
// the booking with its authoritative quote.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.QuoteRequest) (*models.Booking, error) {
	if err := validateContact(req.BookingSelection); err != nil {
		return nil, err
	}

	tier := pricing.ParseArtistTier(req.Artist)
	q, err := s.Engine.Calculate(req.BookingSelection, tier)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	wire := q.Wire()
	b := &models.Booking{
		ID:               s.NewID(),
		Status:           models.StatusPendingDeposit,
		Artist:           string(tier),
		ServiceType:      string(q.ServiceType),
		Selection:        req.BookingSelection,
		Quote:            wire,
		Balance:          pricing.Round2(wire.Total - wire.Deposit),
		PriceBookVersion: q.PriceBookVersion,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("service_type", b.ServiceType),
		zap.String("artist", b.Artist),
		zap.Float64("total", wire.Total),
	)
	return b, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, start, end int64) ([]models.Booking, error) {
	return s.Repo.List(ctx, start, end)
}

func validateContact(sel models.BookingSelection) error {
	if strings.TrimSpace(sel.FirstName) == "" {
		return NewValidationError("first_name", "is required")
	}
	if strings.TrimSpace(sel.Email) == "" {
		return NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(sel.Email); err != nil {
		return NewValidationError("email", "is not a valid address")
	}
	return nil
}
