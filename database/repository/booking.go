package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"glambook/database"
	"glambook/models"
)

const (
	bookingKeyPrefix = "booking:"
	bookingsIndexKey = "bookings"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// List returns bookings in submission order, LRANGE-style bounds.
	List(ctx context.Context, start, end int64) ([]models.Booking, error)
}

// StoreBookingRepo keeps each booking as JSON under booking:<id> and the
// submission order in the "bookings" list.
type StoreBookingRepo struct {
	store database.Store
}

func NewStoreBookingRepo(store database.Store) *StoreBookingRepo {
	return &StoreBookingRepo{store: store}
}

func bookingKey(id string) string {
	return bookingKeyPrefix + id
}

func (r *StoreBookingRepo) put(ctx context.Context, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("marshal booking %s: %w", booking.ID, err)
	}
	return r.store.Set(ctx, bookingKey(booking.ID), data)
}

func (r *StoreBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if err := r.put(ctx, booking); err != nil {
		return err
	}
	return r.store.ListAppend(ctx, bookingsIndexKey, booking.ID)
}

func (r *StoreBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	if _, err := r.store.Get(ctx, bookingKey(booking.ID)); err != nil {
		return err
	}
	return r.put(ctx, booking)
}

func (r *StoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	data, err := r.store.Get(ctx, bookingKey(id))
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, fmt.Errorf("unmarshal booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *StoreBookingRepo) List(ctx context.Context, start, end int64) ([]models.Booking, error) {
	ids, err := r.store.ListRange(ctx, bookingsIndexKey, start, end)
	if err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		b, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}
