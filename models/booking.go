package models

import "time"

// BookingStatus tracks where a booking is in the payment flow.
type BookingStatus string

const (
	StatusPendingDeposit BookingStatus = "pending_deposit"
	StatusDepositPaid    BookingStatus = "deposit_paid"
	StatusPaidInFull     BookingStatus = "paid_in_full"
)

// Booking is a submitted wizard with its authoritative quote.
type Booking struct {
	ID               string           `bson:"id" json:"id"`
	Status           BookingStatus    `bson:"status" json:"status"`
	Artist           string           `bson:"artist" json:"artist"`
	ServiceType      string           `bson:"service_type" json:"service_type"`
	Selection        BookingSelection `bson:"selection" json:"selection"`
	Quote            QuoteResponse    `bson:"quote" json:"quote"`
	Balance          float64          `bson:"balance" json:"balance"`
	PriceBookVersion string           `bson:"price_book_version" json:"price_book_version"`
	Checkouts        []CheckoutRecord `bson:"checkouts,omitempty" json:"checkouts,omitempty"`
	Invoices         []Invoice        `bson:"invoices,omitempty" json:"invoices,omitempty"`
	CreatedAt        time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updated_at"`
}

// AmountPaid sums the recorded invoices.
func (b *Booking) AmountPaid() float64 {
	var paid float64
	for _, inv := range b.Invoices {
		paid += inv.Amount
	}
	return paid
}
