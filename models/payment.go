package models

import "time"

// PaymentKind distinguishes the upfront deposit from the remaining balance.
type PaymentKind string

const (
	PaymentDeposit PaymentKind = "deposit"
	PaymentBalance PaymentKind = "balance"
)

// CheckoutRequest asks for a hosted checkout page for one payment.
type CheckoutRequest struct {
	Kind PaymentKind `json:"kind"`
}

// CheckoutRecord is a checkout session created for a booking.
type CheckoutRecord struct {
	Kind      PaymentKind `bson:"kind" json:"kind"`
	SessionID string      `bson:"session_id" json:"session_id"`
	URL       string      `bson:"url" json:"url"`
	Amount    float64     `bson:"amount" json:"amount"`
	Currency  string      `bson:"currency" json:"currency"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}

// PaymentConfirmation reports a completed payment for a booking.
type PaymentConfirmation struct {
	Kind      PaymentKind `json:"kind"`
	SessionID string      `json:"session_id"`
	Amount    float64     `json:"amount"`
}

// Invoice records a payment received against a booking.
type Invoice struct {
	InvoiceID string      `bson:"invoice_id" json:"invoice_id"`
	Kind      PaymentKind `bson:"kind" json:"kind"`
	SessionID string      `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Amount    float64     `bson:"amount" json:"amount"`
	Currency  string      `bson:"currency" json:"currency"`
	Status    string      `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}
