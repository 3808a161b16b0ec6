package handlers

import (
	"glambook/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Quote endpoints
	Quote        gin.HandlerFunc
	GetPriceBook gin.HandlerFunc

	// Booking endpoints
	CreateBooking  gin.HandlerFunc
	GetBooking     gin.HandlerFunc
	ListBookings   gin.HandlerFunc
	CreateCheckout gin.HandlerFunc
	RecordPayment  gin.HandlerFunc

	Health *utils.HealthMonitor
}

// NewHandlerBundle assembles the bundle from a booking handler.
func NewHandlerBundle(h *BookingHandler, health *utils.HealthMonitor) *HandlerBundle {
	return &HandlerBundle{
		Quote:          h.Quote,
		GetPriceBook:   h.GetPriceBook,
		CreateBooking:  h.CreateBooking,
		GetBooking:     h.GetBooking,
		ListBookings:   h.ListBookings,
		CreateCheckout: h.CreateCheckout,
		RecordPayment:  h.RecordPayment,
		Health:         health,
	}
}
