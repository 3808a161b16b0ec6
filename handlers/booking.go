package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"glambook/database"
	"glambook/models"
	"glambook/services/booking"
	"glambook/services/payment"
	"glambook/services/pricing"
	"glambook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultListPage is the most bookings ListBookings returns per call.
const DefaultListPage = 100

// BookingHandler serves the quote and booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Engine     *pricing.Engine
	Logger     *zap.Logger
	MaxPage    int64
}

func NewBookingHandler(svc booking.BookingService, engine *pricing.Engine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Engine: engine, Logger: logger, MaxPage: DefaultListPage}
}

// respondError maps service errors to HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, op string, err error) {
	var perr *pricing.Error
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &perr):
		utils.JSONError(c, http.StatusBadRequest, perr.Code, "invalid booking selection", perr.Message)
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, "validation_failed", "invalid request", verr.Error())
	case errors.Is(err, database.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not_found", "booking not found", "")
	case errors.Is(err, booking.ErrInvalidPaymentState):
		utils.JSONError(c, http.StatusConflict, "invalid_payment_state", "payment not allowed", err.Error())
	case errors.Is(err, booking.ErrPaymentUnverified):
		utils.JSONError(c, http.StatusPaymentRequired, "payment_unverified", "payment could not be verified", err.Error())
	case errors.Is(err, payment.ErrNotConfigured):
		utils.JSONError(c, http.StatusServiceUnavailable, "payments_unavailable", "payments are not configured", "")
	default:
		getLogger(c).Error(op+": failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "internal server error", "")
	}
}

// Quote handles POST /api/quote.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_body", "invalid request body", err.Error())
		return
	}

	dq, err := h.BookingSvc.Quote(c.Request.Context(), req.BookingSelection)
	if err != nil {
		h.respondError(c, "Quote", err)
		return
	}
	c.JSON(http.StatusOK, dq.Response())
}

// GetPriceBook handles GET /api/pricebook so the client preview prices
// from the same tables as the server.
func (h *BookingHandler) GetPriceBook(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.PriceBook())
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_body", "invalid request body", err.Error())
		return
	}

	b, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, "CreateBooking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "GetBooking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/bookings?start=&end=. It is an operator
// view: start must be non-negative and a page holds at most MaxPage
// bookings, with end clamped to fit.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	start, err := strconv.ParseInt(c.DefaultQuery("start", "0"), 10, 64)
	if err != nil || start < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_query", "start must be a non-negative integer", c.Query("start"))
		return
	}
	end, err := strconv.ParseInt(c.DefaultQuery("end", "-1"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_query", "end must be an integer", err.Error())
		return
	}

	maxPage := h.MaxPage
	if maxPage <= 0 {
		maxPage = DefaultListPage
	}
	if last := start + maxPage - 1; end < 0 || end > last {
		end = last
	}

	bookings, err := h.BookingSvc.ListBookings(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, "ListBookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "start": start, "end": end})
}

// CreateCheckout handles POST /api/bookings/:id/checkout.
func (h *BookingHandler) CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_body", "invalid request body", err.Error())
		return
	}

	rec, err := h.BookingSvc.CreateCheckout(c.Request.Context(), c.Param("id"), req.Kind)
	if err != nil {
		h.respondError(c, "CreateCheckout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": rec.URL, "checkout": rec})
}

// RecordPayment handles POST /api/bookings/:id/payments.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_body", "invalid request body", err.Error())
		return
	}

	b, err := h.BookingSvc.RecordPayment(c.Request.Context(), c.Param("id"), conf)
	if err != nil {
		h.respondError(c, "RecordPayment", err)
		return
	}
	c.JSON(http.StatusOK, b)
}
