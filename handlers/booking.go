package handlers

import (
	"net/http"

	"tutorlink/middleware"
	"tutorlink/models"
	bookingSvc "tutorlink/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Service bookingSvc.BookingService
}

func NewBookingHandler(svc bookingSvc.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler submits a new booking draft.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(middleware.ProfileID(c), draft)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler returns the caller's bookings in pending, confirmed and
// past buckets.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	buckets, err := h.Service.ListBookings(middleware.ProfileID(c))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// GetBookingHandler returns a single booking visible to the caller.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	b, err := h.Service.GetBooking(middleware.ProfileID(c), c.Param("id"))
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler applies a lifecycle transition.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A target status is required"})
		return
	}

	b, err := h.Service.Transition(middleware.ProfileID(c), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
