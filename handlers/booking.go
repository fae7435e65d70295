package handlers

import (
	"net/http"

	"brewdesk/models"
	"brewdesk/services/booking"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes availability and reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetAvailabilityHandler returns the bookable picture for one desk and date.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	day, err := h.Service.GetDayAvailability(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// QuoteBookingHandler prices a candidate window without committing anything.
func (h *BookingHandler) QuoteBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	quote, err := h.Service.QuoteBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBookingHandler reserves a desk for the authenticated user.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	reservation, err := h.Service.Reserve(c.Request.Context(), userID, req)
	if err != nil {
		h.Logger.Debug("booking rejected",
			zap.String("deskID", req.DeskID), zap.String("date", req.Date), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// GetBookingHandler returns one reservation; the booker or the business
// owner may view it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	reservation, err := h.Service.GetReservationByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if reservation == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "no such reservation")
		return
	}
	if reservation.UserID != userID {
		if _, err := h.Service.GetReservationsByBusinessID(userID, reservation.BusinessID); err != nil {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "You don't have access to this reservation.")
			return
		}
	}
	c.JSON(http.StatusOK, reservation)
}

// CancelBookingHandler transitions a reservation to cancelled.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	if err := h.Service.CancelReservation(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
