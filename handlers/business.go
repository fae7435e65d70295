package handlers

import (
	"net/http"

	"brewdesk/models"
	"brewdesk/services/booking"
	"brewdesk/services/business"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
)

// BusinessHandler exposes business listing endpoints.
type BusinessHandler struct {
	Service    business.BusinessService
	BookingSvc booking.BookingService
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(svc business.BusinessService, bookingSvc booking.BookingService) *BusinessHandler {
	return &BusinessHandler{Service: svc, BookingSvc: bookingSvc}
}

// ListBusinessesHandler returns every listing for customers to browse.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	businesses, err := h.Service.GetAllBusinesses()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// GetBusinessHandler returns one listing.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	biz, err := h.Service.GetBusinessByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if biz == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "no such business")
		return
	}
	c.JSON(http.StatusOK, biz)
}

// GetMyBusinessHandler returns the authenticated owner's listing, if any.
func (h *BusinessHandler) GetMyBusinessHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	biz, err := h.Service.GetBusinessByOwnerID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if biz == nil {
		utils.JSONError(c, http.StatusNotFound, "Not found", "you have no business listed")
		return
	}
	c.JSON(http.StatusOK, biz)
}

// CreateBusinessHandler lists a new business for the authenticated owner.
func (h *BusinessHandler) CreateBusinessHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var input models.Business
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBusiness(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBusinessHandler applies profile updates to an owned listing.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var input models.Business
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateBusiness(userID, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetBusinessReservationsHandler lists reservations at an owned business.
func (h *BusinessHandler) GetBusinessReservationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	reservations, err := h.BookingSvc.GetReservationsByBusinessID(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
