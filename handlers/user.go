package handlers

import (
	"net/http"

	"brewdesk/models"
	"brewdesk/services/booking"
	"brewdesk/services/user"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes identity-sync and profile endpoints.
type UserHandler struct {
	Service    user.UserService
	BookingSvc booking.BookingService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, bookingSvc booking.BookingService) *UserHandler {
	return &UserHandler{Service: svc, BookingSvc: bookingSvc}
}

// SyncUserHandler upserts the local user row from the verified token claims.
// The auth middleware already synced on first sight; this endpoint exists for
// clients that refresh profile fields explicitly after sign-in.
func (h *UserHandler) SyncUserHandler(c *gin.Context) {
	externalID, _ := c.Get("externalID")
	subject, ok := externalID.(string)
	if !ok || subject == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var input struct {
		Email     string `json:"email" binding:"required,email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatarUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	stored, err := h.Service.Sync(models.IdentityClaims{
		Subject:   subject,
		Email:     input.Email,
		Name:      input.Name,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// GetMeHandler returns the authenticated user's local record.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	usr, err := h.Service.GetUserByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetMyReservationsHandler lists the authenticated user's reservations.
func (h *UserHandler) GetMyReservationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	reservations, err := h.BookingSvc.GetReservationsByUserID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
