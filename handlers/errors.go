package handlers

import (
	"errors"
	"net/http"

	"brewdesk/services/booking"
	"brewdesk/services/business"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP responses. Conflicts and
// validation failures are normal negative results for the client to handle;
// anything unrecognized is a retryable 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, business.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "Slot unavailable",
			"This spot is no longer available for the selected time. Please choose a different time or spot.")
	case errors.Is(err, booking.ErrNotBookable):
		utils.JSONError(c, http.StatusUnprocessableEntity, "Not bookable", err.Error())
	case errors.Is(err, booking.ErrOwnBusiness):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "You can't book a spot at your own business.")
	case errors.Is(err, booking.ErrForbidden), errors.Is(err, business.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "You don't have access to this resource.")
	case errors.Is(err, business.ErrAlreadyExists):
		utils.JSONError(c, http.StatusConflict, "Already exists", err.Error())
	case errors.Is(err, business.ErrInvalidHours):
		utils.JSONError(c, http.StatusBadRequest, "Invalid hours", "Open time must precede close time on a valid date.")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error",
			"Something went wrong. Please try again.")
	}
}

// currentUserID reads the authenticated local user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}
