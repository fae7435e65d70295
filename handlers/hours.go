package handlers

import (
	"net/http"

	"brewdesk/utils"

	"github.com/gin-gonic/gin"
)

// GetHoursHandler returns the published open/close window for one date.
// An unset date is a normal empty result, not an error.
func (h *BusinessHandler) GetHoursHandler(c *gin.Context) {
	hours, err := h.Service.GetHours(c.Param("id"), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if hours == nil {
		c.JSON(http.StatusOK, gin.H{"hours": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

// SetHoursHandler publishes (or replaces) the window for one date.
func (h *BusinessHandler) SetHoursHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var input struct {
		OpenTime  string `json:"openTime" binding:"required"`
		CloseTime string `json:"closeTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	hours, err := h.Service.SetHours(userID, c.Param("id"), c.Param("date"), input.OpenTime, input.CloseTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

// ClearHoursHandler withdraws the window for one date.
func (h *BusinessHandler) ClearHoursHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	if err := h.Service.ClearHours(userID, c.Param("id"), c.Param("date")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GetAvailableDatesHandler returns the dates with published hours in a range,
// for calendar dots.
func (h *BusinessHandler) GetAvailableDatesHandler(c *gin.Context) {
	startDate := c.Query("start")
	endDate := c.Query("end")
	if startDate == "" || endDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "start and end query params are required")
		return
	}

	dates, err := h.Service.GetAvailableDates(c.Param("id"), startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}
