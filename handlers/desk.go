package handlers

import (
	"net/http"

	"brewdesk/models"
	"brewdesk/utils"

	"github.com/gin-gonic/gin"
)

// ListDesksHandler returns the desks of a business.
func (h *BusinessHandler) ListDesksHandler(c *gin.Context) {
	desks, err := h.Service.GetDesksByBusinessID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"desks": desks})
}

// CreateDeskHandler adds a desk to an owned business.
func (h *BusinessHandler) CreateDeskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var input models.Desk
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateDesk(userID, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDeskHandler applies updates to a desk of an owned business.
func (h *BusinessHandler) UpdateDeskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	var input models.Desk
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateDesk(userID, c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDeskHandler removes a desk from an owned business.
func (h *BusinessHandler) DeleteDeskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing identity")
		return
	}

	if err := h.Service.DeleteDesk(userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
