package controllers

import (
	"net/http"

	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpdateChurchProfileInput struct {
	Name                  *string `json:"name"`
	Address               *string `json:"address"`
	WhatsAppNotifications *bool   `json:"whatsAppNotifications"`
}

// GetChurchProfile returns the church settings
func GetChurchProfile(c *gin.Context) {
	churchID, exists := c.Get("churchId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Church ID not found in context")
		return
	}

	var church models.Church
	if err := config.DB.First(&church, "id = ?", churchID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Church not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                  church.Name,
		"address":               church.Address,
		"whatsAppNotifications": church.WhatsAppNotifications,
	})
}

// UpdateChurchProfile updates the church settings
func UpdateChurchProfile(c *gin.Context) {
	churchID, exists := c.Get("churchId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Church ID not found in context")
		return
	}

	churchUUID, err := uuid.Parse(churchID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid church ID format")
		return
	}

	var input UpdateChurchProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var church models.Church
	if err := config.DB.First(&church, "id = ?", churchUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Church not found")
		return
	}

	if input.Name != nil {
		church.Name = *input.Name
	}
	if input.Address != nil {
		church.Address = *input.Address
	}
	if input.WhatsAppNotifications != nil {
		church.WhatsAppNotifications = *input.WhatsAppNotifications
	}

	if err := config.DB.Save(&church).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update church")
		return
	}

	c.JSON(http.StatusOK, church)
}
