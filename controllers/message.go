// controllers/message.go
package controllers

import (
	"errors"
	"net/http"

	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/services"
	"visitacare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageController sends templated outreach messages and exposes the send
// history.
type MessageController struct {
	Service *services.MessageService
}

// SendMessageInput defines the expected JSON structure
type SendMessageInput struct {
	VisitorID    string `json:"visitorId" binding:"required,uuid"`
	TemplateName string `json:"templateName" binding:"required"`
}

// SendMessage merges the named template with the visitor's context and
// delivers it. The merged content and the delivery outcome come back in the
// recorded message row.
func (mc *MessageController) SendMessage(c *gin.Context) {
	churchID, exists := c.Get("churchId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Church ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	churchUUID, err := uuid.Parse(churchID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid church ID format")
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var visitor models.Visitor
	if err := config.DB.Where("church_id = ? AND id = ?", churchUUID, input.VisitorID).
		First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Visitor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var template models.MessageTemplate
	if err := config.DB.Where("church_id = ? AND name = ? AND is_active = true", churchUUID, input.TemplateName).
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	message := mc.Service.Send(churchUUID, uuid.Must(uuid.Parse(userID.(string))), visitor, template)

	c.JSON(http.StatusCreated, message)
}

// GetMessages retrieves the church's message history, optionally for a single
// visitor, newest first
func (mc *MessageController) GetMessages(c *gin.Context) {
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

	query := config.DB.Where("church_id = ?", churchUUID)
	if visitorID := c.Query("visitorId"); visitorID != "" {
		query = query.Where("visitor_id = ?", visitorID)
	}

	var messages []models.Message
	if err := query.Order("sent_at DESC").Find(&messages).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}
