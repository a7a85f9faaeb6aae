// controllers/template.go
package controllers

import (
	"errors"
	"net/http"

	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTemplateInput defines the expected JSON structure
type CreateTemplateInput struct {
	Name string `json:"name" binding:"required"`
	Body string `json:"body" binding:"required"`
}

// UpdateTemplateInput defines the expected JSON structure
type UpdateTemplateInput struct {
	Name     *string `json:"name"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"isActive"`
}

// CreateTemplate creates a new message template
func CreateTemplate(c *gin.Context) {
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

	var input CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if a template with this name already exists for this church
	var existingTemplate models.MessageTemplate
	if err := config.DB.Where("church_id = ? AND name = ?", churchUUID, input.Name).
		First(&existingTemplate).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Template with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	template := models.MessageTemplate{
		ID:       uuid.New(),
		ChurchID: churchUUID,
		Name:     input.Name,
		Body:     input.Body,
		IsActive: true,
	}

	if err := config.DB.Create(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetTemplates retrieves all message templates for the church
func GetTemplates(c *gin.Context) {
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

	var templates []models.MessageTemplate
	if err := config.DB.Where("church_id = ?", churchUUID).Find(&templates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate retrieves a specific template by ID
func GetTemplate(c *gin.Context) {
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

	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	var template models.MessageTemplate
	if err := config.DB.Where("church_id = ? AND id = ?", churchUUID, templateUUID).
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateTemplate updates an existing template
func UpdateTemplate(c *gin.Context) {
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

	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var template models.MessageTemplate
	if err := config.DB.Where("church_id = ? AND id = ?", churchUUID, templateUUID).
		First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// If renaming, check for conflict
	if input.Name != nil && *input.Name != template.Name {
		var existingTemplate models.MessageTemplate
		if err := config.DB.Where("church_id = ? AND name = ?", churchUUID, *input.Name).
			First(&existingTemplate).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Template with this name already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		template.Name = *input.Name
	}

	if input.Body != nil {
		template.Body = *input.Body
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate deletes a template
func DeleteTemplate(c *gin.Context) {
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

	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	result := config.DB.Where("church_id = ? AND id = ?", churchUUID, templateUUID).
		Delete(&models.MessageTemplate{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete template")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}
