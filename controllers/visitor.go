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

// CreateVisitorInput defines the expected JSON structure for registering a visitor
type CreateVisitorInput struct {
	Name               string `json:"name" binding:"required"`
	Phone              string `json:"phone" binding:"required"`
	Category           string `json:"category" binding:"omitempty,oneof=christian non_christian preacher other"`
	Status             string `json:"status" binding:"omitempty,oneof=awaiting awaiting_visit visited new_member pending"`
	OriginCongregation string `json:"originCongregation"`
	AccompaniedBy      string `json:"accompaniedBy"`
	Notes              string `json:"notes"`
}

// UpdateVisitorInput defines the expected JSON structure for updating a visitor
type UpdateVisitorInput struct {
	Name               *string `json:"name"`
	Phone              *string `json:"phone"`
	Category           *string `json:"category" binding:"omitempty,oneof=christian non_christian preacher other"`
	Status             *string `json:"status" binding:"omitempty,oneof=awaiting awaiting_visit visited new_member pending"`
	OriginCongregation *string `json:"originCongregation"`
	AccompaniedBy      *string `json:"accompaniedBy"`
	Notes              *string `json:"notes"`
}

// CreateVisitor registers a new visitor for the church
func CreateVisitor(c *gin.Context) {
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

	var input CreateVisitorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate phone format; stored digits only
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	phone := utils.SanitizePhone(input.Phone)

	// Check if phone already exists for this church
	var existingVisitor models.Visitor
	if err := config.DB.Where("church_id = ? AND phone = ?", churchUUID, phone).
		First(&existingVisitor).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Visitor with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	status := input.Status
	if status == "" {
		status = models.VisitorStatusAwaiting
	}

	visitor := models.Visitor{
		ID:                 uuid.New(),
		ChurchID:           churchUUID,
		CreatedByUserID:    uuid.Must(uuid.Parse(userID.(string))),
		Name:               input.Name,
		Phone:              phone,
		Category:           input.Category,
		Status:             status,
		OriginCongregation: input.OriginCongregation,
		AccompaniedBy:      input.AccompaniedBy,
		Notes:              input.Notes,
	}

	if err := config.DB.Create(&visitor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create visitor")
		return
	}

	c.JSON(http.StatusCreated, visitor)
}

// GetVisitors retrieves the church's visitors, optionally filtered by status,
// category or a name search, newest first
func GetVisitors(c *gin.Context) {
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
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var visitors []models.Visitor
	if err := query.Order("created_at DESC").Find(&visitors).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visitors")
		return
	}

	c.JSON(http.StatusOK, visitors)
}

// GetVisitor retrieves a specific visitor by ID
func GetVisitor(c *gin.Context) {
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

	visitorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visitor ID format")
		return
	}

	var visitor models.Visitor
	if err := config.DB.Preload("Visits").Where("church_id = ? AND id = ?", churchUUID, visitorUUID).
		First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Visitor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, visitor)
}

// UpdateVisitor updates an existing visitor
func UpdateVisitor(c *gin.Context) {
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

	visitorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visitor ID format")
		return
	}

	var input UpdateVisitorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var visitor models.Visitor
	if err := config.DB.Where("church_id = ? AND id = ?", churchUUID, visitorUUID).
		First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Visitor not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		visitor.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		phone := utils.SanitizePhone(*input.Phone)

		if visitor.Phone != phone {
			var existingVisitor models.Visitor
			if err := config.DB.Where("church_id = ? AND phone = ?", churchUUID, phone).
				First(&existingVisitor).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another visitor with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		visitor.Phone = phone
	}
	if input.Category != nil {
		visitor.Category = *input.Category
	}
	if input.Status != nil {
		visitor.Status = *input.Status
	}
	if input.OriginCongregation != nil {
		visitor.OriginCongregation = *input.OriginCongregation
	}
	if input.AccompaniedBy != nil {
		visitor.AccompaniedBy = *input.AccompaniedBy
	}
	if input.Notes != nil {
		visitor.Notes = *input.Notes
	}

	if err := config.DB.Save(&visitor).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update visitor")
		return
	}

	c.JSON(http.StatusOK, visitor)
}

// DeleteVisitor soft deletes a visitor
func DeleteVisitor(c *gin.Context) {
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

	visitorUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visitor ID format")
		return
	}

	result := config.DB.Where("church_id = ? AND id = ?", churchUUID, visitorUUID).
		Delete(&models.Visitor{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete visitor")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Visitor not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visitor deleted successfully"})
}
