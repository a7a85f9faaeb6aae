package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/scheduling"
	"visitacare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateVisitInput defines the expected JSON structure for scheduling a visit.
// VisitorID and ScheduledAt arrive as raw strings so the validator can report
// shape problems as field errors instead of a bind failure.
type CreateVisitInput struct {
	VisitorID        string `json:"visitorId" binding:"required"`
	ScheduledAt      string `json:"scheduledAt" binding:"required"`
	Type             string `json:"type" binding:"omitempty,oneof=in_person phone whatsapp other"`
	Notes            string `json:"notes"`
	RequiresFollowUp bool   `json:"requiresFollowUp"`
}

// UpdateVisitInput defines the expected JSON structure for updating a visit
type UpdateVisitInput struct {
	ScheduledAt      *string `json:"scheduledAt"`
	Type             *string `json:"type" binding:"omitempty,oneof=in_person phone whatsapp other"`
	Status           *string `json:"status" binding:"omitempty,oneof=scheduled rescheduled completed cancelled"`
	Notes            *string `json:"notes"`
	RequiresFollowUp *bool   `json:"requiresFollowUp"`
}

// CreateVisit schedules a pastoral visit. The candidate is validated against
// the visitor's existing visits; every violated rule comes back as a field
// error so the form can show all of them at once. The partial unique index on
// (visitor_id, visit_date) is the authoritative backstop for concurrent
// scheduling attempts that both pass this validation.
func CreateVisit(c *gin.Context) {
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

	var input CreateVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing []models.Visit
	if utils.ValidateUUID(input.VisitorID) {
		if err := config.DB.Where("church_id = ? AND visitor_id = ?", churchUUID, input.VisitorID).
			Find(&existing).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load existing visits")
			return
		}
	}

	candidate := scheduling.VisitCandidate{
		VisitorID:   input.VisitorID,
		ScheduledAt: input.ScheduledAt,
	}
	result := scheduling.ValidateVisit(candidate, existing, time.Now())
	if !result.Valid {
		utils.RespondWithFieldErrors(c, http.StatusUnprocessableEntity, result.FieldErrors)
		return
	}

	visitorUUID := uuid.MustParse(input.VisitorID)

	// The visitor must exist; a dangling reference is a validation failure,
	// not a server fault.
	var visitor models.Visitor
	if err := config.DB.Where("church_id = ? AND id = ?", churchUUID, visitorUUID).
		First(&visitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithFieldErrors(c, http.StatusUnprocessableEntity,
				map[string]string{"visitorId": "visitor not found"})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	scheduledAt, _ := time.Parse(time.RFC3339, input.ScheduledAt)

	visitType := input.Type
	if visitType == "" {
		visitType = models.VisitTypeInPerson
	}

	visit := models.Visit{
		ID:               uuid.New(),
		ChurchID:         churchUUID,
		VisitorID:        visitorUUID,
		SchedulerID:      uuid.Must(uuid.Parse(userID.(string))),
		ScheduledAt:      scheduledAt,
		Type:             visitType,
		Status:           models.VisitStatusScheduled,
		Notes:            input.Notes,
		RequiresFollowUp: input.RequiresFollowUp,
	}

	if err := config.DB.Create(&visit).Error; err != nil {
		if strings.Contains(err.Error(), "idx_visits_visitor_visit_date_active") {
			utils.RespondWithFieldErrors(c, http.StatusConflict,
				map[string]string{"visitorId": "conflicting visit exists on this date"})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create visit")
		return
	}

	c.JSON(http.StatusCreated, visit)
}

// GetVisits retrieves the church's visits, optionally filtered by visitor,
// status or a date range
func GetVisits(c *gin.Context) {
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
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		if fromDate, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("scheduled_at >= ?", utils.BeginningOfDay(fromDate))
		}
	}
	if to := c.Query("to"); to != "" {
		if toDate, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("scheduled_at <= ?", utils.EndOfDay(toDate))
		}
	}

	var visits []models.Visit
	if err := query.Order("scheduled_at ASC").Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	c.JSON(http.StatusOK, visits)
}

// GetVisitCalendar returns the month grid of day cells for the requested
// year/month. Months before the current one are clamped to the current month,
// matching the navigation floor enforced by the calendar UI.
func GetVisitCalendar(c *gin.Context) {
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

	today := time.Now()
	year := today.Year()
	month := today.Month()

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
			return
		}
		month = time.Month(parsed)
	}

	// Clamp to the navigation floor: never a month before today's.
	floor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if time.Date(year, month, 1, 0, 0, 0, 0, today.Location()).Before(floor) {
		year, month = today.Year(), today.Month()
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	last := first.AddDate(0, 1, -1)

	var visits []models.Visit
	if err := config.DB.Where("church_id = ? AND scheduled_at BETWEEN ? AND ?",
		churchUUID, first, utils.EndOfDay(last)).
		Order("scheduled_at ASC").Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	cells := scheduling.BuildMonthGrid(year, month, visits, today)

	c.JSON(http.StatusOK, gin.H{
		"year":            year,
		"month":           int(month),
		"canNavigateBack": scheduling.CanNavigateBack(year, month, today),
		"cells":           cells,
	})
}

// UpdateVisit updates a visit: status transitions, rescheduling, notes
func UpdateVisit(c *gin.Context) {
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

	visitUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visit ID format")
		return
	}

	var input UpdateVisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var visit models.Visit
	if err := config.DB.Where("church_id = ? AND id = ?", churchUUID, visitUUID).
		First(&visit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Visit not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ScheduledAt != nil {
		// Rescheduling revalidates against the visitor's other visits.
		var existing []models.Visit
		if err := config.DB.Where("church_id = ? AND visitor_id = ? AND id <> ?",
			churchUUID, visit.VisitorID, visit.ID).Find(&existing).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load existing visits")
			return
		}

		candidate := scheduling.VisitCandidate{
			VisitorID:   visit.VisitorID.String(),
			ScheduledAt: *input.ScheduledAt,
		}
		result := scheduling.ValidateVisit(candidate, existing, time.Now())
		if !result.Valid {
			utils.RespondWithFieldErrors(c, http.StatusUnprocessableEntity, result.FieldErrors)
			return
		}

		scheduledAt, _ := time.Parse(time.RFC3339, *input.ScheduledAt)
		visit.ScheduledAt = scheduledAt
		if input.Status == nil {
			visit.Status = models.VisitStatusRescheduled
		}
	}
	if input.Type != nil {
		visit.Type = *input.Type
	}
	if input.Status != nil {
		visit.Status = *input.Status
	}
	if input.Notes != nil {
		visit.Notes = *input.Notes
	}
	if input.RequiresFollowUp != nil {
		visit.RequiresFollowUp = *input.RequiresFollowUp
	}

	if err := config.DB.Save(&visit).Error; err != nil {
		if strings.Contains(err.Error(), "idx_visits_visitor_visit_date_active") {
			utils.RespondWithFieldErrors(c, http.StatusConflict,
				map[string]string{"visitorId": "conflicting visit exists on this date"})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update visit")
		return
	}

	c.JSON(http.StatusOK, visit)
}

// DeleteVisit soft deletes a visit
func DeleteVisit(c *gin.Context) {
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

	visitUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid visit ID format")
		return
	}

	result := config.DB.Where("church_id = ? AND id = ?", churchUUID, visitUUID).
		Delete(&models.Visit{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete visit")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Visit not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Visit deleted successfully"})
}
