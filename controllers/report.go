// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"visitacare-backend/analytics"
	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// GetStats returns aggregated visitor/visit statistics for a window.
// ?window=week|month|quarter|year selects a named window (default month);
// ?from=YYYY-MM-DD&to=YYYY-MM-DD selects an explicit range instead.
func (rc *ReportController) GetStats(c *gin.Context) {
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

	window, err := rc.parseWindow(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var visitors []models.Visitor
	if err := config.DB.Where("church_id = ?", churchUUID).Find(&visitors).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visitors")
		return
	}

	var visits []models.Visit
	if err := config.DB.Where("church_id = ?", churchUUID).Find(&visits).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visits")
		return
	}

	stats := analytics.Aggregate(visitors, visits, window, time.Now())

	c.JSON(http.StatusOK, stats)
}

// GetVisitorReport assembles the renderer-agnostic visitor report document.
// An external renderer turns it into CSV, PDF or HTML downstream.
func (rc *ReportController) GetVisitorReport(c *gin.Context) {
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

	query := config.DB.Where("church_id = ?", churchUUID)
	appliedFilters := []string{}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		appliedFilters = append(appliedFilters, "status: "+status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
		appliedFilters = append(appliedFilters, "category: "+category)
	}

	periodLabel := "All time"
	if from := c.Query("from"); from != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date")
			return
		}
		query = query.Where("created_at >= ?", utils.BeginningOfDay(fromDate))
		appliedFilters = append(appliedFilters, "from: "+from)
		periodLabel = "From " + from
	}
	if to := c.Query("to"); to != "" {
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date")
			return
		}
		query = query.Where("created_at <= ?", utils.EndOfDay(toDate))
		appliedFilters = append(appliedFilters, "to: "+to)
		if periodLabel == "All time" {
			periodLabel = "Until " + to
		} else {
			periodLabel = periodLabel + " until " + to
		}
	}

	var visitors []models.Visitor
	if err := query.Order("created_at DESC").Find(&visitors).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve visitors")
		return
	}

	var user models.User
	generatedBy := ""
	if err := config.DB.First(&user, "id = ?", userID).Error; err == nil {
		generatedBy = user.Name
	}

	document := analytics.AssembleReport(
		"Visitor report",
		periodLabel,
		visitors,
		appliedFilters,
		generatedBy,
		time.Now(),
	)

	c.JSON(http.StatusOK, document)
}

func (rc *ReportController) parseWindow(c *gin.Context) (analytics.Window, error) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" && to != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			return analytics.Window{}, fmt.Errorf("invalid from date: %s", from)
		}
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			return analytics.Window{}, fmt.Errorf("invalid to date: %s", to)
		}
		return analytics.Window{From: fromDate, To: toDate}, nil
	}

	kind := c.DefaultQuery("window", analytics.WindowMonth)
	switch kind {
	case analytics.WindowWeek, analytics.WindowMonth, analytics.WindowQuarter, analytics.WindowYear:
		return analytics.Window{Kind: kind}, nil
	}
	return analytics.Window{}, fmt.Errorf("invalid window: %s", kind)
}
