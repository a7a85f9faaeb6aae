package controllers

import (
	"fmt"
	"net/http"
	"time"

	"visitacare-backend/config"
	"visitacare-backend/models"
	"visitacare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UpcomingVisit struct {
	VisitorName string `json:"visitorName"`
	Type        string `json:"type"`
	Date        string `json:"date"` // e.g. "Today", "Tomorrow", "3 days"
}

type RecentVisitor struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registeredAt"` // e.g. "Today", "Yesterday"
}

// GetDashboardOverview returns the landing-page summary: totals, the visits
// coming up in the next 7 days and the latest registrations.
func GetDashboardOverview(c *gin.Context) {
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

	now := time.Now()

	// Total visitors
	var totalVisitors int64
	config.DB.Model(&models.Visitor{}).Where("church_id = ? AND deleted_at IS NULL", churchUUID).Count(&totalVisitors)

	// Visitors awaiting a visit
	var awaitingVisit int64
	config.DB.Model(&models.Visitor{}).
		Where("church_id = ? AND status IN ? AND deleted_at IS NULL",
			churchUUID, []string{models.VisitorStatusAwaiting, models.VisitorStatusAwaitingVisit}).
		Count(&awaitingVisit)

	// Scheduled visits still ahead
	var scheduledVisits int64
	config.DB.Model(&models.Visit{}).
		Where("church_id = ? AND status IN ? AND scheduled_at >= ? AND deleted_at IS NULL",
			churchUUID, []string{models.VisitStatusScheduled, models.VisitStatusRescheduled}, utils.BeginningOfDay(now)).
		Count(&scheduledVisits)

	// Upcoming visits (next 7 days) with relative labels
	var upcoming []UpcomingVisit
	type visitRow struct {
		Name        string
		Type        string
		ScheduledAt time.Time
	}
	var rows []visitRow
	config.DB.Raw(`
		SELECT vi.name, v.type, v.scheduled_at
		FROM visits v
		JOIN visitors vi ON vi.id = v.visitor_id
		WHERE v.church_id = ? AND v.deleted_at IS NULL
		AND v.status IN ('scheduled', 'rescheduled')
		AND v.scheduled_at BETWEEN ? AND ?
		ORDER BY v.scheduled_at ASC
		LIMIT 7
	`, churchUUID, utils.BeginningOfDay(now), utils.EndOfDay(now.AddDate(0, 0, 6))).Scan(&rows)

	for _, row := range rows {
		daysUntil := utils.DaysBetween(now, row.ScheduledAt)
		var label string
		switch daysUntil {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		default:
			label = fmt.Sprintf("%d days", daysUntil)
		}
		upcoming = append(upcoming, UpcomingVisit{
			VisitorName: row.Name,
			Type:        row.Type,
			Date:        label,
		})
	}

	// Recent visitors (last 5 registrations)
	var recentVisitors []RecentVisitor
	var visitors []models.Visitor
	config.DB.Where("church_id = ?", churchUUID).
		Order("created_at DESC").Limit(5).Find(&visitors)

	for _, visitor := range visitors {
		daysAgo := utils.DaysBetween(visitor.CreatedAt, now)
		var label string
		switch daysAgo {
		case 0:
			label = "Today"
		case 1:
			label = "Yesterday"
		default:
			label = fmt.Sprintf("%d days ago", daysAgo)
		}
		recentVisitors = append(recentVisitors, RecentVisitor{
			Name:         visitor.Name,
			Status:       visitor.Status,
			RegisteredAt: label,
		})
	}

	response := gin.H{
		"totalVisitors":   totalVisitors,
		"awaitingVisit":   awaitingVisit,
		"scheduledVisits": scheduledVisits,
		"upcomingVisits":  upcoming,
		"recentVisitors":  recentVisitors,
	}

	c.JSON(http.StatusOK, response)
}
