package analytics

import (
	"testing"
	"time"

	"visitacare-backend/models"

	"gorm.io/gorm"
)

var today = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func visitorCreatedAt(createdAt time.Time, category, status string) models.Visitor {
	return models.Visitor{
		Category: category,
		Status:   status,
		Model:    gorm.Model{CreatedAt: createdAt},
	}
}

func visitScheduledAt(scheduledAt time.Time, status string) models.Visit {
	return models.Visit{ScheduledAt: scheduledAt, Status: status}
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil, nil, Window{Kind: WindowMonth}, today)

	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if stats.ConversionRatePercent != 0 {
		t.Errorf("ConversionRatePercent = %v, want 0", stats.ConversionRatePercent)
	}
	if stats.NewMemberCount != 0 {
		t.Errorf("NewMemberCount = %d, want 0", stats.NewMemberCount)
	}
	if len(stats.ByCategory) != 0 || len(stats.ByStatus) != 0 || len(stats.VisitsByStatus) != 0 {
		t.Errorf("expected empty grouping maps, got %v %v %v", stats.ByCategory, stats.ByStatus, stats.VisitsByStatus)
	}
	if len(stats.DailySeries) != 30 {
		t.Fatalf("DailySeries length = %d, want 30", len(stats.DailySeries))
	}
	for i, point := range stats.DailySeries {
		if point.Count != 0 {
			t.Errorf("series[%d] = %d, want 0", i, point.Count)
		}
		if point.Label == "" {
			t.Errorf("series[%d] has empty label", i)
		}
	}
}

func TestAggregateConversionRate(t *testing.T) {
	var visitors []models.Visitor
	for i := 0; i < 10; i++ {
		status := models.VisitorStatusAwaiting
		if i < 3 {
			status = models.VisitorStatusNewMember
		}
		visitors = append(visitors, visitorCreatedAt(today, models.CategoryChristian, status))
	}

	stats := Aggregate(visitors, nil, Window{Kind: WindowMonth}, today)

	if stats.Total != 10 {
		t.Fatalf("Total = %d, want 10", stats.Total)
	}
	if stats.NewMemberCount != 3 {
		t.Fatalf("NewMemberCount = %d, want 3", stats.NewMemberCount)
	}
	if stats.ConversionRatePercent != 30.0 {
		t.Fatalf("ConversionRatePercent = %v, want 30.0", stats.ConversionRatePercent)
	}
}

func TestAggregateConversionRateRoundsToOneDecimal(t *testing.T) {
	visitors := []models.Visitor{
		visitorCreatedAt(today, "", models.VisitorStatusNewMember),
		visitorCreatedAt(today, "", models.VisitorStatusAwaiting),
		visitorCreatedAt(today, "", models.VisitorStatusAwaiting),
	}

	stats := Aggregate(visitors, nil, Window{Kind: WindowWeek}, today)

	if stats.ConversionRatePercent != 33.3 {
		t.Fatalf("ConversionRatePercent = %v, want 33.3", stats.ConversionRatePercent)
	}
}

func TestAggregateGroupsWithSentinel(t *testing.T) {
	visitors := []models.Visitor{
		visitorCreatedAt(today, models.CategoryChristian, models.VisitorStatusVisited),
		visitorCreatedAt(today, models.CategoryChristian, models.VisitorStatusAwaiting),
		visitorCreatedAt(today, "", ""),
	}

	stats := Aggregate(visitors, nil, Window{Kind: WindowWeek}, today)

	if stats.ByCategory[models.CategoryChristian] != 2 {
		t.Errorf("ByCategory[christian] = %d, want 2", stats.ByCategory[models.CategoryChristian])
	}
	if stats.ByCategory[NotInformed] != 1 {
		t.Errorf("ByCategory[%q] = %d, want 1", NotInformed, stats.ByCategory[NotInformed])
	}
	if stats.ByStatus[NotInformed] != 1 {
		t.Errorf("ByStatus[%q] = %d, want 1", NotInformed, stats.ByStatus[NotInformed])
	}
}

func TestAggregateWindowRestrictsVisitors(t *testing.T) {
	visitors := []models.Visitor{
		visitorCreatedAt(today.AddDate(0, 0, -2), "", models.VisitorStatusAwaiting),
		visitorCreatedAt(today.AddDate(0, 0, -20), "", models.VisitorStatusAwaiting),
		visitorCreatedAt(today.AddDate(0, -2, 0), "", models.VisitorStatusAwaiting),
	}

	week := Aggregate(visitors, nil, Window{Kind: WindowWeek}, today)
	if week.Total != 1 {
		t.Errorf("week Total = %d, want 1", week.Total)
	}

	month := Aggregate(visitors, nil, Window{Kind: WindowMonth}, today)
	if month.Total != 2 {
		t.Errorf("month Total = %d, want 2", month.Total)
	}

	quarter := Aggregate(visitors, nil, Window{Kind: WindowQuarter}, today)
	if quarter.Total != 3 {
		t.Errorf("quarter Total = %d, want 3", quarter.Total)
	}
}

func TestAggregateExplicitRange(t *testing.T) {
	visitors := []models.Visitor{
		visitorCreatedAt(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), "", models.VisitorStatusAwaiting),
		visitorCreatedAt(time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC), "", models.VisitorStatusAwaiting),
		visitorCreatedAt(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), "", models.VisitorStatusAwaiting),
	}

	window := Window{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	}
	stats := Aggregate(visitors, nil, window, today)

	// Both boundary days are inclusive.
	if stats.Total != 2 {
		t.Fatalf("Total = %d, want 2", stats.Total)
	}
}

func TestAggregateDailySeriesIndependentOfWindow(t *testing.T) {
	// Created 20 days ago: outside the week window but inside the trailing
	// 30-day series.
	visitors := []models.Visitor{
		visitorCreatedAt(today.AddDate(0, 0, -20), "", models.VisitorStatusAwaiting),
	}

	stats := Aggregate(visitors, nil, Window{Kind: WindowWeek}, today)

	if stats.Total != 0 {
		t.Fatalf("Total = %d, want 0 (outside week window)", stats.Total)
	}

	seriesTotal := 0
	for _, point := range stats.DailySeries {
		seriesTotal += point.Count
	}
	if seriesTotal != 1 {
		t.Fatalf("series total = %d, want 1 regardless of window", seriesTotal)
	}
}

func TestAggregateDailySeriesBoundaries(t *testing.T) {
	visitors := []models.Visitor{
		// today lands on the last entry, 29 days ago on the first,
		// 30 days ago is outside the series.
		visitorCreatedAt(today, "", models.VisitorStatusAwaiting),
		visitorCreatedAt(today.AddDate(0, 0, -29), "", models.VisitorStatusAwaiting),
		visitorCreatedAt(today.AddDate(0, 0, -30), "", models.VisitorStatusAwaiting),
	}

	stats := Aggregate(visitors, nil, Window{Kind: WindowYear}, today)

	if len(stats.DailySeries) != 30 {
		t.Fatalf("DailySeries length = %d, want 30", len(stats.DailySeries))
	}
	if stats.DailySeries[0].Count != 1 {
		t.Errorf("first entry count = %d, want 1", stats.DailySeries[0].Count)
	}
	if stats.DailySeries[29].Count != 1 {
		t.Errorf("last entry count = %d, want 1", stats.DailySeries[29].Count)
	}

	total := 0
	for _, point := range stats.DailySeries {
		total += point.Count
	}
	if total != 2 {
		t.Fatalf("series total = %d, the 31-day-old registration must be excluded", total)
	}
}

func TestAggregateVisitsByStatus(t *testing.T) {
	visits := []models.Visit{
		visitScheduledAt(today.AddDate(0, 0, -1), models.VisitStatusCompleted),
		visitScheduledAt(today.AddDate(0, 0, -2), models.VisitStatusCompleted),
		visitScheduledAt(today.AddDate(0, 0, -3), models.VisitStatusCancelled),
		visitScheduledAt(today.AddDate(0, 0, 2), models.VisitStatusScheduled),
		visitScheduledAt(today.AddDate(0, -2, 0), models.VisitStatusCompleted), // outside month window
	}

	stats := Aggregate(nil, visits, Window{Kind: WindowMonth}, today)

	if stats.VisitsByStatus[models.VisitStatusCompleted] != 2 {
		t.Errorf("completed = %d, want 2", stats.VisitsByStatus[models.VisitStatusCompleted])
	}
	if stats.VisitsByStatus[models.VisitStatusCancelled] != 1 {
		t.Errorf("cancelled = %d, want 1", stats.VisitsByStatus[models.VisitStatusCancelled])
	}
}
