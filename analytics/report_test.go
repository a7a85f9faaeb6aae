package analytics

import (
	"testing"
	"time"

	"visitacare-backend/models"

	"gorm.io/gorm"
)

func TestAssembleReportPreservesRecordOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	records := []models.Visitor{
		{Name: "Carla", Phone: "5511111111111", Category: models.CategoryChristian, Status: models.VisitorStatusVisited, Model: gorm.Model{CreatedAt: now.AddDate(0, 0, -1)}},
		{Name: "Bruno", Phone: "5522222222222", Category: models.CategoryOther, Status: models.VisitorStatusAwaiting, Model: gorm.Model{CreatedAt: now.AddDate(0, 0, -5)}},
		{Name: "Alice", Phone: "5533333333333", Category: models.CategoryNonChristian, Status: models.VisitorStatusNewMember, Model: gorm.Model{CreatedAt: now.AddDate(0, 0, -9)}},
	}

	document := AssembleReport("Visitor report", "June 2025", records,
		[]string{"status: visited"}, "Pr. Jonas", now)

	if document.TotalRecords != 3 {
		t.Fatalf("TotalRecords = %d, want 3", document.TotalRecords)
	}
	if len(document.Rows) != 3 {
		t.Fatalf("len(Rows) = %d, want 3", len(document.Rows))
	}

	wantOrder := []string{"Carla", "Bruno", "Alice"}
	for i, want := range wantOrder {
		if document.Rows[i].Name != want {
			t.Errorf("Rows[%d].Name = %q, want %q", i, document.Rows[i].Name, want)
		}
	}

	if document.Rows[0].Phone != "5511111111111" {
		t.Errorf("Rows[0].Phone = %q", document.Rows[0].Phone)
	}
	if document.Rows[2].Status != models.VisitorStatusNewMember {
		t.Errorf("Rows[2].Status = %q", document.Rows[2].Status)
	}
}

func TestAssembleReportMetadata(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

	document := AssembleReport("Visitor report", "All time", nil, nil, "Pr. Jonas", now)

	if document.Title != "Visitor report" {
		t.Errorf("Title = %q", document.Title)
	}
	if document.Subtitle != "All time" {
		t.Errorf("Subtitle = %q", document.Subtitle)
	}
	if !document.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", document.GeneratedAt, now)
	}
	if document.GeneratedBy != "Pr. Jonas" {
		t.Errorf("GeneratedBy = %q", document.GeneratedBy)
	}
	if document.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", document.TotalRecords)
	}
	if document.Rows == nil || len(document.Rows) != 0 {
		t.Errorf("Rows should be an empty slice, got %v", document.Rows)
	}
	if document.AppliedFilters == nil || len(document.AppliedFilters) != 0 {
		t.Errorf("AppliedFilters should be an empty slice, got %v", document.AppliedFilters)
	}
}
