package analytics

import (
	"time"

	"visitacare-backend/models"
)

// ReportRow is one flattened visitor record.
type ReportRow struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportDocument is the renderer-agnostic report representation. A CSV, PDF
// or HTML renderer consumes it downstream; nothing here touches bytes.
type ReportDocument struct {
	Title          string      `json:"title"`
	Subtitle       string      `json:"subtitle"`
	GeneratedAt    time.Time   `json:"generatedAt"`
	GeneratedBy    string      `json:"generatedBy"`
	TotalRecords   int         `json:"totalRecords"`
	AppliedFilters []string    `json:"appliedFilters"`
	Rows           []ReportRow `json:"rows"`
}

// AssembleReport flattens the filtered records into a report document. Row
// order preserves the order of records as received; callers sort beforehand,
// typically descending by creation time. No I/O happens here.
func AssembleReport(title, periodLabel string, records []models.Visitor, appliedFilters []string, generatedBy string, now time.Time) ReportDocument {
	if appliedFilters == nil {
		appliedFilters = []string{}
	}

	rows := make([]ReportRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, ReportRow{
			Name:      record.Name,
			Phone:     record.Phone,
			Category:  record.Category,
			Status:    record.Status,
			CreatedAt: record.CreatedAt,
		})
	}

	return ReportDocument{
		Title:          title,
		Subtitle:       periodLabel,
		GeneratedAt:    now,
		GeneratedBy:    generatedBy,
		TotalRecords:   len(rows),
		AppliedFilters: appliedFilters,
		Rows:           rows,
	}
}
