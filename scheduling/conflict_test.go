package scheduling

import (
	"testing"
	"time"

	"visitacare-backend/models"

	"github.com/google/uuid"
)

var (
	mariaID = "7f8d2a10-4c3b-4e5f-8a9b-1c2d3e4f5a6b"
	now     = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
)

func activeVisit(visitorID string, scheduledAt time.Time, status string) models.Visit {
	return models.Visit{
		ID:          uuid.New(),
		VisitorID:   uuid.MustParse(visitorID),
		ScheduledAt: scheduledAt,
		Status:      status,
	}
}

func TestValidateVisitAccepted(t *testing.T) {
	result := ValidateVisit(VisitCandidate{
		VisitorID:   mariaID,
		ScheduledAt: "2025-05-11T09:00:00Z",
	}, nil, now)

	if !result.Valid {
		t.Fatalf("expected valid, got errors %v", result.FieldErrors)
	}
	if len(result.FieldErrors) != 0 {
		t.Fatalf("expected empty field errors, got %v", result.FieldErrors)
	}
}

func TestValidateVisitFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		candidate VisitCandidate
		wantField string
	}{
		{
			name:      "missing visitor id",
			candidate: VisitCandidate{VisitorID: "", ScheduledAt: "2025-05-11T09:00:00Z"},
			wantField: "visitorId",
		},
		{
			name:      "malformed visitor id",
			candidate: VisitCandidate{VisitorID: "not-a-uuid", ScheduledAt: "2025-05-11T09:00:00Z"},
			wantField: "visitorId",
		},
		{
			name:      "wrong variant nibble",
			candidate: VisitCandidate{VisitorID: "7f8d2a10-4c3b-4e5f-0a9b-1c2d3e4f5a6b", ScheduledAt: "2025-05-11T09:00:00Z"},
			wantField: "visitorId",
		},
		{
			name:      "unparseable date",
			candidate: VisitCandidate{VisitorID: mariaID, ScheduledAt: "11/05/2025"},
			wantField: "scheduledAt",
		},
		{
			name:      "past timestamp",
			candidate: VisitCandidate{VisitorID: mariaID, ScheduledAt: "2025-04-30T09:00:00Z"},
			wantField: "scheduledAt",
		},
		{
			name:      "exactly now is not strictly future",
			candidate: VisitCandidate{VisitorID: mariaID, ScheduledAt: "2025-05-01T12:00:00Z"},
			wantField: "scheduledAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateVisit(tt.candidate, nil, now)
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			if _, ok := result.FieldErrors[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, result.FieldErrors)
			}
		})
	}
}

func TestValidateVisitAccumulatesAllErrors(t *testing.T) {
	result := ValidateVisit(VisitCandidate{
		VisitorID:   "bogus",
		ScheduledAt: "also-bogus",
	}, nil, now)

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if len(result.FieldErrors) != 2 {
		t.Fatalf("expected both field errors reported, got %v", result.FieldErrors)
	}
}

func TestValidateVisitPastTimestampAlwaysFlagged(t *testing.T) {
	// Even with every other field broken, a past timestamp must surface.
	result := ValidateVisit(VisitCandidate{
		VisitorID:   "not-a-uuid",
		ScheduledAt: "2020-01-01T00:00:00Z",
	}, nil, now)

	if result.Valid {
		t.Fatal("expected invalid result")
	}
	if result.FieldErrors["scheduledAt"] == "" {
		t.Fatalf("expected scheduledAt error, got %v", result.FieldErrors)
	}
}

func TestValidateVisitConflictSameDate(t *testing.T) {
	existing := []models.Visit{
		activeVisit(mariaID, time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC), models.VisitStatusScheduled),
	}

	// Same visitor, same date, different time of day: conflict.
	result := ValidateVisit(VisitCandidate{
		VisitorID:   mariaID,
		ScheduledAt: "2025-05-10T09:00:00Z",
	}, existing, now)

	if result.Valid {
		t.Fatal("expected conflict")
	}
	if result.FieldErrors["visitorId"] == "" {
		t.Fatalf("expected visitorId conflict error, got %v", result.FieldErrors)
	}

	// Next day: no conflict.
	result = ValidateVisit(VisitCandidate{
		VisitorID:   mariaID,
		ScheduledAt: "2025-05-11T09:00:00Z",
	}, existing, now)

	if !result.Valid {
		t.Fatalf("expected valid, got %v", result.FieldErrors)
	}
}

func TestValidateVisitConflictIgnoresInactiveStatuses(t *testing.T) {
	for _, status := range []string{models.VisitStatusCompleted, models.VisitStatusCancelled} {
		existing := []models.Visit{
			activeVisit(mariaID, time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC), status),
		}
		result := ValidateVisit(VisitCandidate{
			VisitorID:   mariaID,
			ScheduledAt: "2025-05-10T09:00:00Z",
		}, existing, now)
		if !result.Valid {
			t.Fatalf("status %s should not conflict, got %v", status, result.FieldErrors)
		}
	}
}

func TestValidateVisitConflictIgnoresOtherVisitors(t *testing.T) {
	otherID := "0aa1b2c3-d4e5-4f60-9182-93a4b5c6d7e8"
	existing := []models.Visit{
		activeVisit(otherID, time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC), models.VisitStatusScheduled),
	}

	result := ValidateVisit(VisitCandidate{
		VisitorID:   mariaID,
		ScheduledAt: "2025-05-10T09:00:00Z",
	}, existing, now)

	if !result.Valid {
		t.Fatalf("different visitor should not conflict, got %v", result.FieldErrors)
	}
}

func TestValidateVisitRejectsSecondBookingAfterFirstLands(t *testing.T) {
	var existing []models.Visit

	candidate := VisitCandidate{
		VisitorID:   mariaID,
		ScheduledAt: "2025-05-10T09:00:00Z",
	}

	first := ValidateVisit(candidate, existing, now)
	if !first.Valid {
		t.Fatalf("first booking should pass, got %v", first.FieldErrors)
	}

	scheduledAt, _ := time.Parse(time.RFC3339, candidate.ScheduledAt)
	existing = append(existing, activeVisit(mariaID, scheduledAt, models.VisitStatusScheduled))

	second := ValidateVisit(candidate, existing, now)
	if second.Valid {
		t.Fatal("second booking on the same date should be rejected")
	}
}
