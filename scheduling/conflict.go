package scheduling

import (
	"strings"
	"time"

	"visitacare-backend/models"
	"visitacare-backend/utils"
)

// VisitCandidate is a visit as submitted by a scheduling form, before any
// parsing has happened.
type VisitCandidate struct {
	VisitorID   string
	ScheduledAt string // RFC 3339
}

// ValidationResult carries the accumulated per-field errors for a candidate.
// Valid is true only when FieldErrors is empty.
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors"`
}

// ValidateVisit checks a candidate visit against the scheduling rules and the
// caller's snapshot of the visitor's existing visits. Every rule is
// evaluated; violations accumulate in FieldErrors so a form can surface all
// problems at once. It never panics or returns an error: the result structure
// is the whole contract.
//
// Rules:
//  1. VisitorID must have a valid hyphenated UUID shape.
//  2. ScheduledAt must parse as RFC 3339.
//  3. The parsed time must be strictly after now.
//  4. No existing scheduled or rescheduled visit may exist for the same
//     visitor on the same calendar date.
func ValidateVisit(candidate VisitCandidate, existing []models.Visit, now time.Time) ValidationResult {
	fieldErrors := map[string]string{}

	visitorOK := utils.ValidateUUID(candidate.VisitorID)
	if !visitorOK {
		fieldErrors["visitorId"] = "must be a valid visitor id"
	}

	scheduledAt, err := time.Parse(time.RFC3339, candidate.ScheduledAt)
	dateOK := err == nil
	if !dateOK {
		fieldErrors["scheduledAt"] = "must be a valid date"
	} else if !scheduledAt.After(now) {
		fieldErrors["scheduledAt"] = "must be in the future"
	}

	// The conflict rule only makes sense once both fields parsed.
	if visitorOK && dateOK {
		for _, visit := range existing {
			if !strings.EqualFold(visit.VisitorID.String(), candidate.VisitorID) {
				continue
			}
			if visit.Status != models.VisitStatusScheduled && visit.Status != models.VisitStatusRescheduled {
				continue
			}
			if utils.SameDay(visit.ScheduledAt, scheduledAt) {
				fieldErrors["visitorId"] = "conflicting visit exists on this date"
				break
			}
		}
	}

	return ValidationResult{Valid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}
