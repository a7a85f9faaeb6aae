package scheduling

import (
	"time"

	"visitacare-backend/models"
	"visitacare-backend/utils"
)

// DayCell is one cell of the month calendar as rendered by any client.
type DayCell struct {
	Date       time.Time      `json:"date"`
	Visits     []models.Visit `json:"visits"`
	Selectable bool           `json:"selectable"`
	Padding    bool           `json:"padding"`
}

// BuildMonthGrid produces the calendar cells for a month, Sunday first.
// Leading cells pad the grid with the previous month's trailing days, never
// selectable and never carrying visits. Day cells are selectable from today
// onward (date-only comparison) and carry the visits scheduled on that date.
// The grid ends at the last day of the month with no trailing padding.
func BuildMonthGrid(year int, month time.Month, visits []models.Visit, today time.Time) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	cells := make([]DayCell, 0, lead+lastDay)
	for i := lead; i > 0; i-- {
		cells = append(cells, DayCell{
			Date:    first.AddDate(0, 0, -i),
			Visits:  []models.Visit{},
			Padding: true,
		})
	}

	startOfToday := utils.BeginningOfDay(today)
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		cells = append(cells, DayCell{
			Date:       date,
			Visits:     visitsOnDate(visits, date),
			Selectable: !date.Before(startOfToday),
		})
	}

	return cells
}

func visitsOnDate(visits []models.Visit, date time.Time) []models.Visit {
	matched := []models.Visit{}
	for _, visit := range visits {
		if utils.SameDay(visit.ScheduledAt, date) {
			matched = append(matched, visit)
		}
	}
	return matched
}

// PrevMonth steps the calendar back one month, refusing to move before the
// month containing today.
func PrevMonth(year int, month time.Month, today time.Time) (int, time.Month) {
	prev := time.Date(year, month, 1, 0, 0, 0, 0, today.Location()).AddDate(0, -1, 0)
	floor := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if prev.Before(floor) {
		return year, month
	}
	return prev.Year(), prev.Month()
}

// NextMonth steps the calendar forward one month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return next.Year(), next.Month()
}

// CanNavigateBack reports whether the month before (year, month) is still
// navigable, i.e. not strictly before the month containing today.
func CanNavigateBack(year int, month time.Month, today time.Time) bool {
	py, pm := PrevMonth(year, month, today)
	return py != year || pm != month
}
