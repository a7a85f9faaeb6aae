package analytics

import (
	"math"
	"time"

	"visitacare-backend/models"
	"visitacare-backend/utils"
)

// Window kinds
const (
	WindowWeek    = "week"
	WindowMonth   = "month"
	WindowQuarter = "quarter"
	WindowYear    = "year"
)

// NotInformed is the grouping key used for records missing a category or
// status value.
const NotInformed = "Not informed"

// seriesDays is the fixed length of the daily registration series.
const seriesDays = 30

// Window scopes an aggregation. Either Kind is one of the named kinds, or
// From/To give an explicit inclusive date range.
type Window struct {
	Kind string
	From time.Time
	To   time.Time
}

// Resolve turns the window into a concrete [from, to] range anchored on
// today. Named kinds look back from the end of today; an explicit range is
// widened to whole days.
func (w Window) Resolve(today time.Time) (time.Time, time.Time) {
	to := utils.EndOfDay(today)
	switch w.Kind {
	case WindowWeek:
		return utils.BeginningOfDay(today.AddDate(0, 0, -7)), to
	case WindowMonth:
		return utils.BeginningOfDay(today.AddDate(0, -1, 0)), to
	case WindowQuarter:
		return utils.BeginningOfDay(today.AddDate(0, -3, 0)), to
	case WindowYear:
		return utils.BeginningOfDay(today.AddDate(-1, 0, 0)), to
	}
	return utils.BeginningOfDay(w.From), utils.EndOfDay(w.To)
}

// SeriesPoint is one day of the registration series.
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats is the aggregated view over visitors and visits for a window.
type Stats struct {
	Total                 int            `json:"total"`
	ByCategory            map[string]int `json:"byCategory"`
	ByStatus              map[string]int `json:"byStatus"`
	NewMemberCount        int            `json:"newMemberCount"`
	ConversionRatePercent float64        `json:"conversionRatePercent"`
	DailySeries           []SeriesPoint  `json:"dailySeries"`
	VisitsByStatus        map[string]int `json:"visitsByStatus"`
}

// Aggregate computes grouped counts, the conversion rate and the trailing
// 30-day registration series. Visitors are restricted to those created inside
// the window before grouping; the daily series is always the trailing 30 days
// ending today, regardless of the window. Visits are counted by status over
// their scheduled time. Empty input yields an all-zero Stats with a full
// zero-filled series; this function never fails.
func Aggregate(visitors []models.Visitor, visits []models.Visit, window Window, today time.Time) Stats {
	from, to := window.Resolve(today)

	stats := Stats{
		ByCategory:     map[string]int{},
		ByStatus:       map[string]int{},
		VisitsByStatus: map[string]int{},
	}

	for _, visitor := range visitors {
		if !inRange(visitor.CreatedAt, from, to) {
			continue
		}
		stats.Total++
		stats.ByCategory[keyOrSentinel(visitor.Category)]++
		stats.ByStatus[keyOrSentinel(visitor.Status)]++
		if visitor.Status == models.VisitorStatusNewMember {
			stats.NewMemberCount++
		}
	}

	if stats.Total > 0 {
		rate := float64(stats.NewMemberCount) / float64(stats.Total) * 100
		stats.ConversionRatePercent = math.Round(rate*10) / 10
	}

	for _, visit := range visits {
		if !inRange(visit.ScheduledAt, from, to) {
			continue
		}
		stats.VisitsByStatus[keyOrSentinel(visit.Status)]++
	}

	stats.DailySeries = dailySeries(visitors, today)

	return stats
}

// dailySeries counts registrations per day over the trailing 30 days ending
// today inclusive. Days without registrations appear with a zero count.
func dailySeries(visitors []models.Visitor, today time.Time) []SeriesPoint {
	start := utils.BeginningOfDay(today)
	series := make([]SeriesPoint, 0, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		day := start.AddDate(0, 0, -i)
		count := 0
		for _, visitor := range visitors {
			if utils.SameDay(visitor.CreatedAt, day) {
				count++
			}
		}
		series = append(series, SeriesPoint{Label: day.Format("02/01"), Count: count})
	}
	return series
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func keyOrSentinel(value string) string {
	if value == "" {
		return NotInformed
	}
	return value
}
