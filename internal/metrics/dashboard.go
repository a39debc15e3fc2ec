// Package metrics derives display numbers from raw fetched records. Every
// function takes time explicitly so boundary behavior is deterministic
// under test; nothing here reads a global clock.
package metrics

import (
	"time"

	"github.com/harborview/marinadesk/internal/models"
)

// Activity holds the dashboard's client-side derived counters
type Activity struct {
	OverdueMaintenance   int
	NewCustomersThisWeek int
	VisitsCompletedToday int
}

// DeriveActivity combines the three client-side counters for the
// dashboard's activity panel
func DeriveActivity(now time.Time, overdue []models.MaintenanceRecord, customers []models.Customer, visits []models.Visit) Activity {
	return Activity{
		OverdueMaintenance:   OverdueCount(overdue),
		NewCustomersThisWeek: NewCustomersThisWeek(now, customers),
		VisitsCompletedToday: VisitsCompletedToday(now, visits),
	}
}

// OverdueCount counts records the backend flagged overdue; the input is
// the /maintenance/overdue response, so every record counts
func OverdueCount(records []models.MaintenanceRecord) int {
	return len(records)
}

// NewCustomersThisWeek counts customers created in the trailing 7-day
// window ending at now. Both boundaries are inclusive: a customer created
// exactly 7 days before now is counted.
func NewCustomersThisWeek(now time.Time, customers []models.Customer) int {
	weekAgo := now.AddDate(0, 0, -7)
	n := 0
	for _, c := range customers {
		if !c.CreatedAt.Before(weekAgo) && !c.CreatedAt.After(now) {
			n++
		}
	}
	return n
}

// VisitsCompletedToday counts visits whose check-out falls within the
// current local calendar day, 00:00:00.000 through 23:59:59.999. Visits
// without a check-out never count, whatever their check-in.
func VisitsCompletedToday(now time.Time, visits []models.Visit) int {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999000000, now.Location())

	n := 0
	for _, v := range visits {
		if v.CheckOutTime == nil {
			continue
		}
		out := v.CheckOutTime.In(now.Location())
		if !out.Before(start) && !out.After(end) {
			n++
		}
	}
	return n
}

// ClampPercent bounds a backend-reported rate to [0, 100] for progress
// bar rendering. The rate itself is displayed as reported; only the bar
// width is clamped.
func ClampPercent(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
