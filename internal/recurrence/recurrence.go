// Package recurrence computes the next occurrence date for recurring tasks.
package recurrence

import (
	"time"

	"momentum/internal/model"
)

// NextOccurrence returns the next occurrence after anchor for the given
// pattern and config, and false when the series has no next occurrence:
// an unknown/custom pattern, or a computed date past config.EndDate.
//
// Monthly arithmetic uses time.AddDate, which normalizes day-of-month
// overflow forward (Jan 31 + 1 month lands in early March).
func NextOccurrence(anchor time.Time, pattern model.RecurrencePattern, cfg *model.RecurrenceConfig) (time.Time, bool) {
	interval := 1
	if cfg != nil && cfg.Interval > 0 {
		interval = cfg.Interval
	}

	var next time.Time
	switch pattern {
	case model.RecurDaily:
		next = anchor.AddDate(0, 0, interval)
	case model.RecurWeekly:
		next = anchor.AddDate(0, 0, 7*interval)
	case model.RecurMonthly:
		next = anchor.AddDate(0, interval, 0)
	default:
		return time.Time{}, false
	}

	if cfg != nil && cfg.EndDate != nil && next.After(*cfg.EndDate) {
		return time.Time{}, false
	}

	return next, true
}
