package service

import (
	"math"
	"time"

	"momentum/internal/clock"
	"momentum/internal/model"
)

// Two overdue thresholds coexist on purpose: the strict one backs the
// simple per-task flag, the lenient one backs statistics and the display
// status helper. Do not unify them without a product decision.
const (
	StrictOverdueAfter  = time.Hour
	LenientOverdueAfter = 2 * time.Hour
)

// DisplayStatus is the day-relative status shown for a task. It differs
// from the lifecycle status: skipped tasks display as overdue.
type DisplayStatus string

const (
	DisplayCompleted DisplayStatus = "completed"
	DisplayOverdue   DisplayStatus = "overdue"
	DisplayUpcoming  DisplayStatus = "upcoming"
	DisplayPending   DisplayStatus = "pending"
)

// TaskStats aggregates a task collection into display counters.
type TaskStats struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Pending             int `json:"pending"`
	Skipped             int `json:"skipped"`
	TodayTotal          int `json:"todayTotal"`
	TodayCompleted      int `json:"todayCompleted"`
	TodayPending        int `json:"todayPending"`
	Overdue             int `json:"overdue"`
	Upcoming            int `json:"upcoming"`
	Recurring           int `json:"recurring"`
	CompletionRate      int `json:"completionRate"`
	TodayCompletionRate int `json:"todayCompletionRate"`
	TotalCompletionTime int `json:"totalCompletionTime"`
	AverageSatisfaction int `json:"averageSatisfaction"`
}

// QueryService derives day-relative views and statistics from a task
// collection. It is pure apart from reading the injected clock.
type QueryService struct {
	clock clock.Clock
}

func NewQueryService(clk clock.Clock) *QueryService {
	return &QueryService{clock: clk}
}

// Todays returns tasks scheduled for today's calendar date or overdue from
// earlier, regardless of lifecycle status.
func (s *QueryService) Todays(tasks []model.Task) []model.Task {
	now := s.clock.Now()
	var out []model.Task
	for _, t := range tasks {
		if t.ScheduledFor == nil {
			continue
		}
		if sameDay(*t.ScheduledFor, now) || t.ScheduledFor.Before(now) {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns not-completed tasks past the lenient threshold.
func (s *QueryService) Overdue(tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if s.IsOverdueLenient(t) {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns pending tasks scheduled strictly in the future.
func (s *QueryService) Upcoming(tasks []model.Task) []model.Task {
	now := s.clock.Now()
	var out []model.Task
	for _, t := range tasks {
		if t.Status == model.StatusPending && t.ScheduledFor != nil && t.ScheduledFor.After(now) {
			out = append(out, t)
		}
	}
	return out
}

// Recurring returns all recurring tasks.
func (s *QueryService) Recurring(tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.IsRecurring {
			out = append(out, t)
		}
	}
	return out
}

// IsOverdueStrict reports whether the task is more than one hour past its
// scheduled time and not completed.
func (s *QueryService) IsOverdueStrict(t model.Task) bool {
	return s.overdueAfter(t, StrictOverdueAfter)
}

// IsOverdueLenient reports whether the task is more than two hours past
// its scheduled time and not completed.
func (s *QueryService) IsOverdueLenient(t model.Task) bool {
	return s.overdueAfter(t, LenientOverdueAfter)
}

func (s *QueryService) overdueAfter(t model.Task, threshold time.Duration) bool {
	if t.ScheduledFor == nil || t.Status == model.StatusCompleted {
		return false
	}
	return s.clock.Now().Sub(*t.ScheduledFor) > threshold
}

// Status maps a task to its display status. Skipped tasks land in the
// overdue bucket; that quirk is kept from the observed behavior.
func (s *QueryService) Status(t model.Task) DisplayStatus {
	if t.Status == model.StatusCompleted {
		return DisplayCompleted
	}
	if t.Status == model.StatusSkipped {
		return DisplayOverdue
	}
	if t.ScheduledFor != nil {
		if s.IsOverdueLenient(t) {
			return DisplayOverdue
		}
		if t.ScheduledFor.Sub(s.clock.Now()) > time.Hour {
			return DisplayUpcoming
		}
	}
	return DisplayPending
}

// Statistics computes the aggregate counters for a task collection.
// An empty collection yields all zeros; rates never divide by zero.
func (s *QueryService) Statistics(tasks []model.Task) TaskStats {
	todays := s.Todays(tasks)

	stats := TaskStats{
		Total:      len(tasks),
		TodayTotal: len(todays),
		Overdue:    len(s.Overdue(tasks)),
		Upcoming:   len(s.Upcoming(tasks)),
		Recurring:  len(s.Recurring(tasks)),
	}

	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			stats.Completed++
		case model.StatusPending:
			stats.Pending++
		case model.StatusSkipped:
			stats.Skipped++
		}
		stats.TotalCompletionTime += t.TotalCompletionTimeMinutes
	}
	for _, t := range todays {
		switch t.Status {
		case model.StatusCompleted:
			stats.TodayCompleted++
		case model.StatusPending:
			stats.TodayPending++
		}
	}

	stats.CompletionRate = roundedRate(stats.Completed, stats.Total)
	stats.TodayCompletionRate = roundedRate(stats.TodayCompleted, stats.TodayTotal)
	stats.AverageSatisfaction = averageSatisfaction(tasks)
	return stats
}

// averageSatisfaction is the rounded mean of lastSatisfaction over
// completed tasks that recorded one; 0 when there are none.
func averageSatisfaction(tasks []model.Task) int {
	var sum, n int
	for _, t := range tasks {
		if t.Status == model.StatusCompleted && t.Context.LastSatisfaction > 0 {
			sum += t.Context.LastSatisfaction
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func roundedRate(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
