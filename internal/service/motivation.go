package service

import (
	"math"
	"sort"
	"time"

	"momentum/internal/model"
)

// MotivationalMessage picks a message for the given completion rate band.
func MotivationalMessage(completionRate int) string {
	switch {
	case completionRate == 0:
		return "Ready to make today extraordinary? Your future self will thank you! 💪"
	case completionRate >= 100:
		return "Outstanding! You've mastered today's challenges. You're unstoppable! 🌟"
	case completionRate >= 80:
		return "Incredible momentum! You're crushing your goals! 🚀"
	case completionRate >= 60:
		return "Great progress! You're building excellent habits! ⭐"
	case completionRate >= 40:
		return "Good start! Keep pushing forward, you've got this! 💪"
	default:
		return "Every journey begins with a single step. You're on your way! 🎯"
	}
}

// CalendarStreakDays counts consecutive calendar days with at least one
// completion, walking backwards from today.
func CalendarStreakDays(tasks []model.Task, now time.Time) int {
	days := make(map[string]bool)
	for _, t := range tasks {
		if t.Status == model.StatusCompleted && t.CompletedAt != nil {
			days[t.CompletedAt.Format("2006-01-02")] = true
		}
	}

	streak := 0
	cursor := startOfDay(now)
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyStats summarizes the tasks created in the last seven days.
type WeeklyStats struct {
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	CompletionRate int `json:"completionRate"`
	AveragePerDay  int `json:"averagePerDay"`
}

// WeekInReview computes the last-7-days summary relative to now.
func WeekInReview(tasks []model.Task, now time.Time) WeeklyStats {
	cutoff := now.AddDate(0, 0, -7)

	var total, completed int
	for _, t := range tasks {
		if t.CreatedAt.Before(cutoff) {
			continue
		}
		total++
		if t.Status == model.StatusCompleted {
			completed++
		}
	}

	return WeeklyStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		CompletionRate: roundedRate(completed, total),
		AveragePerDay:  int(math.Round(float64(total) / 7)),
	}
}

// GroupByDate buckets scheduled tasks by calendar date (formatted
// 2006-01-02), each bucket ordered by scheduled time.
func GroupByDate(tasks []model.Task) map[string][]model.Task {
	grouped := make(map[string][]model.Task)
	for _, t := range tasks {
		if t.ScheduledFor == nil {
			continue
		}
		key := t.ScheduledFor.Format("2006-01-02")
		grouped[key] = append(grouped[key], t)
	}
	for key := range grouped {
		bucket := grouped[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].ScheduledFor.Before(*bucket[j].ScheduledFor)
		})
	}
	return grouped
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
