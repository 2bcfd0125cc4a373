package service

import (
	"fmt"
	"math"
	"sort"

	"momentum/internal/model"
)

// Heuristic thresholds for the analyzer. Tuned against observed behavior;
// keep in sync with the tests before changing any of them.
const (
	consistencyMinRate     = 80.0
	consistencyMinDone     = 5
	skipPatternMinRate     = 30.0
	skipPatternMinSkipped  = 3
	peakHourMinSample      = 5
	peakHourMinOccurrences = 3
	goalsNearDoneProgress  = 70.0
	goalsStalledProgress   = 20.0
	goalsStalledMinActive  = 2
	streakMinLength        = 7
	categoryMinBestRate    = 80.0
	categoryMinSpread      = 30.0
)

// InsightAnalyzer turns task and goal history into ranked, typed insights.
// Analyze is deterministic and side-effect free: identical inputs always
// produce the same drafts in the same order.
type InsightAnalyzer struct{}

func NewInsightAnalyzer() *InsightAnalyzer { return &InsightAnalyzer{} }

// Analyze runs the six heuristics in fixed order. Each appends at most one
// draft; none short-circuits the others. Drafts carry no ID, owner, or
// timestamp; the caller stamps those at persistence time.
func (a *InsightAnalyzer) Analyze(tasks []model.Task, goals []model.Goal) []model.Insight {
	var insights []model.Insight

	var completed, skipped int
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			completed++
		case model.StatusSkipped:
			skipped++
		}
	}
	var completionRate, skipRate float64
	if len(tasks) > 0 {
		completionRate = float64(completed) / float64(len(tasks)) * 100
		skipRate = float64(skipped) / float64(len(tasks)) * 100
	}

	if completionRate >= consistencyMinRate && completed >= consistencyMinDone {
		insights = append(insights, model.Insight{
			Type:        model.InsightAchievement,
			Title:       "Consistency Champion! 🏆",
			Description: fmt.Sprintf("You've completed %d%% of your tasks. Your dedication is impressive!", roundPct(completionRate)),
			Confidence:  0.95,
			Actionable:  false,
			Icon:        "🏆",
			Metadata:    model.InsightMetadata{CompletionRate: completionRate, TotalTasks: len(tasks)},
		})
	}

	if skipRate >= skipPatternMinRate && skipped >= skipPatternMinSkipped {
		insights = append(insights, model.Insight{
			Type:        model.InsightCoaching,
			Title:       "Task Skipping Pattern Detected ⚠️",
			Description: fmt.Sprintf("You're skipping %d%% of tasks. Consider if tasks are too difficult or poorly timed.", roundPct(skipRate)),
			Confidence:  0.85,
			Actionable:  true,
			Icon:        "⚠️",
			Metadata:    model.InsightMetadata{SkipRate: skipRate, SkippedTasks: skipped},
		})
	}

	if draft, ok := a.peakHour(tasks); ok {
		insights = append(insights, draft)
	}
	if draft, ok := a.goalProgress(goals); ok {
		insights = append(insights, draft)
	}
	if draft, ok := a.streak(tasks); ok {
		insights = append(insights, draft)
	}
	if draft, ok := a.categoryStrength(tasks, goals); ok {
		insights = append(insights, draft)
	}

	return insights
}

// peakHour buckets completed, scheduled tasks by hour of day and reports
// the modal hour once the sample is large enough. Ties resolve to the
// earliest hour.
func (a *InsightAnalyzer) peakHour(tasks []model.Task) (model.Insight, bool) {
	var counts [24]int
	sample := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted && t.ScheduledFor != nil {
			counts[t.ScheduledFor.Hour()]++
			sample++
		}
	}
	if sample < peakHourMinSample {
		return model.Insight{}, false
	}

	peak, peakCount := 0, 0
	for hour, n := range counts {
		if n > peakCount {
			peak, peakCount = hour, n
		}
	}
	if peakCount < peakHourMinOccurrences {
		return model.Insight{}, false
	}

	return model.Insight{
		Type:        model.InsightPattern,
		Title:       "Peak Productivity Time Found! 📈",
		Description: fmt.Sprintf("You're most productive at %d:00. Schedule important tasks during this time.", peak),
		Confidence:  0.80,
		Actionable:  true,
		Icon:        "📈",
		Metadata:    model.InsightMetadata{PeakHour: peak, TaskCount: peakCount},
	}, true
}

// goalProgress emits at most one of two mutually exclusive drafts over the
// active goal set: near-done praise, or a stalled-goals nudge.
func (a *InsightAnalyzer) goalProgress(goals []model.Goal) (model.Insight, bool) {
	var active []model.Goal
	for _, g := range goals {
		if g.Status == model.GoalActive {
			active = append(active, g)
		}
	}
	if len(active) == 0 {
		return model.Insight{}, false
	}

	sum := 0
	for _, g := range active {
		sum += g.CompletionPercentage
	}
	avg := float64(sum) / float64(len(active))

	switch {
	case avg >= goalsNearDoneProgress:
		return model.Insight{
			Type:        model.InsightAchievement,
			Title:       "Goals Almost Complete! 🎯",
			Description: fmt.Sprintf("Your active goals are %d%% complete. You're doing great!", roundPct(avg)),
			Confidence:  0.90,
			Actionable:  false,
			Icon:        "🎯",
			Metadata:    model.InsightMetadata{AvgProgress: avg, ActiveGoalsCount: len(active)},
		}, true
	case avg <= goalsStalledProgress && len(active) >= goalsStalledMinActive:
		return model.Insight{
			Type:        model.InsightSuggestion,
			Title:       "Need a Boost? 💪",
			Description: fmt.Sprintf("Your goals are only %d%% complete. Try breaking them into smaller tasks.", roundPct(avg)),
			Confidence:  0.75,
			Actionable:  true,
			Icon:        "💪",
			Metadata:    model.InsightMetadata{AvgProgress: avg, ActiveGoalsCount: len(active)},
		}, true
	default:
		return model.Insight{}, false
	}
}

func (a *InsightAnalyzer) streak(tasks []model.Task) (model.Insight, bool) {
	maxStreak, withStreaks := 0, 0
	for _, t := range tasks {
		if t.StreakCount > 0 {
			withStreaks++
			if t.StreakCount > maxStreak {
				maxStreak = t.StreakCount
			}
		}
	}
	if maxStreak < streakMinLength {
		return model.Insight{}, false
	}

	return model.Insight{
		Type:        model.InsightAchievement,
		Title:       "Streak Master! 🔥",
		Description: fmt.Sprintf("You've maintained a %d-day streak on some tasks. Consistency is key!", maxStreak),
		Confidence:  0.95,
		Actionable:  false,
		Icon:        "🔥",
		Metadata:    model.InsightMetadata{MaxStreak: maxStreak, TasksWithStreaks: withStreaks},
	}, true
}

// categoryStrength compares per-category completion rates for tasks linked
// to goals. Requires at least two represented categories; ties resolve in
// lexicographic category order.
func (a *InsightAnalyzer) categoryStrength(tasks []model.Task, goals []model.Goal) (model.Insight, bool) {
	categoryOf := make(map[string]model.GoalCategory, len(goals))
	for _, g := range goals {
		categoryOf[g.ID] = g.Category
	}

	type tally struct{ total, completed int }
	byCategory := make(map[model.GoalCategory]*tally)
	for _, t := range tasks {
		if t.GoalID == nil {
			continue
		}
		cat, ok := categoryOf[*t.GoalID]
		if !ok {
			continue
		}
		entry := byCategory[cat]
		if entry == nil {
			entry = &tally{}
			byCategory[cat] = entry
		}
		entry.total++
		if t.Status == model.StatusCompleted {
			entry.completed++
		}
	}
	if len(byCategory) < 2 {
		return model.Insight{}, false
	}

	categories := make([]model.GoalCategory, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var best, worst model.GoalCategory
	bestRate, worstRate := -1.0, 101.0
	for _, cat := range categories {
		entry := byCategory[cat]
		rate := float64(entry.completed) / float64(entry.total) * 100
		if rate > bestRate {
			best, bestRate = cat, rate
		}
		if rate < worstRate {
			worst, worstRate = cat, rate
		}
	}

	if bestRate < categoryMinBestRate || bestRate-worstRate < categoryMinSpread {
		return model.Insight{}, false
	}

	return model.Insight{
		Type:        model.InsightPattern,
		Title:       "Category Strength Identified! 💪",
		Description: fmt.Sprintf("You excel in %s tasks (%d%% completion). Consider applying similar strategies to other areas.", best, roundPct(bestRate)),
		Confidence:  0.85,
		Actionable:  true,
		Icon:        "💪",
		Metadata: model.InsightMetadata{
			BestCategory:  best,
			BestRate:      bestRate,
			WorstCategory: worst,
			WorstRate:     worstRate,
		},
	}, true
}

func roundPct(v float64) int {
	return int(math.Round(v))
}
