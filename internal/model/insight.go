package model

import "time"

// InsightType classifies a generated observation.
type InsightType string

const (
	InsightPattern     InsightType = "pattern_recognition"
	InsightCoaching    InsightType = "behavioral_coaching"
	InsightAchievement InsightType = "achievement"
	InsightSuggestion  InsightType = "suggestion"
)

// InsightMetadata carries the numbers behind an insight. Fields are filled
// per insight type; everything else stays at its zero value.
type InsightMetadata struct {
	CompletionRate   float64      `json:"completionRate,omitempty"`
	TotalTasks       int          `json:"totalTasks,omitempty"`
	SkipRate         float64      `json:"skipRate,omitempty"`
	SkippedTasks     int          `json:"skippedTasks,omitempty"`
	PeakHour         int          `json:"peakHour,omitempty"`
	TaskCount        int          `json:"taskCount,omitempty"`
	AvgProgress      float64      `json:"avgProgress,omitempty"`
	ActiveGoalsCount int          `json:"activeGoalsCount,omitempty"`
	MaxStreak        int          `json:"maxStreak,omitempty"`
	TasksWithStreaks int          `json:"tasksWithStreaks,omitempty"`
	BestCategory     GoalCategory `json:"bestCategory,omitempty"`
	BestRate         float64      `json:"bestRate,omitempty"`
	WorstCategory    GoalCategory `json:"worstCategory,omitempty"`
	WorstRate        float64      `json:"worstRate,omitempty"`
}

// Insight is a generated observation about the user's behavior. ReadAt is
// the only field that changes after creation.
type Insight struct {
	ID          string `gorm:"primaryKey"`
	UserID      string `gorm:"index"`
	Type        InsightType
	Title       string
	Description string
	Confidence  float64
	Actionable  bool
	Icon        string
	Metadata    InsightMetadata `gorm:"serializer:json"`
	ReadAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
