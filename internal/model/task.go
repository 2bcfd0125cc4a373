package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusSkipped    TaskStatus = "skipped"
)

// EnergyLevel describes how much energy a task demands.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// RecurrencePattern is the cadence of a recurring task.
type RecurrencePattern string

const (
	RecurDaily   RecurrencePattern = "daily"
	RecurWeekly  RecurrencePattern = "weekly"
	RecurMonthly RecurrencePattern = "monthly"
	RecurCustom  RecurrencePattern = "custom"
)

// RecurrenceConfig tunes how the next occurrence is computed.
// Only Interval and EndDate affect the computation; MaxOccurrences,
// DaysOfWeek and DayOfMonth are stored but currently inert.
type RecurrenceConfig struct {
	Interval       int        `json:"interval,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	MaxOccurrences int        `json:"maxOccurrences,omitempty"`
	DaysOfWeek     []int      `json:"daysOfWeek,omitempty"`
	DayOfMonth     int        `json:"dayOfMonth,omitempty"`
}

// CompletionRecord is one entry in a task's completion history.
type CompletionRecord struct {
	CompletedAt  time.Time `json:"completedAt"`
	Satisfaction int       `json:"satisfaction"`
	Notes        string    `json:"notes,omitempty"`
	TimeSpent    int       `json:"timeSpent"`
}

// TaskContext carries per-task behavioral bookkeeping. Completing a task
// merges into it; skipping a task replaces it wholesale.
type TaskContext struct {
	LastSatisfaction  int                `json:"lastSatisfaction,omitempty"`
	LastNotes         string             `json:"lastNotes,omitempty"`
	SkipReason        string             `json:"skipReason,omitempty"`
	CompletionHistory []CompletionRecord `json:"completionHistory,omitempty"`
}

// Task represents a single unit of user work.
type Task struct {
	ID                           string  `gorm:"primaryKey"`
	UserID                       string  `gorm:"index"`
	GoalID                       *string `gorm:"index"`
	Title                        string
	Description                  string
	ScheduledFor                 *time.Time
	EstimatedDurationMinutes     int
	DifficultyLevel              int
	EnergyRequirement            EnergyLevel
	Status                       TaskStatus `gorm:"index"`
	CompletedAt                  *time.Time
	SkippedAt                    *time.Time
	IsRecurring                  bool `gorm:"default:false"`
	RecurrencePattern            RecurrencePattern
	RecurrenceConfig             *RecurrenceConfig `gorm:"serializer:json"`
	StreakCount                  int
	CompletionCount              int
	TotalCompletionTimeMinutes   int
	AverageCompletionTimeMinutes int
	Context                      TaskContext `gorm:"serializer:json"`
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

// Duration returns the estimated duration, falling back to the 30 minute
// default when none was recorded.
func (t *Task) Duration() int {
	if t.EstimatedDurationMinutes > 0 {
		return t.EstimatedDurationMinutes
	}
	return 30
}
