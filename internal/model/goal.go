package model

import "time"

// GoalCategory groups goals by life area.
type GoalCategory string

const (
	CategoryHealth        GoalCategory = "health"
	CategoryCareer        GoalCategory = "career"
	CategoryLearning      GoalCategory = "learning"
	CategoryHabits        GoalCategory = "habits"
	CategoryFinance       GoalCategory = "finance"
	CategoryRelationships GoalCategory = "relationships"
	CategoryPersonal      GoalCategory = "personal"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
	GoalArchived  GoalStatus = "archived"
)

// Goal is a longer-horizon aspiration that tasks can link to.
type Goal struct {
	ID                   string `gorm:"primaryKey"`
	UserID               string `gorm:"index"`
	Title                string
	Description          string
	Category             GoalCategory
	Priority             string
	Status               GoalStatus `gorm:"index"`
	CompletionPercentage int
	TargetDate           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Tasks                []Task `gorm:"foreignKey:GoalID"`
}
