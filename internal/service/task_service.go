package service

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"momentum/internal/apperr"
	"momentum/internal/clock"
	"momentum/internal/model"
	"momentum/internal/recurrence"
)

// NewTask carries the fields accepted when creating a task.
type NewTask struct {
	UserID                   string
	GoalID                   *string
	Title                    string
	Description              string
	ScheduledFor             *time.Time
	EstimatedDurationMinutes int
	DifficultyLevel          int
	EnergyRequirement        model.EnergyLevel
	IsRecurring              bool
	RecurrencePattern        model.RecurrencePattern
	RecurrenceConfig         *model.RecurrenceConfig
}

// UpdateTask is a partial patch; nil fields are left untouched.
type UpdateTask struct {
	Title                    *string
	Description              *string
	GoalID                   *string
	ScheduledFor             *time.Time
	EstimatedDurationMinutes *int
	DifficultyLevel          *int
	EnergyRequirement        *model.EnergyLevel
	Status                   *model.TaskStatus
	IsRecurring              *bool
	RecurrencePattern        *model.RecurrencePattern
	RecurrenceConfig         *model.RecurrenceConfig
}

// CompleteResult reports the outcome of completing a task. The primary
// completion always succeeded when err is nil; SuccessorErr carries a
// failed recurrence continuation without failing the completion.
type CompleteResult struct {
	Task         *model.Task
	Successor    *model.Task
	SuccessorErr error
}

// TaskService owns task state transitions, completion bookkeeping and
// recurrence continuation.
type TaskService struct {
	tasks TaskStore
	clock clock.Clock
}

func NewTaskService(tasks TaskStore, clk clock.Clock) *TaskService {
	return &TaskService{tasks: tasks, clock: clk}
}

// Create validates and normalizes the input, then persists a new pending
// task. Validation failures happen before any store call.
func (s *TaskService) Create(ctx context.Context, input NewTask) (*model.Task, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, apperr.Validationf("user id is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperr.Validationf("task title is required")
	}

	task := model.Task{
		ID:                       uuid.NewString(),
		UserID:                   input.UserID,
		GoalID:                   input.GoalID,
		Title:                    title,
		Description:              strings.TrimSpace(input.Description),
		ScheduledFor:             input.ScheduledFor,
		EstimatedDurationMinutes: input.EstimatedDurationMinutes,
		DifficultyLevel:          input.DifficultyLevel,
		EnergyRequirement:        input.EnergyRequirement,
		Status:                   model.StatusPending,
	}

	if task.EstimatedDurationMinutes <= 0 {
		task.EstimatedDurationMinutes = 30
	}
	if task.DifficultyLevel == 0 {
		task.DifficultyLevel = 2
	}
	task.DifficultyLevel = clampInt(task.DifficultyLevel, 1, 5)
	if task.EnergyRequirement == "" {
		task.EnergyRequirement = model.EnergyMedium
	}

	if input.IsRecurring {
		task.IsRecurring = true
		task.RecurrencePattern = input.RecurrencePattern
		task.RecurrenceConfig = input.RecurrenceConfig
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Complete marks the task completed, updates streak and completion
// statistics, and spawns the next occurrence for recurring tasks. The
// successor creation is best effort: its failure is logged and reported in
// the result, never propagated as an error.
func (s *TaskService) Complete(ctx context.Context, userID, taskID string, satisfaction int, notes string) (*CompleteResult, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if satisfaction == 0 {
		satisfaction = 3
	}
	now := s.clock.Now()
	timeSpent := task.Duration()

	task.Status = model.StatusCompleted
	task.CompletedAt = &now
	task.StreakCount++
	task.CompletionCount++
	task.TotalCompletionTimeMinutes += timeSpent
	task.AverageCompletionTimeMinutes = int(math.Round(
		float64(task.TotalCompletionTimeMinutes) / float64(task.CompletionCount)))

	task.Context.LastSatisfaction = satisfaction
	task.Context.LastNotes = notes
	task.Context.CompletionHistory = append(task.Context.CompletionHistory, model.CompletionRecord{
		CompletedAt:  now,
		Satisfaction: satisfaction,
		Notes:        notes,
		TimeSpent:    timeSpent,
	})

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	result := &CompleteResult{Task: task}
	if task.IsRecurring && task.RecurrencePattern != "" {
		successor, err := s.continueRecurrence(ctx, task)
		if err != nil {
			log.Printf("recurrence continuation for task %s: %v", task.ID, err)
			result.SuccessorErr = err
		} else {
			result.Successor = successor
		}
	}
	return result, nil
}

// continueRecurrence creates the next pending occurrence of a recurring
// task, keyed off the completed task's scheduled time. Returns (nil, nil)
// when the series has ended or the task was never scheduled.
func (s *TaskService) continueRecurrence(ctx context.Context, completed *model.Task) (*model.Task, error) {
	if completed.ScheduledFor == nil {
		return nil, nil
	}
	next, ok := recurrence.NextOccurrence(*completed.ScheduledFor, completed.RecurrencePattern, completed.RecurrenceConfig)
	if !ok {
		return nil, nil
	}
	return s.Create(ctx, NewTask{
		UserID:                   completed.UserID,
		GoalID:                   completed.GoalID,
		Title:                    completed.Title,
		Description:              completed.Description,
		ScheduledFor:             &next,
		EstimatedDurationMinutes: completed.EstimatedDurationMinutes,
		DifficultyLevel:          completed.DifficultyLevel,
		EnergyRequirement:        completed.EnergyRequirement,
		IsRecurring:              true,
		RecurrencePattern:        completed.RecurrencePattern,
		RecurrenceConfig:         completed.RecurrenceConfig,
	})
}

// Skip marks the task skipped. The context is replaced with just the skip
// reason, discarding prior history; completion merges instead.
func (s *TaskService) Skip(ctx context.Context, userID, taskID, reason string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	task.Status = model.StatusSkipped
	task.SkippedAt = &now
	task.Context = model.TaskContext{SkipReason: reason}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial patch to an owned task.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch UpdateTask) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.GoalID != nil {
		task.GoalID = patch.GoalID
	}
	if patch.ScheduledFor != nil {
		task.ScheduledFor = patch.ScheduledFor
	}
	if patch.EstimatedDurationMinutes != nil {
		task.EstimatedDurationMinutes = *patch.EstimatedDurationMinutes
	}
	if patch.DifficultyLevel != nil {
		task.DifficultyLevel = clampInt(*patch.DifficultyLevel, 1, 5)
	}
	if patch.EnergyRequirement != nil {
		task.EnergyRequirement = *patch.EnergyRequirement
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.IsRecurring != nil {
		task.IsRecurring = *patch.IsRecurring
	}
	if patch.RecurrencePattern != nil {
		task.RecurrencePattern = *patch.RecurrencePattern
	}
	if patch.RecurrenceConfig != nil {
		task.RecurrenceConfig = patch.RecurrenceConfig
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task entirely. No tombstone is kept.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	return s.tasks.Delete(ctx, userID, taskID)
}

// Reschedule moves the task to the top of the next hour and puts it back
// in the pending state.
func (s *TaskService) Reschedule(ctx context.Context, userID, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	task.ScheduledFor = &next
	task.Status = model.StatusPending

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns a single owned task.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, userID, taskID)
}

// List returns every task for the user, soonest scheduled first.
func (s *TaskService) List(ctx context.Context, userID string) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
