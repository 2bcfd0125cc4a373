package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"momentum/internal/apperr"
	"momentum/internal/model"
)

// NewGoal carries the fields accepted when creating a goal.
type NewGoal struct {
	UserID      string
	Title       string
	Description string
	Category    model.GoalCategory
	Priority    string
}

// GoalStats aggregates a goal collection.
type GoalStats struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	Completed       int `json:"completed"`
	Paused          int `json:"paused"`
	AverageProgress int `json:"averageProgress"`
}

// GoalService manages goals and their completion progress.
type GoalService struct {
	goals GoalStore
}

func NewGoalService(goals GoalStore) *GoalService {
	return &GoalService{goals: goals}
}

func (s *GoalService) Create(ctx context.Context, input NewGoal) (*model.Goal, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, apperr.Validationf("user id is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperr.Validationf("goal title is required")
	}

	goal := model.Goal{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      model.GoalActive,
	}
	if goal.Category == "" {
		goal.Category = model.CategoryPersonal
	}
	if goal.Priority == "" {
		goal.Priority = "medium"
	}

	if err := s.goals.Create(ctx, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]model.Goal, error) {
	return s.goals.ListByUser(ctx, userID)
}

// UpdateProgress sets the completion percentage, clamped to [0,100], and
// flips the goal to completed once it reaches 100.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, percentage int) (*model.Goal, error) {
	goal, err := s.goals.FindByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.CompletionPercentage = clampInt(percentage, 0, 100)
	if percentage >= 100 {
		goal.Status = model.GoalCompleted
	} else {
		goal.Status = model.GoalActive
	}

	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	return s.goals.Delete(ctx, userID, goalID)
}

// Stats aggregates the user's goals for display.
func (s *GoalService) Stats(ctx context.Context, userID string) (GoalStats, error) {
	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return GoalStats{}, err
	}

	stats := GoalStats{Total: len(goals)}
	sum := 0
	for _, g := range goals {
		switch g.Status {
		case model.GoalActive:
			stats.Active++
		case model.GoalCompleted:
			stats.Completed++
		case model.GoalPaused:
			stats.Paused++
		}
		sum += g.CompletionPercentage
	}
	if len(goals) > 0 {
		stats.AverageProgress = int(math.Round(float64(sum) / float64(len(goals))))
	}
	return stats, nil
}
