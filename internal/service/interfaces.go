package service

import (
	"context"

	"momentum/internal/model"
)

// TaskStore is the persistence surface the task lifecycle needs.
// *repository.TaskRepository satisfies it.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, userID, taskID string) (*model.Task, error)
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.Task, error)
	Save(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, userID, taskID string) error
}

// GoalStore is the persistence surface for goals.
type GoalStore interface {
	Create(ctx context.Context, goal *model.Goal) error
	FindByID(ctx context.Context, userID, goalID string) (*model.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]model.Goal, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.Goal, error)
	Save(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, userID, goalID string) error
}

// InsightStore is the persistence surface for generated insights.
type InsightStore interface {
	CreateBatch(ctx context.Context, insights []model.Insight) error
	FindByID(ctx context.Context, userID, insightID string) (*model.Insight, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]model.Insight, error)
	Save(ctx context.Context, insight *model.Insight) error
}
