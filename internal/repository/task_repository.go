package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"momentum/internal/apperr"
	"momentum/internal/model"
)

// TaskRepository handles CRUD for tasks, always scoped by owner.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return apperr.Persistencef(err, "create task")
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error
	switch {
	case err == nil:
		return &task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFoundf("task %s not found", taskID)
	default:
		return nil, apperr.Persistencef(err, "find task")
	}
}

// ListByUser returns every task for the user, soonest scheduled first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("scheduled_for ASC").
		Find(&tasks).Error; err != nil {
		return nil, apperr.Persistencef(err, "list tasks")
	}
	return tasks, nil
}

// ListRecent returns the newest tasks for the user, bounded by limit.
func (r *TaskRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, apperr.Persistencef(err, "list recent tasks")
	}
	return tasks, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return apperr.Persistencef(err, "save task")
	}
	return nil
}

// Delete removes a task for the given user. Deleting a task that does not
// exist, or that belongs to another user, reports not found.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).
		Delete(&model.Task{})
	if res.Error != nil {
		return apperr.Persistencef(res.Error, "delete task")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("task %s not found", taskID)
	}
	return nil
}
