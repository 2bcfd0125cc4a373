package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"momentum/internal/apperr"
	"momentum/internal/model"
)

// GoalRepository handles CRUD for goals.
type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return apperr.Persistencef(err, "create goal")
	}
	return nil
}

func (r *GoalRepository) FindByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, goalID).First(&goal).Error
	switch {
	case err == nil:
		return &goal, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFoundf("goal %s not found", goalID)
	default:
		return nil, apperr.Persistencef(err, "find goal")
	}
}

// ListByUser returns every goal for the user, newest first.
func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperr.Persistencef(err, "list goals")
	}
	return goals, nil
}

// ListRecent returns the newest goals for the user, bounded by limit.
func (r *GoalRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.Goal, error) {
	var goals []model.Goal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&goals).Error; err != nil {
		return nil, apperr.Persistencef(err, "list recent goals")
	}
	return goals, nil
}

func (r *GoalRepository) Save(ctx context.Context, goal *model.Goal) error {
	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return apperr.Persistencef(err, "save goal")
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, userID, goalID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, goalID).
		Delete(&model.Goal{})
	if res.Error != nil {
		return apperr.Persistencef(res.Error, "delete goal")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("goal %s not found", goalID)
	}
	return nil
}
