package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"momentum/internal/apperr"
	"momentum/internal/model"
)

// InsightRepository handles persistence for generated insights.
type InsightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

// CreateBatch stores a run of generated insights in one call.
func (r *InsightRepository) CreateBatch(ctx context.Context, insights []model.Insight) error {
	if len(insights) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&insights).Error; err != nil {
		return apperr.Persistencef(err, "create insights")
	}
	return nil
}

func (r *InsightRepository) FindByID(ctx context.Context, userID, insightID string) (*model.Insight, error) {
	var insight model.Insight
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, insightID).First(&insight).Error
	switch {
	case err == nil:
		return &insight, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFoundf("insight %s not found", insightID)
	default:
		return nil, apperr.Persistencef(err, "find insight")
	}
}

// ListRecent returns the newest insights for the user, bounded by limit.
func (r *InsightRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.Insight, error) {
	var insights []model.Insight
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&insights).Error; err != nil {
		return nil, apperr.Persistencef(err, "list insights")
	}
	return insights, nil
}

func (r *InsightRepository) Save(ctx context.Context, insight *model.Insight) error {
	if err := r.db.WithContext(ctx).Save(insight).Error; err != nil {
		return apperr.Persistencef(err, "save insight")
	}
	return nil
}
