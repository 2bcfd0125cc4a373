package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"momentum/internal/apperr"
	"momentum/internal/clock"
	"momentum/internal/model"
)

// History windows fed to the analyzer, and the default listing size.
const (
	recentTaskLimit    = 50
	recentGoalLimit    = 20
	insightListDefault = 10
)

// InsightService orchestrates insight generation and read tracking.
type InsightService struct {
	tasks    TaskStore
	goals    GoalStore
	insights InsightStore
	analyzer *InsightAnalyzer
	clock    clock.Clock
}

func NewInsightService(tasks TaskStore, goals GoalStore, insights InsightStore, clk clock.Clock) *InsightService {
	return &InsightService{
		tasks:    tasks,
		goals:    goals,
		insights: insights,
		analyzer: NewInsightAnalyzer(),
		clock:    clk,
	}
}

// Generate fetches the user's recent history, runs the analyzer, persists
// the resulting drafts and returns them.
func (s *InsightService) Generate(ctx context.Context, userID string) ([]model.Insight, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Validationf("user id is required")
	}

	tasks, err := s.tasks.ListRecent(ctx, userID, recentTaskLimit)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListRecent(ctx, userID, recentGoalLimit)
	if err != nil {
		return nil, err
	}

	drafts := s.analyzer.Analyze(tasks, goals)
	for i := range drafts {
		drafts[i].ID = uuid.NewString()
		drafts[i].UserID = userID
	}

	if err := s.insights.CreateBatch(ctx, drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

// ListRecent returns the user's newest insights.
func (s *InsightService) ListRecent(ctx context.Context, userID string) ([]model.Insight, error) {
	return s.insights.ListRecent(ctx, userID, insightListDefault)
}

// MarkRead stamps ReadAt on first call and is a no-op afterwards: a second
// call succeeds and leaves the original timestamp untouched.
func (s *InsightService) MarkRead(ctx context.Context, userID, insightID string) (*model.Insight, error) {
	insight, err := s.insights.FindByID(ctx, userID, insightID)
	if err != nil {
		return nil, err
	}
	if insight.ReadAt != nil {
		return insight, nil
	}

	now := s.clock.Now()
	insight.ReadAt = &now
	if err := s.insights.Save(ctx, insight); err != nil {
		return nil, err
	}
	return insight, nil
}
