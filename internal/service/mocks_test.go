package service

import (
	"context"
	"sort"

	"momentum/internal/apperr"
	"momentum/internal/model"
)

// memTaskStore is an in-memory TaskStore for lifecycle tests.
type memTaskStore struct {
	tasks     map[string]*model.Task
	createErr error
	created   int
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[string]*model.Task)}
}

func (m *memTaskStore) Create(ctx context.Context, task *model.Task) error {
	m.created++
	if m.createErr != nil {
		return m.createErr
	}
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memTaskStore) FindByID(ctx context.Context, userID, taskID string) (*model.Task, error) {
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != userID {
		return nil, apperr.NotFoundf("task %s not found", taskID)
	}
	cp := *t
	return &cp, nil
}

func (m *memTaskStore) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memTaskStore) ListRecent(ctx context.Context, userID string, limit int) ([]model.Task, error) {
	out, _ := m.ListByUser(ctx, userID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memTaskStore) Save(ctx context.Context, task *model.Task) error {
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memTaskStore) Delete(ctx context.Context, userID, taskID string) error {
	t, ok := m.tasks[taskID]
	if !ok || t.UserID != userID {
		return apperr.NotFoundf("task %s not found", taskID)
	}
	delete(m.tasks, taskID)
	return nil
}

// memGoalStore is an in-memory GoalStore.
type memGoalStore struct {
	goals map[string]*model.Goal
}

func newMemGoalStore() *memGoalStore {
	return &memGoalStore{goals: make(map[string]*model.Goal)}
}

func (m *memGoalStore) Create(ctx context.Context, goal *model.Goal) error {
	cp := *goal
	m.goals[goal.ID] = &cp
	return nil
}

func (m *memGoalStore) FindByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	g, ok := m.goals[goalID]
	if !ok || g.UserID != userID {
		return nil, apperr.NotFoundf("goal %s not found", goalID)
	}
	cp := *g
	return &cp, nil
}

func (m *memGoalStore) ListByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	var out []model.Goal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memGoalStore) ListRecent(ctx context.Context, userID string, limit int) ([]model.Goal, error) {
	out, _ := m.ListByUser(ctx, userID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memGoalStore) Save(ctx context.Context, goal *model.Goal) error {
	cp := *goal
	m.goals[goal.ID] = &cp
	return nil
}

func (m *memGoalStore) Delete(ctx context.Context, userID, goalID string) error {
	g, ok := m.goals[goalID]
	if !ok || g.UserID != userID {
		return apperr.NotFoundf("goal %s not found", goalID)
	}
	delete(m.goals, goalID)
	return nil
}

// memInsightStore is an in-memory InsightStore.
type memInsightStore struct {
	insights map[string]*model.Insight
	batches  int
}

func newMemInsightStore() *memInsightStore {
	return &memInsightStore{insights: make(map[string]*model.Insight)}
}

func (m *memInsightStore) CreateBatch(ctx context.Context, insights []model.Insight) error {
	m.batches++
	for i := range insights {
		cp := insights[i]
		m.insights[cp.ID] = &cp
	}
	return nil
}

func (m *memInsightStore) FindByID(ctx context.Context, userID, insightID string) (*model.Insight, error) {
	ins, ok := m.insights[insightID]
	if !ok || ins.UserID != userID {
		return nil, apperr.NotFoundf("insight %s not found", insightID)
	}
	cp := *ins
	return &cp, nil
}

func (m *memInsightStore) ListRecent(ctx context.Context, userID string, limit int) ([]model.Insight, error) {
	var out []model.Insight
	for _, ins := range m.insights {
		if ins.UserID == userID {
			out = append(out, *ins)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memInsightStore) Save(ctx context.Context, insight *model.Insight) error {
	cp := *insight
	m.insights[insight.ID] = &cp
	return nil
}
