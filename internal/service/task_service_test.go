package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"momentum/internal/apperr"
	"momentum/internal/clock"
	"momentum/internal/model"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestTaskService(t *testing.T) (*TaskService, *memTaskStore) {
	t.Helper()
	store := newMemTaskStore()
	return NewTaskService(store, clock.At(testNow)), store
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, NewTask{UserID: "", Title: "read"})
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error for missing user, got %v", err)
	}

	_, err = svc.Create(ctx, NewTask{UserID: "u1", Title: "   "})
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
}

func TestCreateNormalizes(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, NewTask{
		UserID:          "u1",
		Title:           "  write report  ",
		Description:     "  quarterly numbers ",
		DifficultyLevel: 9,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if task.ID == "" {
		t.Error("expected generated id")
	}
	if task.Title != "write report" {
		t.Errorf("title not trimmed: %q", task.Title)
	}
	if task.Description != "quarterly numbers" {
		t.Errorf("description not trimmed: %q", task.Description)
	}
	if task.DifficultyLevel != 5 {
		t.Errorf("difficulty not clamped: %d", task.DifficultyLevel)
	}
	if task.EstimatedDurationMinutes != 30 {
		t.Errorf("expected default duration 30, got %d", task.EstimatedDurationMinutes)
	}
	if task.EnergyRequirement != model.EnergyMedium {
		t.Errorf("expected default energy medium, got %s", task.EnergyRequirement)
	}
	if task.Status != model.StatusPending {
		t.Errorf("expected pending, got %s", task.Status)
	}
	if store.created != 1 {
		t.Errorf("expected 1 store create, got %d", store.created)
	}

	t.Run("default difficulty", func(t *testing.T) {
		task, err := svc.Create(ctx, NewTask{UserID: "u1", Title: "stretch"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if task.DifficultyLevel != 2 {
			t.Errorf("expected default difficulty 2, got %d", task.DifficultyLevel)
		}
	})

	t.Run("recurrence fields cleared when not recurring", func(t *testing.T) {
		task, err := svc.Create(ctx, NewTask{
			UserID:            "u1",
			Title:             "one-off",
			RecurrencePattern: model.RecurDaily,
			RecurrenceConfig:  &model.RecurrenceConfig{Interval: 3},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if task.IsRecurring || task.RecurrencePattern != "" || task.RecurrenceConfig != nil {
			t.Error("recurrence fields should be cleared for non-recurring tasks")
		}
	})
}

func TestCompleteBookkeeping(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, NewTask{
		UserID:                   "u1",
		Title:                    "meditate",
		EstimatedDurationMinutes: 20,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.Complete(ctx, "u1", task.ID, 4, "felt good")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	got := result.Task

	if got.Status != model.StatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(testNow) {
		t.Errorf("expected completedAt %v, got %v", testNow, got.CompletedAt)
	}
	if got.SkippedAt != nil {
		t.Error("skippedAt must stay unset on completion")
	}
	if got.StreakCount != 1 {
		t.Errorf("expected streak 1, got %d", got.StreakCount)
	}
	if got.CompletionCount != 1 {
		t.Errorf("expected completion count 1, got %d", got.CompletionCount)
	}
	if got.TotalCompletionTimeMinutes != 20 {
		t.Errorf("expected total time 20, got %d", got.TotalCompletionTimeMinutes)
	}
	if got.AverageCompletionTimeMinutes != 20 {
		t.Errorf("expected average 20, got %d", got.AverageCompletionTimeMinutes)
	}
	if got.Context.LastSatisfaction != 4 || got.Context.LastNotes != "felt good" {
		t.Errorf("context not updated: %+v", got.Context)
	}
	if len(got.Context.CompletionHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(got.Context.CompletionHistory))
	}
	entry := got.Context.CompletionHistory[0]
	if entry.Satisfaction != 4 || entry.TimeSpent != 20 || !entry.CompletedAt.Equal(testNow) {
		t.Errorf("bad history entry: %+v", entry)
	}
}

func TestCompleteAverageRounds(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	task, _ := svc.Create(ctx, NewTask{UserID: "u1", Title: "run", EstimatedDurationMinutes: 27})

	// Seed prior completions so the average needs rounding: (50+27)/3 = 25.67.
	seeded, _ := store.FindByID(ctx, "u1", task.ID)
	seeded.CompletionCount = 2
	seeded.TotalCompletionTimeMinutes = 50
	store.Save(ctx, seeded)

	result, err := svc.Complete(ctx, "u1", task.ID, 0, "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.Task.CompletionCount != 3 {
		t.Fatalf("expected count 3, got %d", result.Task.CompletionCount)
	}
	if result.Task.AverageCompletionTimeMinutes != 26 {
		t.Errorf("expected rounded average 26, got %d", result.Task.AverageCompletionTimeMinutes)
	}
	if result.Task.Context.LastSatisfaction != 3 {
		t.Errorf("expected default satisfaction 3, got %d", result.Task.Context.LastSatisfaction)
	}
}

func TestCompleteNotFound(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.Complete(context.Background(), "u1", "nope", 3, "")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSkipReplacesContext(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	task, _ := svc.Create(ctx, NewTask{UserID: "u1", Title: "gym"})

	// Give the task prior context to prove skip discards it.
	seeded, _ := store.FindByID(ctx, "u1", task.ID)
	seeded.Context = model.TaskContext{
		LastSatisfaction:  5,
		LastNotes:         "great",
		CompletionHistory: []model.CompletionRecord{{Satisfaction: 5, TimeSpent: 30}},
	}
	store.Save(ctx, seeded)

	got, err := svc.Skip(ctx, "u1", task.ID, "too tired")
	if err != nil {
		t.Fatalf("skip: %v", err)
	}

	if got.Status != model.StatusSkipped {
		t.Errorf("expected skipped, got %s", got.Status)
	}
	if got.SkippedAt == nil || !got.SkippedAt.Equal(testNow) {
		t.Errorf("expected skippedAt %v, got %v", testNow, got.SkippedAt)
	}
	want := model.TaskContext{SkipReason: "too tired"}
	if got.Context.SkipReason != want.SkipReason ||
		got.Context.LastSatisfaction != 0 ||
		got.Context.LastNotes != "" ||
		got.Context.CompletionHistory != nil {
		t.Errorf("context must be replaced wholesale, got %+v", got.Context)
	}
}

func TestCompleteRecurringSpawnsSuccessor(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	scheduled := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)
	task, err := svc.Create(ctx, NewTask{
		UserID:            "u1",
		Title:             "morning pages",
		ScheduledFor:      &scheduled,
		IsRecurring:       true,
		RecurrencePattern: model.RecurDaily,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := svc.Complete(ctx, "u1", task.ID, 3, "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.SuccessorErr != nil {
		t.Fatalf("unexpected successor error: %v", result.SuccessorErr)
	}
	if result.Successor == nil {
		t.Fatal("expected a successor task")
	}

	succ := result.Successor
	wantNext := scheduled.AddDate(0, 0, 1)
	if succ.ScheduledFor == nil || !succ.ScheduledFor.Equal(wantNext) {
		t.Errorf("expected successor scheduled %v, got %v", wantNext, succ.ScheduledFor)
	}
	if succ.ID == task.ID {
		t.Error("successor must have a new identity")
	}
	if succ.Title != task.Title || !succ.IsRecurring || succ.Status != model.StatusPending {
		t.Errorf("successor fields wrong: %+v", succ)
	}
	if succ.StreakCount != 0 || succ.CompletionCount != 0 {
		t.Error("successor bookkeeping must start fresh")
	}

	// The original stays completed and untouched by the continuation.
	original, _ := store.FindByID(ctx, "u1", task.ID)
	if original.Status != model.StatusCompleted {
		t.Errorf("original should remain completed, got %s", original.Status)
	}
	if !original.ScheduledFor.Equal(scheduled) {
		t.Error("original scheduled time must not move")
	}
}

func TestCompleteSucceedsWhenSuccessorFails(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	scheduled := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)
	task, _ := svc.Create(ctx, NewTask{
		UserID:            "u1",
		Title:             "water plants",
		ScheduledFor:      &scheduled,
		IsRecurring:       true,
		RecurrencePattern: model.RecurWeekly,
	})

	store.createErr = errors.New("store is down")

	result, err := svc.Complete(ctx, "u1", task.ID, 3, "")
	if err != nil {
		t.Fatalf("completion must not fail with the successor: %v", err)
	}
	if result.Task.Status != model.StatusCompleted {
		t.Errorf("primary completion lost: %s", result.Task.Status)
	}
	if result.SuccessorErr == nil {
		t.Error("expected the successor failure to be reported")
	}
	if result.Successor != nil {
		t.Error("no successor should exist")
	}
}

func TestCompleteEndedSeriesHasNoSuccessor(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	scheduled := time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	task, _ := svc.Create(ctx, NewTask{
		UserID:            "u1",
		Title:             "sprint review",
		ScheduledFor:      &scheduled,
		IsRecurring:       true,
		RecurrencePattern: model.RecurDaily,
		RecurrenceConfig:  &model.RecurrenceConfig{EndDate: &end},
	})

	before := store.created
	result, err := svc.Complete(ctx, "u1", task.ID, 3, "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.Successor != nil || result.SuccessorErr != nil {
		t.Errorf("ended series must terminate silently, got %+v", result)
	}
	if store.created != before {
		t.Error("no successor create call expected")
	}
}

func TestUpdatePatchesFields(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	task, _ := svc.Create(ctx, NewTask{UserID: "u1", Title: "draft email"})

	title := "send email"
	difficulty := 4
	got, err := svc.Update(ctx, "u1", task.ID, UpdateTask{Title: &title, DifficultyLevel: &difficulty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "send email" || got.DifficultyLevel != 4 {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.EstimatedDurationMinutes != 30 {
		t.Error("untouched fields must survive the patch")
	}

	_, err = svc.Update(ctx, "u2", task.ID, UpdateTask{Title: &title})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found for foreign user, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, store := newTestTaskService(t)
	ctx := context.Background()

	task, _ := svc.Create(ctx, NewTask{UserID: "u1", Title: "old chore"})

	if err := svc.Delete(ctx, "u2", task.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not found for foreign user, got %v", err)
	}
	if _, ok := store.tasks[task.ID]; !ok {
		t.Fatal("failed delete must leave the store unmodified")
	}

	if err := svc.Delete(ctx, "u1", task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "u1", task.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}

func TestReschedule(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	task, _ := svc.Create(ctx, NewTask{UserID: "u1", Title: "call bank"})
	skipped, _ := svc.Skip(ctx, "u1", task.ID, "busy")
	if skipped.Status != model.StatusSkipped {
		t.Fatal("setup: skip failed")
	}

	got, err := svc.Reschedule(ctx, "u1", task.ID)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	wantAt := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)
	if got.ScheduledFor == nil || !got.ScheduledFor.Equal(wantAt) {
		t.Errorf("expected top of next hour %v, got %v", wantAt, got.ScheduledFor)
	}
	if got.Status != model.StatusPending {
		t.Errorf("expected pending after reschedule, got %s", got.Status)
	}
}
