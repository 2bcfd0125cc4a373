package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"momentum/internal/model"
	"momentum/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().String("desc", "", "Task description")
	cmd.Flags().String("at", "", "Scheduled time (RFC3339 or 2006-01-02 15:04)")
	cmd.Flags().Int("duration", 0, "Estimated duration in minutes (default 30)")
	cmd.Flags().Int("difficulty", 0, "Difficulty 1-5 (default 2)")
	cmd.Flags().String("energy", "", "Energy requirement: low, medium, high")
	cmd.Flags().String("goal", "", "Linked goal ID")
	cmd.Flags().String("repeat", "", "Recurrence pattern: daily, weekly, monthly")
	cmd.Flags().Int("every", 0, "Recurrence interval (default 1)")
	cmd.Flags().String("until", "", "Recurrence end date (2006-01-02)")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	desc, _ := cmd.Flags().GetString("desc")
	at, _ := cmd.Flags().GetString("at")
	duration, _ := cmd.Flags().GetInt("duration")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	energy, _ := cmd.Flags().GetString("energy")
	goalID, _ := cmd.Flags().GetString("goal")
	repeat, _ := cmd.Flags().GetString("repeat")
	every, _ := cmd.Flags().GetInt("every")
	until, _ := cmd.Flags().GetString("until")

	input := service.NewTask{
		Title:                    strings.Join(args, " "),
		Description:              desc,
		EstimatedDurationMinutes: duration,
		DifficultyLevel:          difficulty,
		EnergyRequirement:        model.EnergyLevel(energy),
	}

	if at != "" {
		scheduled, err := parseTime(at)
		if err != nil {
			exitErr("add", err)
		}
		input.ScheduledFor = &scheduled
	}
	if goalID != "" {
		input.GoalID = &goalID
	}
	if repeat != "" {
		input.IsRecurring = true
		input.RecurrencePattern = model.RecurrencePattern(repeat)
		cfg := &model.RecurrenceConfig{Interval: every}
		if until != "" {
			end, err := time.ParseInLocation("2006-01-02", until, time.Local)
			if err != nil {
				exitErr("add", fmt.Errorf("invalid --until date %q", until))
			}
			cfg.EndDate = &end
		}
		input.RecurrenceConfig = cfg
	}

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	input.UserID = a.user()
	task, err := a.tasks.Create(cmd.Context(), input)
	if err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}
