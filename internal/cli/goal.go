package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"momentum/internal/model"
	"momentum/internal/service"
)

func init() {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a goal",
		Args:  cobra.MinimumNArgs(1),
		Run:   runGoalAdd,
	}
	addCmd.Flags().String("desc", "", "Goal description")
	addCmd.Flags().String("category", "", "Category: health, career, learning, habits, finance, relationships, personal")
	addCmd.Flags().String("priority", "", "Priority: low, medium, high, critical")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with aggregate stats",
		Run:   runGoalList,
	}

	progressCmd := &cobra.Command{
		Use:   "progress [goal-id] [percentage]",
		Short: "Update goal completion percentage",
		Args:  cobra.ExactArgs(2),
		Run:   runGoalProgress,
	}

	rmCmd := &cobra.Command{
		Use:   "rm [goal-id]",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		Run:   runGoalRm,
	}

	goalCmd.AddCommand(addCmd, listCmd, progressCmd, rmCmd)
	RootCmd.AddCommand(goalCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) {
	desc, _ := cmd.Flags().GetString("desc")
	category, _ := cmd.Flags().GetString("category")
	priority, _ := cmd.Flags().GetString("priority")

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	goal, err := a.goals.Create(cmd.Context(), service.NewGoal{
		UserID:      a.user(),
		Title:       strings.Join(args, " "),
		Description: desc,
		Category:    model.GoalCategory(category),
		Priority:    priority,
	})
	if err != nil {
		exitErr("goal add", err)
	}

	b, _ := json.Marshal(goal)
	fmt.Println(string(b))
}

func runGoalList(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	goals, err := a.goals.List(cmd.Context(), a.user())
	if err != nil {
		exitErr("goal list", err)
	}
	stats, err := a.goals.Stats(cmd.Context(), a.user())
	if err != nil {
		exitErr("goal list", err)
	}

	out := struct {
		Goals []model.Goal      `json:"goals"`
		Stats service.GoalStats `json:"stats"`
	}{Goals: goals, Stats: stats}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

func runGoalProgress(cmd *cobra.Command, args []string) {
	pct, err := strconv.Atoi(args[1])
	if err != nil {
		exitErr("goal progress", fmt.Errorf("invalid percentage %q", args[1]))
	}

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	goal, err := a.goals.UpdateProgress(cmd.Context(), a.user(), args[0], pct)
	if err != nil {
		exitErr("goal progress", err)
	}

	b, _ := json.Marshal(goal)
	fmt.Println(string(b))
}

func runGoalRm(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	if err := a.goals.Delete(cmd.Context(), a.user(), args[0]); err != nil {
		exitErr("goal rm", err)
	}
	fmt.Printf("deleted %s\n", args[0])
}
