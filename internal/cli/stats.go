package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"momentum/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Run:   runStats,
	}

	cmd.Flags().Bool("week", false, "Show the last-7-days summary instead")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	week, _ := cmd.Flags().GetBool("week")

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	tasks, err := a.tasks.List(cmd.Context(), a.user())
	if err != nil {
		exitErr("stats", err)
	}

	if week {
		weekly := service.WeekInReview(tasks, time.Now())
		b, _ := json.MarshalIndent(weekly, "", "  ")
		fmt.Println(string(b))
		return
	}

	stats := a.query.Statistics(tasks)
	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
	fmt.Println(service.MotivationalMessage(stats.TodayCompletionRate))
}
