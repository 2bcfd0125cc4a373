package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks, optionally narrowed to a day-relative view.",
		Run:   runList,
	}

	cmd.Flags().String("view", "all", "View: all, today, overdue, upcoming, recurring")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	view, _ := cmd.Flags().GetString("view")

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	tasks, err := a.tasks.List(cmd.Context(), a.user())
	if err != nil {
		exitErr("list", err)
	}

	switch view {
	case "all":
	case "today":
		tasks = a.query.Todays(tasks)
	case "overdue":
		tasks = a.query.Overdue(tasks)
	case "upcoming":
		tasks = a.query.Upcoming(tasks)
	case "recurring":
		tasks = a.query.Recurring(tasks)
	default:
		exitErr("list", fmt.Errorf("unknown view %q", view))
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	b, _ := json.MarshalIndent(tasks, "", "  ")
	fmt.Println(string(b))
}
