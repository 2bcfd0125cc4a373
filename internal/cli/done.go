package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "done [task-id]",
		Short: "Complete a task",
		Long:  "Complete a task, recording satisfaction and notes. Recurring tasks spawn their next occurrence.",
		Args:  cobra.ExactArgs(1),
		Run:   runDone,
	}

	cmd.Flags().IntP("satisfaction", "s", 0, "Satisfaction 1-5 (default 3)")
	cmd.Flags().StringP("notes", "n", "", "Completion notes")

	RootCmd.AddCommand(cmd)
}

func runDone(cmd *cobra.Command, args []string) {
	satisfaction, _ := cmd.Flags().GetInt("satisfaction")
	notes, _ := cmd.Flags().GetString("notes")

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	result, err := a.tasks.Complete(cmd.Context(), a.user(), args[0], satisfaction, notes)
	if err != nil {
		exitErr("done", err)
	}

	b, _ := json.Marshal(result.Task)
	fmt.Println(string(b))
	if result.Successor != nil {
		fmt.Printf("next occurrence %s scheduled for %s\n",
			result.Successor.ID, result.Successor.ScheduledFor.Format("2006-01-02 15:04"))
	}
	if result.SuccessorErr != nil {
		fmt.Printf("warning: next occurrence was not created: %v\n", result.SuccessorErr)
	}
}
