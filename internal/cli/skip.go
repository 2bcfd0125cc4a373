package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "skip [task-id]",
		Short: "Skip a task",
		Args:  cobra.ExactArgs(1),
		Run:   runSkip,
	}

	cmd.Flags().StringP("reason", "r", "", "Why the task was skipped")

	RootCmd.AddCommand(cmd)
}

func runSkip(cmd *cobra.Command, args []string) {
	reason, _ := cmd.Flags().GetString("reason")

	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	task, err := a.tasks.Skip(cmd.Context(), a.user(), args[0], reason)
	if err != nil {
		exitErr("skip", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
