package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reschedule [task-id]",
		Short: "Move a task to the top of the next hour",
		Args:  cobra.ExactArgs(1),
		Run:   runReschedule,
	}

	RootCmd.AddCommand(cmd)
}

func runReschedule(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	task, err := a.tasks.Reschedule(cmd.Context(), a.user(), args[0])
	if err != nil {
		exitErr("reschedule", err)
	}

	b, _ := json.Marshal(task)
	fmt.Println(string(b))
}
