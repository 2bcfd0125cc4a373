package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	if err := a.tasks.Delete(cmd.Context(), a.user(), args[0]); err != nil {
		exitErr("rm", err)
	}
	fmt.Printf("deleted %s\n", args[0])
}
