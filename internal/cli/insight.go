package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/model"
)

func init() {
	insightCmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate and browse behavioral insights",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Analyze recent history and store new insights",
		Run:   runInsightGenerate,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the newest insights",
		Run:   runInsightList,
	}

	readCmd := &cobra.Command{
		Use:   "read [insight-id]",
		Short: "Mark an insight as read",
		Args:  cobra.ExactArgs(1),
		Run:   runInsightRead,
	}

	insightCmd.AddCommand(generateCmd, listCmd, readCmd)
	RootCmd.AddCommand(insightCmd)
}

func runInsightGenerate(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	insights, err := a.insights.Generate(cmd.Context(), a.user())
	if err != nil {
		exitErr("insights generate", err)
	}

	if len(insights) == 0 {
		fmt.Println("no new insights yet, keep logging tasks")
		return
	}
	b, _ := json.MarshalIndent(insights, "", "  ")
	fmt.Println(string(b))
}

func runInsightList(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	insights, err := a.insights.ListRecent(cmd.Context(), a.user())
	if err != nil {
		exitErr("insights list", err)
	}

	if insights == nil {
		insights = []model.Insight{}
	}
	b, _ := json.MarshalIndent(insights, "", "  ")
	fmt.Println(string(b))
}

func runInsightRead(cmd *cobra.Command, args []string) {
	a, err := openApp()
	if err != nil {
		exitErr("open db", err)
	}
	defer a.close()

	insight, err := a.insights.MarkRead(cmd.Context(), a.user(), args[0])
	if err != nil {
		exitErr("insights read", err)
	}

	b, _ := json.Marshal(insight)
	fmt.Println(string(b))
}
