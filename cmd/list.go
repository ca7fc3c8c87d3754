package cmd

import (
	"fmt"
	"strings"

	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored candidates",
	Run: func(cmd *cobra.Command, _ []string) {
		runList(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntP("limit", "l", 100, "maximum number of candidates to fetch")
}

func runList(cmd *cobra.Command) {
	orch, _, _, zlog := setup()

	limit, _ := cmd.Flags().GetInt("limit")

	candidates, err := orch.List(limit)
	if err != nil {
		zlog.Fatal("listing candidates failed", zap.String("reason", workflow.UserMessage(err)))
	}

	if candidates.Len() == 0 {
		fmt.Println("No candidates stored yet")
		return
	}

	fmt.Printf("%d candidates\n", candidates.Len())

	for _, c := range candidates.Items {
		fmt.Printf("- %s  %s / %s / %d years\n", c.ID, c.DisplayName(), c.Role, c.YearsExp)

		if len(c.Skills) > 0 {
			fmt.Printf("    skills: %s\n", strings.Join(c.Skills, ", "))
		}

		if c.FileSource != "" {
			fmt.Printf("    source: %s\n", c.FileSource)
		}
	}
}
