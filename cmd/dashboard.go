package cmd

import (
	"fmt"

	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show backend totals and aggregates over recent candidates",
	Run: func(_ *cobra.Command, _ []string) {
		runDashboard()
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard() {
	orch, _, _, zlog := setup()

	data, err := orch.Dashboard()
	if err != nil {
		zlog.Fatal("loading dashboard failed", zap.String("reason", workflow.UserMessage(err)))
	}

	fmt.Printf("Total candidates:   %d\n", data.Stats.TotalBackend)
	fmt.Printf("Average experience: %d years (over %d recent)\n", data.Stats.AvgYearsExp, data.Stats.Total)

	if len(data.Stats.TopSkills) > 0 {
		fmt.Println("Top skills:")
		for _, s := range data.Stats.TopSkills {
			fmt.Printf("  %-20s %d\n", s.Skill, s.Count)
		}
	}

	if data.Recent.Len() > 0 {
		fmt.Println("Recent candidates:")
		for _, c := range data.Recent.Items {
			fmt.Printf("  %s / %s / %d years\n", c.DisplayName(), c.Role, c.YearsExp)
		}
	}
}
