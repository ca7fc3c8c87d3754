package cmd

import (
	"fmt"

	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var deleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete candidates by id",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runDelete(args)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(ids []string) {
	orch, _, _, zlog := setup()

	failures := 0
	for _, id := range ids {
		if err := orch.Delete(id); err != nil {
			failures++
			zlog.Warn("delete failed",
				zap.String("candidate_id", id),
				zap.String("reason", workflow.UserMessage(err)),
			)
			continue
		}

		fmt.Printf("Deleted %s\n", id)
	}

	if failures > 0 {
		zlog.Fatal("some deletes failed", zap.Int("failed", failures), zap.Int("requested", len(ids)))
	}
}
