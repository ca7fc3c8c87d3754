package cmd

import (
	"errors"
	"fmt"

	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var purgePrompt = promptui.Select{
	Label: "Delete ALL stored candidates?",
	Items: []string{PromptNo, PromptYes},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every stored candidate, one at a time",
	Run: func(cmd *cobra.Command, _ []string) {
		runPurge(cmd)
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)

	purgeCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation")
	purgeCmd.Flags().Duration("pacing", 0, "delay between consecutive deletes")
}

func runPurge(cmd *cobra.Command) {
	orch, _, config, zlog := setup()

	if cmd.Flag("auto-aprove").Value.String() == "false" {
		_, action, err := purgePrompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}

		if action != PromptYes {
			zlog.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	pacing, _ := cmd.Flags().GetDuration("pacing")
	if pacing == 0 && config.Purge != nil {
		pacing = config.Purge.Pacing
	}

	remaining, results, err := orch.DeleteAll(pacing)

	var batchErr *workflow.PartialBatchFailure
	switch {
	case err == nil:
	case errors.As(err, &batchErr):
		for _, failed := range batchErr.Failed() {
			zlog.Warn("could not delete candidate",
				zap.String("candidate_id", failed.ID),
				zap.String("reason", workflow.UserMessage(failed.Err)),
			)
		}
	default:
		zlog.Fatal("purge failed", zap.String("reason", workflow.UserMessage(err)))
	}

	fmt.Printf("Attempted %d deletes, %d candidates remain\n", len(results), remaining.Len())
}
