package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadCmd = &cobra.Command{
	Use:   "upload FILE",
	Short: "Upload a resume PDF for parsing and indexing",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runUpload(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)

	uploadCmd.Flags().StringP("provider", "p", "", "model provider for parsing (optional, backend default otherwise)")
	uploadCmd.Flags().StringP("model", "m", "", "model id for parsing, must belong to the provider")
}

func runUpload(cmd *cobra.Command, path string) {
	orch, _, config, zlog := setup()

	provider, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")

	if provider == "" && model == "" && config.Upload != nil {
		provider = config.Upload.Provider
		model = config.Upload.Model
	}

	file, err := os.Open(path)
	if err != nil {
		zlog.Fatal("opening resume file", zap.Error(err))
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		zlog.Fatal("reading resume file info", zap.Error(err))
	}

	candidateRecord, err := orch.Upload(workflow.UploadParams{
		FileName: filepath.Base(path),
		Size:     info.Size(),
		Content:  file,
		Provider: provider,
		Model:    model,
	})
	if err != nil {
		zlog.Fatal("upload failed", zap.String("reason", workflow.UserMessage(err)))
	}

	fmt.Printf("Processed resume of %s\n", candidateRecord.DisplayName())
	fmt.Printf("  id:         %s\n", candidateRecord.ID)
	fmt.Printf("  role:       %s\n", candidateRecord.Role)
	fmt.Printf("  experience: %d years\n", candidateRecord.YearsExp)
	fmt.Printf("  skills:     %s\n", strings.Join(candidateRecord.Skills, ", "))

	if candidateRecord.Score != nil {
		fmt.Printf("  quality:    %s (%d%%)\n", candidateRecord.Score.Bucket(), candidateRecord.Score.Percentage())
	}
}
