package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Reriiii/AIRecruiter/internal/candidate"
	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Match stored candidates against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		runSearch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("jd", "", "job description text")
	searchCmd.Flags().String("jd-file", "", "file containing the job description")
	searchCmd.Flags().Int("min-exp", 0, "minimum years of experience")
	searchCmd.Flags().Int("top-k", 0, "result count cap, 1-50 (default 10)")
	searchCmd.Flags().String("required-skills", "", "comma-separated required skills, forwarded to the backend")
	searchCmd.Flags().StringP("provider", "p", "", "model provider for matching")
	searchCmd.Flags().StringP("model", "m", "", "model id for matching, must belong to the provider")
}

func runSearch(cmd *cobra.Command) {
	orch, _, config, zlog := setup()

	params := searchParams(cmd, config, zlog)

	result, err := orch.Search(params)
	if err != nil {
		zlog.Fatal("search failed", zap.String("reason", workflow.UserMessage(err)))
	}

	fmt.Printf("Found %d matching candidates\n", result.Total)

	if result.QueryInfo != nil && result.QueryInfo.MinExp > 0 {
		fmt.Printf("  applied filter: at least %d years of experience\n", result.QueryInfo.MinExp)
	}
	if result.QueryInfo != nil && len(result.QueryInfo.RequiredSkills) > 0 {
		fmt.Printf("  applied filter: required skills %s\n", strings.Join(result.QueryInfo.RequiredSkills, ", "))
	}

	for i, match := range result.Matches.Items {
		printMatch(i+1, match)
	}
}

func searchParams(cmd *cobra.Command, config *Config, zlog *zap.Logger) workflow.SearchParams {
	jd, _ := cmd.Flags().GetString("jd")
	if jdFile, _ := cmd.Flags().GetString("jd-file"); jd == "" && jdFile != "" {
		data, err := os.ReadFile(jdFile)
		if err != nil {
			zlog.Fatal("reading job description file", zap.Error(err))
		}
		jd = string(data)
	}

	minExp, _ := cmd.Flags().GetInt("min-exp")
	topK, _ := cmd.Flags().GetInt("top-k")
	skills, _ := cmd.Flags().GetString("required-skills")
	provider, _ := cmd.Flags().GetString("provider")
	model, _ := cmd.Flags().GetString("model")

	if config.Search != nil {
		if minExp == 0 {
			minExp = config.Search.MinExp
		}
		if topK == 0 {
			topK = config.Search.TopK
		}
		if skills == "" {
			skills = config.Search.RequiredSkills
		}
		if provider == "" && model == "" {
			provider = config.Search.Provider
			model = config.Search.Model
		}
	}

	return workflow.SearchParams{
		JDText:         jd,
		MinExp:         minExp,
		TopK:           topK,
		RequiredSkills: skills,
		Provider:       provider,
		Model:          model,
	}
}

func printMatch(rank int, match *candidate.Candidate) {
	fmt.Printf("%2d. %s", rank, match.DisplayName())

	if match.Role != "" && match.Role != candidate.NotAvailable {
		fmt.Printf(" / %s", match.Role)
	}

	fmt.Printf(" / %d years", match.YearsExp)

	if match.Score != nil {
		fmt.Printf(" / %d%% (%s)", match.Score.Percentage(), match.Score.Bucket())
	}

	fmt.Println()

	if len(match.Skills) > 0 {
		fmt.Printf("    skills: %s\n", strings.Join(match.Skills, ", "))
	}
}
