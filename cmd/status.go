package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the backend is reachable",
	Run: func(_ *cobra.Command, _ []string) {
		runStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus() {
	_, client, _, _ := setup()

	health, err := client.Health()
	if err != nil {
		fmt.Println("Backend offline")
		return
	}

	fmt.Printf("Backend online: %s %s\n", health.Service, health.Version)
}
