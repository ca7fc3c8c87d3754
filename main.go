package main

import (
	"os"

	"github.com/Reriiii/AIRecruiter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
