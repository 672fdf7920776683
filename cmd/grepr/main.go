package main

import (
	"fmt"
	"os"

	"github.com/harrison/grepr/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	// Setup failures (an invalid pattern, bad arguments) are the only
	// nonzero exits; per-file errors were already reported by the runner.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
