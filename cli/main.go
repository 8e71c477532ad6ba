package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/treb-genesis/internal/cli"
	"github.com/trebuchet-org/treb-genesis/internal/config"
)

// Set via -ldflags at release time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
