/*
Package main is the entry point for the beacon CLI.

beacon is the search core of a desktop quick launcher: it aggregates
candidates from installed applications, file history, a local file index
and literal-input detectors, then deduplicates, ranks and incrementally
delivers them.

Usage:
  beacon [command]

Available Commands:
  run         Run an interactive query session on stdin
  search      Run a one-shot query and print ranked results
  open        Open a result target and record it in history
  history     List, search or maintain the open-history store
  index       Build and query the local file index
  apps        Scan for installed applications and inspect the app cache
  bench       Measure dedupe and ranking latency
  version     Show version information
  help        Help about any command

Examples:
  # Index your documents, scan for apps, then search
  beacon index build ~/Documents
  beacon apps scan "C:/Program Files"
  beacon search report
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beacon",
		Short: "Quick-launcher search core",
		Long: `beacon aggregates search candidates from multiple providers, resolves
duplicates across sources, ranks by relevance and usage recency, and
reveals results incrementally so large result sets never block the first
paint.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewRunCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewOpenCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
	rootCmd.AddCommand(cli.NewBenchCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	// Index command with build/search subcommands
	indexCmd := cli.NewIndexCmd()
	indexCmd.AddCommand(cli.NewIndexBuildCmd())
	indexCmd.AddCommand(cli.NewIndexSearchCmd())
	rootCmd.AddCommand(indexCmd)

	// Apps command with scan/list subcommands
	appsCmd := cli.NewAppsCmd()
	appsCmd.AddCommand(cli.NewAppsScanCmd())
	appsCmd.AddCommand(cli.NewAppsListCmd())
	rootCmd.AddCommand(appsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
