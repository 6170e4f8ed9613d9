/*
Package cli implements the beacon command-line interface.

Each command is constructed by a NewXCmd function and wired to the root
command in cmd/beacon. The commands share one convention: configuration is
loaded (or created) first, the data directory is resolved from it, and
every optional subsystem that fails to open degrades to a warning instead
of aborting the whole command.
*/
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/candidate"
	"github.com/beaconlauncher/beacon/internal/config"
	"github.com/beaconlauncher/beacon/internal/dedupe"
	"github.com/beaconlauncher/beacon/internal/history"
	"github.com/beaconlauncher/beacon/internal/rank"
)

// NewSearchCmd creates the 'search' command: a one-shot query against all
// providers, printed as the two lanes the launcher window would show.
func NewSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a one-shot query and print ranked results",
		Long: `Run the full search path once: fan out to all providers, deduplicate,
rank, and print the horizontal and vertical lanes.

A query starting with a configured search-engine prefix (e.g. "g golang")
short-circuits to a single web-search result.`,
		Example: `  beacon search report
  beacon search "g golang"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum results to print per lane")
	return cmd
}

func runSearch(query string, limit int) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	store := history.NewStore(dataDir)
	if err := store.Init(); err != nil {
		log.Printf("Warning: history unavailable: %v", err)
	}
	defer store.Close()

	providers, cleanup := buildProviders(store, dataDir)
	defer cleanup()

	ctx := context.Background()
	var all []candidate.Candidate
	for _, p := range providers {
		cs, err := p.Search(ctx, query)
		if err != nil {
			log.Printf("Warning: provider %s failed: %v", p.Name(), err)
			continue
		}
		all = append(all, cs...)
	}

	deduped := dedupe.New().Dedupe(all)
	horizontal, vertical := rank.NewPipeline(cfg.Engines).Rank(deduped, query, nil)

	printLane("Horizontal", horizontal, limit)
	printLane("Vertical", vertical, limit)
	return nil
}

func printLane(name string, lane []candidate.Candidate, limit int) {
	fmt.Printf("%s (%d):\n", name, len(lane))
	for i, c := range lane {
		if i >= limit {
			fmt.Printf("  ... %d more\n", len(lane)-limit)
			break
		}
		fmt.Printf("  %-16s %-30s %s\n", c.Kind, c.Name, c.Path)
	}
}
