package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/config"
	"github.com/beaconlauncher/beacon/internal/index"
)

// NewIndexCmd creates the 'index' parent command. The build and query
// subcommands are attached by the root command.
func NewIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Build and query the local file index",
	}
}

// NewIndexBuildCmd creates the 'index build' subcommand.
func NewIndexBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <root>...",
		Short: "Walk directories and (re)index their files",
		Example: `  beacon index build ~/Documents ~/Downloads`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexBuild(args)
		},
	}
}

// NewIndexSearchCmd creates the 'index search' subcommand.
func NewIndexSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Query the file index directly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexSearch(args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum hits to print")
	return cmd
}

func openIndex() (*index.Indexer, error) {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	dataDir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	path := index.DefaultPath(dataDir)
	if err := index.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return index.NewIndexerWithPath(path)
}

func runIndexBuild(roots []string) error {
	idx, err := openIndex()
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer idx.Close()

	records := index.CollectFiles(roots)
	if err := idx.IndexFiles(records); err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	count, err := idx.Count()
	if err != nil {
		return fmt.Errorf("failed to read index size: %w", err)
	}
	fmt.Printf("Indexed %d files (%d total in index)\n", len(records), count)
	return nil
}

func runIndexSearch(query string, limit int) error {
	idx, err := openIndex()
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer idx.Close()

	hits, total, err := idx.Search(query, limit)
	if err != nil {
		return fmt.Errorf("index search failed: %w", err)
	}

	fmt.Printf("%d hits (showing %d):\n", total, len(hits))
	for _, h := range hits {
		marker := " "
		if h.IsFolder {
			marker = "d"
		}
		fmt.Printf("  %s %s\n", marker, h.Path)
	}
	return nil
}
