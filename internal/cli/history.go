package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/config"
	"github.com/beaconlauncher/beacon/internal/history"
)

// NewHistoryCmd creates the 'history' command for inspecting and
// maintaining the persistent open-history store.
func NewHistoryCmd() *cobra.Command {
	var record string
	var cleanupDays int

	cmd := &cobra.Command{
		Use:   "history [query]",
		Short: "List, search or maintain the open-history store",
		Example: `  # List recent files
  beacon history

  # Search history
  beacon history report

  # Record an opened file
  beacon history --record /path/to/file.txt

  # Drop entries older than 90 days
  beacon history --cleanup-days 90`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runHistory(query, record, cleanupDays)
		},
	}

	cmd.Flags().StringVar(&record, "record", "", "record an opened file instead of listing")
	cmd.Flags().IntVar(&cleanupDays, "cleanup-days", 0, "drop entries older than N days")
	return cmd
}

func runHistory(query, record string, cleanupDays int) error {
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
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	if record != "" {
		if err := store.RecordOpen(record); err != nil {
			return fmt.Errorf("failed to record open: %w", err)
		}
		fmt.Printf("Recorded: %s\n", record)
		return nil
	}

	if cleanupDays > 0 {
		retention := time.Duration(cleanupDays) * 24 * time.Hour
		if err := store.Cleanup(retention); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
		fmt.Printf("Dropped entries older than %d days\n", cleanupDays)
		return nil
	}

	items, err := store.Search(query)
	if err != nil {
		return fmt.Errorf("history search failed: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No history entries")
		return nil
	}
	for _, it := range items {
		last := time.Unix(it.LastUsed, 0).Format("2006-01-02 15:04")
		fmt.Printf("  %3d×  %s  %s\n", it.UseCount, last, it.Path)
	}
	return nil
}
