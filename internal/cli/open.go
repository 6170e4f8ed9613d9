package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/config"
	"github.com/beaconlauncher/beacon/internal/history"
	"github.com/beaconlauncher/beacon/internal/launch"
)

// NewOpenCmd creates the 'open' command: launch a target with the OS and
// record it in the open-history store so future queries rank it higher.
func NewOpenCmd() *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Open a result target and record it in history",
		Example: `  beacon open /path/to/report.txt
  beacon open https://example.com
  beacon open ms-settings:`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(args[0], noRecord)
		},
	}

	cmd.Flags().BoolVar(&noRecord, "no-record", false, "open without recording in history")
	return cmd
}

func runOpen(path string, noRecord bool) error {
	if err := launch.Open(path); err != nil {
		return err
	}

	if noRecord {
		return nil
	}

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
		log.Printf("Warning: history unavailable, open not recorded: %v", err)
		return nil
	}
	defer store.Close()

	if err := store.RecordOpen(path); err != nil {
		log.Printf("Warning: failed to record open: %v", err)
	}
	return nil
}
