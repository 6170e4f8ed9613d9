package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/apps"
	"github.com/beaconlauncher/beacon/internal/config"
)

// NewAppsCmd creates the 'apps' parent command.
func NewAppsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apps",
		Short: "Scan for installed applications and inspect the app cache",
	}
}

// NewAppsScanCmd creates the 'apps scan' subcommand: walk the given roots
// for launchable applications and rewrite the cache.
func NewAppsScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <root>...",
		Short: "Scan directories for applications and refresh the cache",
		Example: `  beacon apps scan "C:/ProgramData/Microsoft/Windows/Start Menu" "C:/Program Files"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsScan(args)
		},
	}
}

// NewAppsListCmd creates the 'apps list' subcommand.
func NewAppsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List cached applications, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runAppsList(query)
		},
	}
}

func runAppsScan(roots []string) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	found := apps.Scan(roots)
	if err := apps.SaveCache(dataDir, found); err != nil {
		return fmt.Errorf("failed to save app cache: %w", err)
	}
	fmt.Printf("Cached %d applications\n", len(found))
	return nil
}

func runAppsList(query string) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	cached, err := apps.LoadCache(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load app cache: %w", err)
	}

	matched := apps.Filter(cached, query)
	if len(matched) == 0 {
		fmt.Println("No applications found (run 'beacon apps scan' first)")
		return nil
	}
	for _, a := range matched {
		fmt.Printf("  %-30s %s\n", a.Name, a.Path)
	}
	return nil
}
