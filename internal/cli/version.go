package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/version"
)

// NewVersionCmd creates the 'version' command
func NewVersionCmd() *cobra.Command {
	var checkUpdate bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the current version, commit hash, and build date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(checkUpdate)
		},
	}

	cmd.Flags().BoolVar(&checkUpdate, "check-update", false, "check GitHub for a newer release")
	return cmd
}

func runVersion(checkUpdate bool) error {
	v, c, d := version.GetVersionComponents()
	fmt.Printf("Version:  %s\n", v)
	fmt.Printf("Commit:   %s\n", c)
	fmt.Printf("Built:    %s\n", d)

	if !checkUpdate {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	latest, err := version.CheckUpdate(ctx)
	if err != nil {
		log.Printf("Warning: update check failed: %v", err)
		return nil
	}
	if latest == "" {
		fmt.Println("Up to date")
	} else {
		fmt.Printf("Update available: %s (https://github.com/%s/%s/releases)\n",
			latest, version.RepoOwner, version.RepoName)
	}
	return nil
}
