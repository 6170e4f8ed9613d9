package cli

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/beaconlauncher/beacon/internal/config"
	"github.com/beaconlauncher/beacon/internal/history"
	"github.com/beaconlauncher/beacon/internal/session"
)

// NewRunCmd creates the 'run' command: an interactive session reading
// queries from stdin. Each line is treated as the current query text;
// results stream to stdout as providers and the delivery scheduler
// progress.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run an interactive query session on stdin",
		Long: `Start a live session: every line typed on stdin becomes the current
query. Input is debounced, providers run concurrently, and results are
revealed incrementally the way the launcher window would show them.

An empty line clears the current query. EOF or Ctrl-C exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
}

func runInteractive() error {
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

	sess, err := session.New(session.Options{
		Providers:  providers,
		Engines:    cfg.Engines,
		Store:      store,
		DebounceMS: cfg.Debounce(),
		Emit:       printUpdate,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case sig := <-sigChan:
			log.Printf("Received signal: %v, shutting down", sig)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			sess.Query(line)
		}
	}
}

// printUpdate renders one session update. Only revealed entries are shown;
// the trailing line reports delivery progress while reveals are pending.
func printUpdate(u session.Update) {
	fmt.Printf("\n[gen %d] %q\n", u.Generation, u.Query)

	shown := 0
	for _, c := range u.Horizontal {
		if shown >= u.Progress.Revealed {
			break
		}
		fmt.Printf("  ► %-16s %s\n", c.Kind, c.Name)
		shown++
	}
	for _, c := range u.Vertical {
		if shown >= u.Progress.Revealed {
			break
		}
		fmt.Printf("    %-16s %-30s %s\n", c.Kind, c.Name, c.Path)
		shown++
	}

	if !u.Progress.Done() {
		fmt.Printf("  ... %d of %d revealed\n", u.Progress.Revealed, u.Progress.Total)
	}
}
