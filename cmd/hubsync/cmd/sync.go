package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketai/hubsync/internal/hub"
	"github.com/pocketai/hubsync/internal/store"
	"github.com/pocketai/hubsync/internal/sync"
	"github.com/pocketai/hubsync/pkg/logging"
)

var (
	syncFilter string
	syncLimit  int
)

// syncCmd represents the sync command.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one reconciliation against the model hub",
	Long: `Sync fetches the public model listing for the configured family from
the model hub and reconciles it against the local catalog: new models
are created, known models get their metadata refreshed, and per-model
failures are skipped without aborting the run.`,
	Example: `  hubsync sync
  hubsync sync --filter tflite --limit 200`,
	RunE: runSyncCmd,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVarP(&syncFilter, "filter", "f", "", "hub filter label (default: configured hub_filter)")
	syncCmd.Flags().IntVarP(&syncLimit, "limit", "l", 0, "maximum models to fetch (default: configured sync_limit)")
}

func runSyncCmd(cobraCmd *cobra.Command, _ []string) error {
	filter := cfg.HubFilter
	if syncFilter != "" {
		filter = syncFilter
	}
	limit := cfg.SyncLimit
	if syncLimit > 0 {
		limit = syncLimit
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	if err := db.Migrate(); err != nil {
		return err
	}

	client := hub.New(hub.WithBaseURL(cfg.HubBaseURL), hub.WithToken(cfg.HubToken))
	syncer := sync.New(client, store.NewModels(db), store.NewPrincipals(db), logging.Default())

	result, err := syncer.Run(cobraCmd.Context(), filter, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Sync complete: %s\n", result.Summary())
	if breakdown := result.LicenseBreakdown(); breakdown != "" {
		fmt.Printf("  licenses: %s\n", breakdown)
	}
	if result.HasSkips() {
		for _, skip := range result.Skips {
			fmt.Printf("  skipped %s: %s\n", skip.HubID, skip.Reason)
		}
	}
	return nil
}
