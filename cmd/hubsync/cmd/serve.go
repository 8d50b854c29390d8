package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pocketai/hubsync/internal/hub"
	"github.com/pocketai/hubsync/internal/scheduler"
	"github.com/pocketai/hubsync/internal/server"
	"github.com/pocketai/hubsync/internal/store"
	"github.com/pocketai/hubsync/internal/sync"
	"github.com/pocketai/hubsync/pkg/logging"
)

var serveAddr string

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the sync service with schedule and trigger endpoint",
	Long: `Serve runs hubsync as a long-lived service: a daily sync at the
configured UTC hour, plus an HTTP endpoint (POST /api/v1/sync) for
on-demand runs. The service shuts down gracefully on SIGINT/SIGTERM.`,
	Example: `  hubsync serve
  hubsync serve --addr :9090`,
	RunE: runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: configured listen_addr)")
}

func runServeCmd(cobraCmd *cobra.Command, _ []string) error {
	addr := cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	logger := logging.Default()

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	if err := db.Migrate(); err != nil {
		return err
	}

	client := hub.New(hub.WithBaseURL(cfg.HubBaseURL), hub.WithToken(cfg.HubToken))
	syncer := sync.New(client, store.NewModels(db), store.NewPrincipals(db), logger)

	trigger := func(ctx context.Context) (*sync.Result, error) {
		return syncer.Run(ctx, cfg.HubFilter, cfg.SyncLimit)
	}

	sched := scheduler.New(cfg.SyncHourUTC, func(ctx context.Context) {
		if _, err := trigger(ctx); err != nil {
			logger.Error().Err(err).Msg("Scheduled sync failed")
		}
	}, logger)

	sched.Start(cobraCmd.Context())
	defer sched.Stop()

	srv := server.New(server.Config{Addr: addr}, trigger, logger)
	return srv.Start(cobraCmd.Context())
}
