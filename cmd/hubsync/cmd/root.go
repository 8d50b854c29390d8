// Package cmd implements the hubsync command tree.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pocketai/hubsync/internal/config"
	"github.com/pocketai/hubsync/pkg/logging"
)

var (
	configFile string
	cfg        *config.Config

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hubsync",
	Short: "Model hub catalog sync service",
	Long: `Hubsync keeps the local Pocket AI model catalog reconciled with the
public model hub. It discovers publicly listed models for a configured
family, creates or updates the corresponding catalog records, and never
deletes anything.

Run it once with "hubsync sync", or as a long-lived service with
"hubsync serve" for the daily schedule and the manual trigger endpoint.`,
	PersistentPreRunE: setupCommand,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: environment only)")
}

// setupCommand loads .env and the service configuration before any
// subcommand runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	// Missing .env is fine in production; env vars take over.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(configFile)
	return err
}
