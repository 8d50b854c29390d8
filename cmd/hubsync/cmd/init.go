package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketai/hubsync/internal/seed"
	"github.com/pocketai/hubsync/internal/store"
	"github.com/pocketai/hubsync/pkg/logging"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the catalog schema and apply the seed catalog",
	Long: `Init creates the catalog database schema and inserts the curated
first-party records shipped with the service. Running it against an
existing catalog is safe; schema and seed application are idempotent.`,
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInitCmd(cobraCmd *cobra.Command, _ []string) error {
	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return err
	}

	created, err := seed.Apply(cobraCmd.Context(), db, logging.Default())
	if err != nil {
		return err
	}

	for _, m := range created {
		fmt.Printf("  seeded %s (%s, %s)\n", m.Slug, m.Category.Display(), m.License.Display())
	}
	fmt.Printf("Catalog initialized at %s (%d seed records created)\n", cfg.DatabasePath, len(created))
	return nil
}
