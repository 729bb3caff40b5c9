package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ashvale/pathbound/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathbound",
	Short: "LARP character builder",
	Long:  "Pathbound — terminal character builder that tracks events, tiers, and skill purchases for a living campaign.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHBOUND_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to the skill catalog CSV (overrides PATHBOUND_CATALOG env var)")
	rootCmd.PersistentFlags().StringP("character", "c", "", "Name of the saved character to operate on (default: most recently updated)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(sheetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHBOUND_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalogPath returns the catalog CSV path using --catalog, then the
// PATHBOUND_CATALOG env var.
func resolveCatalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	return os.Getenv("PATHBOUND_CATALOG")
}
