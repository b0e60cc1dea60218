package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ananya/practiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "practiq",
	Short: "Practice session engine for a learning platform",
	Long:  "Practiq serves cycling practice sessions over a curriculum of questions, with tier-based limits and AI session recaps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PRACTIQ_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then PRACTIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
