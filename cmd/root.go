package cmd

import (
	"github.com/abhisek/flashdeck/internal/storage"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flashdeck",
	Short: "Terminal flashcard study app",
	Long:  "Flashdeck — study card sets in the terminal with adaptive learn sessions and classic flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FLASHDECK_DB env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FLASHDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}
