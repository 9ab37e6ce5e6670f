package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/shiksha/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "shiksha",
	Short: "Learn Indian languages from the terminal",
	Long:  "Shiksha — a terminal app for learning Indian language alphabets, numbers, and words, with quizzes and progress tracking.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SHIKSHA_DB env var)")

	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SHIKSHA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
