package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LinosCo/trainbot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "trainbot [bot-config]",
	Short: "Adaptive employee-training tutor",
	Long:  "Trainbot runs conversational training sessions from a YAML bot configuration: explain, check understanding, quiz, and adapt until every topic is resolved.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRAINBOT_DB env var)")
	rootCmd.Flags().String("resume", "", "Resume an existing session by ID")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TRAINBOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
