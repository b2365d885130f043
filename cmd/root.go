package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaemin/econquiz/internal/api"
	"github.com/jaemin/econquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "econquiz",
	Short: "Terminal client for AI-graded economics quizzes",
	Long:  "Econquiz — take AI-generated economics problem sets in the terminal, review graded attempts, and drill the topics you got wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ECONQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("api-base", "", "Quiz service base URL (overrides ECONQUIZ_API_BASE env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(stageCmd)
	rootCmd.AddCommand(attemptsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ECONQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfig builds the API config from env, applying flag overrides.
func resolveConfig(cmd *cobra.Command) (api.Config, error) {
	cfg := api.ConfigFromEnv()
	if base, _ := cmd.Flags().GetString("api-base"); base != "" {
		cfg.BaseURL = base
	}
	if err := cfg.Validate(); err != nil {
		return api.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
