package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/assessgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "assessgen",
	Short: "Generate grade-appropriate math assessments",
	Long: `assessgen writes practice assessments of 10 questions (5 multiple choice,
5 short answer) from curriculum inputs and grade-level reference material.

Run without a subcommand to open the interactive form.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASSESSGEN_DB env var)")
	rootCmd.PersistentFlags().String("log-mode", "", "Log format: production or development")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
