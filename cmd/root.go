package cmd

import (
	"github.com/dverney/quizine/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizine [folder]",
	Short: "Terminal quiz runner with an LLM judge",
	Long: "Quizine runs quizzes defined in YAML or markdown files. Free-text answers\n" +
		"are graded by an LLM judge; choice, slider and true/false questions are\n" +
		"scored locally.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZINE_DB env var)")
	rootCmd.PersistentFlags().String("judge", "", "Judge provider: openai, anthropic, ollama or gemini (overrides QUIZINE_JUDGE)")
	rootCmd.PersistentFlags().String("language", "", "Language for judge feedback (overrides QUIZINE_LANGUAGE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZINE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
