package cmd

import (
	"fmt"
	"os"

	"github.com/dverney/quizine/internal/app"
	"github.com/dverney/quizine/internal/finder"
	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [folder or file]",
	Short: "Run quizzes interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	entries, problems := finder.DiscoverPath(path)
	if len(entries) == 0 && len(problems) > 0 {
		return fmt.Errorf("no usable quizzes under %s: %v", path, problems[0])
	}

	// Open store for judge call logging.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.JudgeEvents()
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}

	cfg := judgeConfig(cmd)
	deps := app.Deps{
		Entries:  entries,
		Problems: problems,
		Language: cfg.Language,
		Timeout:  cfg.Timeout,
	}

	// The judge is optional. Quizzes without free-text questions run fine
	// without one.
	j, err := buildJudge(cmd, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Judge not configured:", err)
		fmt.Fprintln(os.Stderr, "Free-text questions will be unavailable.")
	} else {
		deps.Judge = j
	}

	return app.Run(deps)
}

// judgeConfig assembles judge configuration from env with flag overrides.
func judgeConfig(cmd *cobra.Command) judge.Config {
	cfg := judge.ConfigFromEnv()
	if p, _ := cmd.Flags().GetString("judge"); p != "" {
		cfg.Provider = p
	}
	if l, _ := cmd.Flags().GetString("language"); l != "" {
		cfg.Language = l
	}
	return cfg
}

// buildJudge creates the judge from flags and env. When neither flags nor
// QUIZINE_* variables select a provider, standard API key variables are
// probed as a fallback.
func buildJudge(cmd *cobra.Command, eventRepo store.JudgeEventRepo) (judge.Judge, error) {
	cfg := judgeConfig(cmd)
	if err := cfg.Validate(); err != nil {
		if p, _ := cmd.Flags().GetString("judge"); p != "" {
			// An explicitly selected provider must be configured.
			return nil, err
		}
		discovered, ok := judge.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return judge.New(cmd.Context(), cfg, eventRepo)
}
