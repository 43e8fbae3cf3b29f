package cmd

import (
	"fmt"

	"github.com/dverney/quizine/internal/finder"
	"github.com/dverney/quizine/internal/quiz"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file or folder>...",
	Short: "Validate quiz files without running them (no database)",
	Long: `Parse and validate quiz definitions and report problems.

This is a stateless developer tool: no database, no judge, no events.
Useful when authoring quizzes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	var total, failed int
	for _, path := range args {
		entries, problems := finder.DiscoverPath(path)

		for _, e := range entries {
			total++
			fmt.Printf("✓ %s: %q, %d questions (pass %d / fail %d)\n",
				e.Path, e.Quiz.Title, len(e.Quiz.Questions),
				e.Quiz.Scoring.MinScoreToPass, e.Quiz.Scoring.MinScoreToFail)
			if verbose {
				printQuestions(e.Quiz)
			}
		}

		for _, p := range problems {
			total++
			failed++
			fmt.Printf("✗ %v\n", p)
		}
	}

	fmt.Printf("\n%d file(s) checked, %d with problems\n", total, failed)
	if failed > 0 {
		return fmt.Errorf("%d quiz file(s) are invalid", failed)
	}
	return nil
}

func printQuestions(q *quiz.Quiz) {
	for i, question := range q.Questions {
		weight := ""
		if question.Weight() != 1 {
			weight = fmt.Sprintf(", weight %g", question.Weight())
		}
		fmt.Printf("    %d. [%s%s] %s\n", i+1, question.Kind(), weight, question.Prompt())
	}
}

func init() {
	checkCmd.Flags().BoolP("verbose", "v", false, "List every question per quiz")
}
