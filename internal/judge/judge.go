package judge

import (
	"context"

	"github.com/dverney/quizine/internal/quiz"
)

// Verdict is the judge's grading of a free-text answer. All strings are in
// the language requested at evaluation time.
type Verdict struct {
	// Score is the earned credit, clamped to [0,100] before it reaches
	// callers. Judges are untrusted and may return values outside the range.
	Score int `json:"score"`

	// Explanation is brief feedback, one or two sentences.
	Explanation string `json:"explanation"`

	// ExpectedAnswer is the correct answer itself, not the reasoning.
	ExpectedAnswer string `json:"expectedAnswer"`
}

// Judge grades free-text answers through an external natural-language model.
// Implementations share the prompt and verdict coercion in this package and
// only translate their provider's wire format.
type Judge interface {
	// Evaluate grades the user's answer against the question's reference
	// answer. The verdict is produced entirely in the given language.
	Evaluate(ctx context.Context, q quiz.FreeTextQuestion, userAnswer, language string) (*Verdict, error)

	// TestConnection issues a minimal request and reports whether the
	// provider answered with transport success. All failures collapse to
	// false; this is a pre-flight check, never a grading path.
	TestConnection(ctx context.Context) bool

	// Name returns the provider identifier used in error messages and
	// event logs.
	Name() string
}
