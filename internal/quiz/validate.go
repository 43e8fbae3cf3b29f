package quiz

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants of a quiz definition. It is run
// at load time so the evaluator can trust its inputs.
func Validate(q *Quiz) error {
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("quiz must have a title")
	}
	if q.Scoring.MinScoreToPass < q.Scoring.MinScoreToFail {
		return fmt.Errorf("min_score_to_pass (%d) must be >= min_score_to_fail (%d)",
			q.Scoring.MinScoreToPass, q.Scoring.MinScoreToFail)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz must have at least one question")
	}

	for i, question := range q.Questions {
		if err := validateQuestion(question); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Prompt()) == "" {
		return fmt.Errorf("missing prompt")
	}
	if q.Weight() <= 0 {
		return fmt.Errorf("weight must be positive, got %g", q.Weight())
	}

	switch q := q.(type) {
	case FreeTextQuestion:
		if strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("free-text question must have a reference answer")
		}

	case MCQQuestion:
		return validateMCQ(q)

	case SliderQuestion:
		if q.Min >= q.Max {
			return fmt.Errorf("slider min (%g) must be < max (%g)", q.Min, q.Max)
		}

	case TrueFalseQuestion:
		// Nothing beyond the shared checks.

	default:
		return fmt.Errorf("unknown question kind %q", q.Kind())
	}
	return nil
}

func validateMCQ(q MCQQuestion) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("mcq must have at least 2 options, got %d", len(q.Options))
	}

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
	}

	if len(q.Answer) == 0 {
		return fmt.Errorf("mcq must have at least one correct option")
	}
	for _, a := range q.Answer {
		if !seen[a] {
			return fmt.Errorf("correct option %q is not in the options list", a)
		}
	}

	// A single-select question with several authored correct options can
	// never be answered correctly, so reject it here instead of scoring it.
	if !q.Multiple && len(q.Answer) > 1 {
		return fmt.Errorf("single-select mcq has %d correct options; set multiple: true or keep one", len(q.Answer))
	}

	return nil
}
