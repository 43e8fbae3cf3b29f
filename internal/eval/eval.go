// Package eval turns a question and a submitted answer into a scored,
// classified result. Three evaluators are pure functions; free-text
// delegates to an external judge.
package eval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/quiz"
)

// ErrJudgeRequired indicates a free-text question was evaluated without a
// configured judge. A caller precondition, never silently defaulted.
var ErrJudgeRequired = errors.New("free-text questions require a configured judge")

// ErrUnhandledKind indicates a question kind the dispatcher does not know.
// This is a contract violation upstream (a parser bug), not user error.
var ErrUnhandledKind = errors.New("unhandled question kind")

// outcome is what each evaluator produces before status classification.
type outcome struct {
	score          int
	explanation    string
	expectedAnswer string
}

// EvaluateAnswer routes a question to its evaluator, scores the answer and
// classifies the result against the quiz's thresholds. Only free-text
// evaluation can block (one judge round-trip); everything else is pure.
// Judge failures propagate unmodified apart from the question-kind prefix.
func EvaluateAnswer(
	ctx context.Context,
	q quiz.Question,
	answer quiz.Answer,
	scoring quiz.Scoring,
	j judge.Judge,
	language string,
) (quiz.QuestionResult, error) {
	var out outcome
	var err error

	switch q := q.(type) {
	case quiz.FreeTextQuestion:
		text, ok := answer.(quiz.TextAnswer)
		if !ok {
			return quiz.QuestionResult{}, answerShapeError(q, answer)
		}
		out, err = evaluateFreeText(ctx, q, string(text), j, language)

	case quiz.MCQQuestion:
		selected, ok := answer.(quiz.ChoiceAnswer)
		if !ok {
			return quiz.QuestionResult{}, answerShapeError(q, answer)
		}
		out = evaluateMCQ(q, selected)

	case quiz.SliderQuestion:
		value, ok := answer.(quiz.NumberAnswer)
		if !ok {
			return quiz.QuestionResult{}, answerShapeError(q, answer)
		}
		out = evaluateSlider(q, float64(value))

	case quiz.TrueFalseQuestion:
		value, ok := answer.(quiz.BoolAnswer)
		if !ok {
			return quiz.QuestionResult{}, answerShapeError(q, answer)
		}
		out = evaluateTrueFalse(q, bool(value))

	default:
		return quiz.QuestionResult{}, fmt.Errorf("%w: %q", ErrUnhandledKind, q.Kind())
	}

	if err != nil {
		return quiz.QuestionResult{}, fmt.Errorf("%s question: %w", q.Kind(), err)
	}

	return quiz.QuestionResult{
		Question:       q,
		Answer:         answer,
		Score:          out.score,
		Status:         quiz.StatusFor(float64(out.score), scoring),
		Explanation:    out.explanation,
		ExpectedAnswer: out.expectedAnswer,
	}, nil
}

func answerShapeError(q quiz.Question, a quiz.Answer) error {
	return fmt.Errorf("%s question: answer has wrong shape %T", q.Kind(), a)
}

// evaluateFreeText delegates scoring entirely to the judge. The score is
// clamped before use because judge output is untrusted; explanation and
// expected answer pass through verbatim.
func evaluateFreeText(ctx context.Context, q quiz.FreeTextQuestion, userAnswer string, j judge.Judge, language string) (outcome, error) {
	if j == nil {
		return outcome{}, ErrJudgeRequired
	}

	verdict, err := j.Evaluate(ctx, q, userAnswer, language)
	if err != nil {
		return outcome{}, err
	}

	return outcome{
		score:          judge.ClampScore(verdict.Score),
		explanation:    verdict.Explanation,
		expectedAnswer: verdict.ExpectedAnswer,
	}, nil
}

// evaluateMCQ scores a multiple choice answer. Single-select is binary;
// multi-select gives proportional credit, penalizing both wrong picks and
// omissions, floored at 0.
func evaluateMCQ(q quiz.MCQQuestion, selected quiz.ChoiceAnswer) outcome {
	correct := make(map[string]bool, len(q.Answer))
	for _, a := range q.Answer {
		correct[a] = true
	}
	expected := strings.Join(q.Answer, ", ")

	// Selections are treated as a set: a duplicated pick counts once, which
	// keeps the score inside [0,100].
	seen := make(map[string]bool, len(selected))
	unique := make([]string, 0, len(selected))
	for _, s := range selected {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}

	if !q.Multiple {
		// Correctness requires the selected singleton to match the stored
		// correct set; anything else, including malformed data, scores 0.
		isCorrect := len(unique) == 1 && len(correct) == 1 && correct[unique[0]]

		if isCorrect {
			return outcome{score: 100, explanation: "Correct!", expectedAnswer: expected}
		}
		return outcome{
			score:          0,
			explanation:    fmt.Sprintf("Incorrect. You selected: %s", strings.Join(unique, ", ")),
			expectedAnswer: expected,
		}
	}

	var correctSelections, incorrectSelections int
	for _, s := range unique {
		if correct[s] {
			correctSelections++
		} else {
			incorrectSelections++
		}
	}
	missed := len(correct) - correctSelections

	score := int(math.Round(float64(correctSelections-incorrectSelections) / float64(len(correct)) * 100))
	if score < 0 {
		score = 0
	}

	explanation := "Perfect! All correct answers selected."
	if score != 100 {
		var parts []string
		if correctSelections > 0 {
			parts = append(parts, fmt.Sprintf("%d correct", correctSelections))
		}
		if incorrectSelections > 0 {
			parts = append(parts, fmt.Sprintf("%d incorrect", incorrectSelections))
		}
		if missed > 0 {
			parts = append(parts, fmt.Sprintf("%d missed", missed))
		}
		explanation = strings.Join(parts, ", ")
	}

	return outcome{score: score, explanation: explanation, expectedAnswer: expected}
}

// evaluateSlider scores a numeric answer: within ±tolerance when one is
// set, exact equality otherwise. Step is display granularity and never
// affects scoring.
func evaluateSlider(q quiz.SliderQuestion, value float64) outcome {
	if q.Tolerance != nil {
		tol := *q.Tolerance
		expected := fmt.Sprintf("%s (±%s)", quiz.FormatNumber(q.Answer), quiz.FormatNumber(tol))

		if math.Abs(value-q.Answer) <= tol {
			return outcome{
				score:          100,
				explanation:    fmt.Sprintf("Correct! Your answer %s is within ±%s of the correct answer.", quiz.FormatNumber(value), quiz.FormatNumber(tol)),
				expectedAnswer: expected,
			}
		}
		return outcome{
			score:          0,
			explanation:    fmt.Sprintf("Incorrect. Your answer %s is outside the tolerance range of ±%s.", quiz.FormatNumber(value), quiz.FormatNumber(tol)),
			expectedAnswer: expected,
		}
	}

	expected := quiz.FormatNumber(q.Answer)
	if value == q.Answer {
		return outcome{score: 100, explanation: "Perfect! Exact answer.", expectedAnswer: expected}
	}
	return outcome{
		score:          0,
		explanation:    fmt.Sprintf("Incorrect. You answered %s.", quiz.FormatNumber(value)),
		expectedAnswer: expected,
	}
}

// evaluateTrueFalse scores a boolean answer.
func evaluateTrueFalse(q quiz.TrueFalseQuestion, value bool) outcome {
	expected := fmt.Sprintf("%t", q.Answer)

	if value == q.Answer {
		return outcome{score: 100, explanation: "Correct!", expectedAnswer: expected}
	}
	return outcome{
		score:          0,
		explanation:    fmt.Sprintf("Incorrect. You answered: %t", value),
		expectedAnswer: expected,
	}
}
