package quiz

import "time"

// Quiz is a validated quiz definition as produced by the parser.
type Quiz struct {
	Title       string
	Description string
	Scoring     Scoring
	Questions   []Question
}

// QuestionResult records the outcome of one answered question. It is built
// once by the evaluator and never mutated.
type QuestionResult struct {
	Question Question
	Answer   Answer

	// Score is the earned credit in [0,100].
	Score int

	Status Status

	// Explanation is feedback for the quiz taker. May be empty.
	Explanation string

	// ExpectedAnswer is the canonical correct answer as a display string.
	// May be empty.
	ExpectedAnswer string
}

// Result is the final verdict for a completed quiz.
type Result struct {
	Quiz            *Quiz
	QuestionResults []QuestionResult

	// TotalScore is the weighted mean score in [0,100].
	TotalScore float64

	// RawScore is the total weighted points earned.
	RawScore float64

	// MaxScore is the total weighted points possible.
	MaxScore float64

	Status      Status
	CompletedAt time.Time
}

// CalculateResult folds per-question results into the overall quiz verdict.
// A quiz with zero total weight (no questions answered) scores 0. Pure apart
// from the completion timestamp.
func CalculateResult(q *Quiz, results []QuestionResult) *Result {
	var totalWeightedScore, totalWeight float64

	for _, r := range results {
		w := r.Question.Weight()
		totalWeightedScore += float64(r.Score) * w
		totalWeight += w
	}

	totalScore := 0.0
	if totalWeight > 0 {
		totalScore = totalWeightedScore / totalWeight
	}

	return &Result{
		Quiz:            q,
		QuestionResults: results,
		TotalScore:      totalScore,
		RawScore:        totalWeightedScore,
		MaxScore:        totalWeight * 100,
		Status:          StatusFor(totalScore, q.Scoring),
		CompletedAt:     time.Now(),
	}
}
