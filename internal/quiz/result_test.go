package quiz

import (
	"math"
	"testing"
)

func weightedQuestion(w float64) Question {
	return TrueFalseQuestion{Base: Base{Text: "statement", Wt: w}, Answer: true}
}

func TestCalculateResult(t *testing.T) {
	tests := []struct {
		name      string
		weights   []float64
		scores    []int
		wantTotal float64
	}{
		{
			name:      "equal weights average",
			weights:   []float64{1, 1},
			scores:    []int{100, 0},
			wantTotal: 50,
		},
		{
			name:      "unequal weights pull toward the heavy question",
			weights:   []float64{1, 3},
			scores:    []int{100, 0},
			wantTotal: 25,
		},
		{
			name:      "all full marks",
			weights:   []float64{2, 5, 1},
			scores:    []int{100, 100, 100},
			wantTotal: 100,
		},
		{
			name:      "all zero",
			weights:   []float64{1, 2},
			scores:    []int{0, 0},
			wantTotal: 0,
		},
		{
			name:      "single question passthrough",
			weights:   []float64{7},
			scores:    []int{64},
			wantTotal: 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Quiz{Title: "t", Scoring: DefaultScoring()}
			var results []QuestionResult
			for i, w := range tt.weights {
				question := weightedQuestion(w)
				q.Questions = append(q.Questions, question)
				results = append(results, QuestionResult{
					Question: question,
					Score:    tt.scores[i],
				})
			}

			r := CalculateResult(q, results)

			if math.Abs(r.TotalScore-tt.wantTotal) > 1e-9 {
				t.Errorf("TotalScore = %g, want %g", r.TotalScore, tt.wantTotal)
			}
			if r.Status != StatusFor(tt.wantTotal, q.Scoring) {
				t.Errorf("Status = %q, inconsistent with score %g", r.Status, tt.wantTotal)
			}
			if r.CompletedAt.IsZero() {
				t.Error("CompletedAt not set")
			}
		})
	}
}

func TestCalculateResultNoQuestions(t *testing.T) {
	q := &Quiz{Title: "t", Scoring: DefaultScoring()}

	r := CalculateResult(q, nil)

	if r.TotalScore != 0 {
		t.Errorf("TotalScore = %g, want 0 for zero total weight", r.TotalScore)
	}
	if r.Status != StatusFailed {
		t.Errorf("Status = %q, want failed", r.Status)
	}
}

func TestCalculateResultRawAndMax(t *testing.T) {
	q := &Quiz{Title: "t", Scoring: DefaultScoring()}
	q1 := weightedQuestion(2)
	q2 := weightedQuestion(1)
	q.Questions = []Question{q1, q2}

	r := CalculateResult(q, []QuestionResult{
		{Question: q1, Score: 50},
		{Question: q2, Score: 100},
	})

	if r.RawScore != 200 {
		t.Errorf("RawScore = %g, want 200", r.RawScore)
	}
	if r.MaxScore != 300 {
		t.Errorf("MaxScore = %g, want 300", r.MaxScore)
	}
	want := 200.0 / 3.0
	if math.Abs(r.TotalScore-want) > 1e-9 {
		t.Errorf("TotalScore = %g, want %g", r.TotalScore, want)
	}
}

// The weighted mean never leaves [0,100] when every per-question score is
// inside it.
func TestCalculateResultBounded(t *testing.T) {
	q := &Quiz{Title: "t", Scoring: DefaultScoring()}
	weights := []float64{0.5, 1, 2, 10}
	scores := []int{0, 33, 67, 100}

	var results []QuestionResult
	for i, w := range weights {
		question := weightedQuestion(w)
		q.Questions = append(q.Questions, question)
		results = append(results, QuestionResult{Question: question, Score: scores[i]})
	}

	r := CalculateResult(q, results)
	if r.TotalScore < 0 || r.TotalScore > 100 {
		t.Errorf("TotalScore %g out of [0,100]", r.TotalScore)
	}
}
