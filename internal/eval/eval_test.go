package eval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/quiz"
)

var defaultScoring = quiz.DefaultScoring()

func evaluate(t *testing.T, q quiz.Question, a quiz.Answer, j judge.Judge) quiz.QuestionResult {
	t.Helper()
	r, err := EvaluateAnswer(context.Background(), q, a, defaultScoring, j, "English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestEvaluateFreeText(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "What is the capital of France?", Wt: 1},
		Answer: "Paris",
	}
	mock := judge.NewMockJudge(judge.MockResponse{
		Verdict: &judge.Verdict{Score: 85, Explanation: "Good.", ExpectedAnswer: "Paris"},
	})

	r := evaluate(t, q, quiz.TextAnswer("Paris, I think"), mock)

	if r.Score != 85 {
		t.Errorf("Score = %d, want 85", r.Score)
	}
	if r.Status != quiz.StatusPassed {
		t.Errorf("Status = %q, want passed", r.Status)
	}
	if r.Explanation != "Good." {
		t.Errorf("Explanation = %q, want judge feedback verbatim", r.Explanation)
	}
	if mock.Calls[0].UserAnswer != "Paris, I think" {
		t.Errorf("judge saw answer %q", mock.Calls[0].UserAnswer)
	}
	if mock.Calls[0].Language != "English" {
		t.Errorf("judge saw language %q", mock.Calls[0].Language)
	}
}

func TestEvaluateFreeTextWithoutJudge(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "Explain.", Wt: 1},
		Answer: "Because.",
	}

	_, err := EvaluateAnswer(context.Background(), q, quiz.TextAnswer("uh"), defaultScoring, nil, "English")
	if !errors.Is(err, ErrJudgeRequired) {
		t.Fatalf("expected ErrJudgeRequired, got %v", err)
	}
}

func TestEvaluateFreeTextJudgeErrorPropagates(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "Explain.", Wt: 1},
		Answer: "Because.",
	}
	wantErr := &judge.ErrTransport{Provider: "mock", Status: 503}
	mock := judge.NewMockJudge(judge.MockResponse{Err: wantErr})

	_, err := EvaluateAnswer(context.Background(), q, quiz.TextAnswer("uh"), defaultScoring, mock, "English")
	if err == nil {
		t.Fatal("expected error")
	}
	var transport *judge.ErrTransport
	if !errors.As(err, &transport) {
		t.Fatalf("expected wrapped ErrTransport, got %T (%v)", err, err)
	}
	if transport.Status != 503 {
		t.Errorf("Status = %d, want the original 503", transport.Status)
	}
}

// An out-of-range judge score is clamped, never trusted.
func TestEvaluateFreeTextClampsJudgeScore(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "Q", Wt: 1},
		Answer: "A",
	}
	mock := judge.NewMockJudge(judge.MockResponse{
		Verdict: &judge.Verdict{Score: 250, Explanation: "x", ExpectedAnswer: "A"},
	})

	r := evaluate(t, q, quiz.TextAnswer("A"), mock)
	if r.Score != 100 {
		t.Errorf("Score = %d, want clamped 100", r.Score)
	}
}

func TestEvaluateMCQSingle(t *testing.T) {
	q := quiz.MCQQuestion{
		Base:    quiz.Base{Text: "Capital of France?", Wt: 1},
		Options: []string{"Paris", "Lyon", "Marseille"},
		Answer:  []string{"Paris"},
	}

	t.Run("correct", func(t *testing.T) {
		r := evaluate(t, q, quiz.ChoiceAnswer{"Paris"}, nil)
		if r.Score != 100 || r.Status != quiz.StatusPassed {
			t.Errorf("got score %d status %q, want 100 passed", r.Score, r.Status)
		}
	})

	t.Run("incorrect", func(t *testing.T) {
		r := evaluate(t, q, quiz.ChoiceAnswer{"Lyon"}, nil)
		if r.Score != 0 || r.Status != quiz.StatusFailed {
			t.Errorf("got score %d status %q, want 0 failed", r.Score, r.Status)
		}
		if !strings.Contains(r.Explanation, "Lyon") {
			t.Errorf("explanation %q should echo the selection", r.Explanation)
		}
		if r.ExpectedAnswer != "Paris" {
			t.Errorf("ExpectedAnswer = %q, want Paris", r.ExpectedAnswer)
		}
	})
}

func TestEvaluateMCQMulti(t *testing.T) {
	q := quiz.MCQQuestion{
		Base:     quiz.Base{Text: "Which are primary colors?", Wt: 1},
		Options:  []string{"red", "green", "blue", "yellow"},
		Answer:   []string{"red", "blue", "yellow"},
		Multiple: true,
	}

	tests := []struct {
		name      string
		selected  quiz.ChoiceAnswer
		wantScore int
	}{
		{"all correct", quiz.ChoiceAnswer{"red", "blue", "yellow"}, 100},
		{"two of three", quiz.ChoiceAnswer{"red", "blue"}, 67},
		{"one of three", quiz.ChoiceAnswer{"red"}, 33},
		{"correct plus wrong cancels", quiz.ChoiceAnswer{"red", "green"}, 0},
		{"two correct one wrong", quiz.ChoiceAnswer{"red", "blue", "green"}, 33},
		{"only wrong floors at zero", quiz.ChoiceAnswer{"green"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := evaluate(t, q, tt.selected, nil)
			if r.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", r.Score, tt.wantScore)
			}
		})
	}
}

// Selections count as a set: repeating a pick neither inflates credit past
// 100 nor doubles a penalty.
func TestEvaluateMCQDuplicateSelections(t *testing.T) {
	multi := quiz.MCQQuestion{
		Base:     quiz.Base{Text: "Pick.", Wt: 1},
		Options:  []string{"a", "b", "c"},
		Answer:   []string{"a"},
		Multiple: true,
	}

	r := evaluate(t, multi, quiz.ChoiceAnswer{"a", "a"}, nil)
	if r.Score != 100 {
		t.Errorf("duplicated correct pick scored %d, want 100", r.Score)
	}
	if r.Score < 0 || r.Score > 100 {
		t.Errorf("Score %d out of [0,100]", r.Score)
	}

	r = evaluate(t, multi, quiz.ChoiceAnswer{"a", "b", "b"}, nil)
	if r.Score != 0 {
		t.Errorf("duplicated wrong pick scored %d, want 0 (one correct, one incorrect)", r.Score)
	}

	single := quiz.MCQQuestion{
		Base:    quiz.Base{Text: "Capital of France?", Wt: 1},
		Options: []string{"Paris", "Lyon"},
		Answer:  []string{"Paris"},
	}
	r = evaluate(t, single, quiz.ChoiceAnswer{"Paris", "Paris"}, nil)
	if r.Score != 100 {
		t.Errorf("repeated single selection scored %d, want 100", r.Score)
	}
}

// Adding a correct selection never lowers the score; adding a wrong one
// never raises it.
func TestEvaluateMCQMultiMonotonic(t *testing.T) {
	q := quiz.MCQQuestion{
		Base:     quiz.Base{Text: "Pick.", Wt: 1},
		Options:  []string{"a", "b", "c", "d"},
		Answer:   []string{"a", "b", "c"},
		Multiple: true,
	}

	base := evaluate(t, q, quiz.ChoiceAnswer{"a"}, nil)

	withMoreCorrect := evaluate(t, q, quiz.ChoiceAnswer{"a", "b"}, nil)
	if withMoreCorrect.Score < base.Score {
		t.Errorf("adding a correct pick dropped score %d -> %d", base.Score, withMoreCorrect.Score)
	}

	withWrong := evaluate(t, q, quiz.ChoiceAnswer{"a", "d"}, nil)
	if withWrong.Score > base.Score {
		t.Errorf("adding a wrong pick raised score %d -> %d", base.Score, withWrong.Score)
	}
}

func TestEvaluateSliderExact(t *testing.T) {
	q := quiz.SliderQuestion{
		Base: quiz.Base{Text: "Boiling point of water (°C)?", Wt: 1},
		Min:  0, Max: 200, Step: 1,
		Answer: 100,
	}

	r := evaluate(t, q, quiz.NumberAnswer(100), nil)
	if r.Score != 100 {
		t.Errorf("exact answer scored %d", r.Score)
	}

	r = evaluate(t, q, quiz.NumberAnswer(99), nil)
	if r.Score != 0 {
		t.Errorf("off-by-one without tolerance scored %d, want 0", r.Score)
	}
}

func TestEvaluateSliderTolerance(t *testing.T) {
	tol := 5.0
	q := quiz.SliderQuestion{
		Base: quiz.Base{Text: "Estimate.", Wt: 1},
		Min:  0, Max: 100, Step: 1,
		Answer:    50,
		Tolerance: &tol,
	}

	tests := []struct {
		value     float64
		wantScore int
	}{
		{50, 100},
		{45, 100}, // boundary is inclusive
		{55, 100},
		{44, 0},
		{56, 0},
	}

	for _, tt := range tests {
		r := evaluate(t, q, quiz.NumberAnswer(tt.value), nil)
		if r.Score != tt.wantScore {
			t.Errorf("value %g scored %d, want %d", tt.value, r.Score, tt.wantScore)
		}
	}

	r := evaluate(t, q, quiz.NumberAnswer(44), nil)
	if !strings.Contains(r.ExpectedAnswer, "±5") {
		t.Errorf("ExpectedAnswer %q should show the tolerance window", r.ExpectedAnswer)
	}
}

func TestEvaluateTrueFalse(t *testing.T) {
	q := quiz.TrueFalseQuestion{
		Base:   quiz.Base{Text: "The sky is blue.", Wt: 1},
		Answer: true,
	}

	r := evaluate(t, q, quiz.BoolAnswer(true), nil)
	if r.Score != 100 || r.Status != quiz.StatusPassed {
		t.Errorf("correct answer: score %d status %q", r.Score, r.Status)
	}

	r = evaluate(t, q, quiz.BoolAnswer(false), nil)
	if r.Score != 0 || r.Status != quiz.StatusFailed {
		t.Errorf("wrong answer: score %d status %q", r.Score, r.Status)
	}
	if r.ExpectedAnswer != "true" {
		t.Errorf("ExpectedAnswer = %q, want true", r.ExpectedAnswer)
	}
}

func TestEvaluateAnswerShapeMismatch(t *testing.T) {
	q := quiz.TrueFalseQuestion{
		Base:   quiz.Base{Text: "Statement.", Wt: 1},
		Answer: true,
	}

	_, err := EvaluateAnswer(context.Background(), q, quiz.TextAnswer("yes"), defaultScoring, nil, "English")
	if err == nil {
		t.Fatal("expected error for mismatched answer shape")
	}
	if !strings.Contains(err.Error(), "wrong shape") {
		t.Errorf("error %q should name the shape mismatch", err)
	}
}

// The intermediate band classifies per-question results too.
func TestEvaluateStatusUsesQuizThresholds(t *testing.T) {
	q := quiz.FreeTextQuestion{
		Base:   quiz.Base{Text: "Q", Wt: 1},
		Answer: "A",
	}
	mock := judge.NewMockJudge(judge.MockResponse{
		Verdict: &judge.Verdict{Score: 70, Explanation: "x", ExpectedAnswer: "A"},
	})

	r, err := EvaluateAnswer(context.Background(), q, quiz.TextAnswer("a"), quiz.Scoring{MinScoreToPass: 80, MinScoreToFail: 60}, mock, "English")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != quiz.StatusImprecise {
		t.Errorf("Status = %q, want imprecise for a score of 70", r.Status)
	}
}
