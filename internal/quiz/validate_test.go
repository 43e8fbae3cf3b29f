package quiz

import (
	"strings"
	"testing"
)

func validQuiz() *Quiz {
	return &Quiz{
		Title:   "Geography",
		Scoring: DefaultScoring(),
		Questions: []Question{
			MCQQuestion{
				Base:    Base{Text: "Capital of France?", Wt: 1},
				Options: []string{"Paris", "Lyon"},
				Answer:  []string{"Paris"},
			},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(validQuiz()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Quiz)
		wantErr string
	}{
		{
			name:    "missing title",
			mutate:  func(q *Quiz) { q.Title = "  " },
			wantErr: "title",
		},
		{
			name:    "inverted thresholds",
			mutate:  func(q *Quiz) { q.Scoring = Scoring{MinScoreToPass: 50, MinScoreToFail: 70} },
			wantErr: "min_score_to_pass",
		},
		{
			name:    "no questions",
			mutate:  func(q *Quiz) { q.Questions = nil },
			wantErr: "at least one question",
		},
		{
			name: "empty prompt",
			mutate: func(q *Quiz) {
				q.Questions = []Question{TrueFalseQuestion{Base: Base{Text: " ", Wt: 1}}}
			},
			wantErr: "prompt",
		},
		{
			name: "zero weight",
			mutate: func(q *Quiz) {
				q.Questions = []Question{TrueFalseQuestion{Base: Base{Text: "ok", Wt: 0}}}
			},
			wantErr: "weight",
		},
		{
			name: "negative weight",
			mutate: func(q *Quiz) {
				q.Questions = []Question{TrueFalseQuestion{Base: Base{Text: "ok", Wt: -2}}}
			},
			wantErr: "weight",
		},
		{
			name: "free-text without reference answer",
			mutate: func(q *Quiz) {
				q.Questions = []Question{FreeTextQuestion{Base: Base{Text: "Explain.", Wt: 1}}}
			},
			wantErr: "reference answer",
		},
		{
			name: "mcq with one option",
			mutate: func(q *Quiz) {
				q.Questions = []Question{MCQQuestion{
					Base:    Base{Text: "Pick.", Wt: 1},
					Options: []string{"only"},
					Answer:  []string{"only"},
				}}
			},
			wantErr: "at least 2 options",
		},
		{
			name: "mcq duplicate options",
			mutate: func(q *Quiz) {
				q.Questions = []Question{MCQQuestion{
					Base:    Base{Text: "Pick.", Wt: 1},
					Options: []string{"a", "a"},
					Answer:  []string{"a"},
				}}
			},
			wantErr: "duplicate option",
		},
		{
			name: "mcq with no correct options",
			mutate: func(q *Quiz) {
				q.Questions = []Question{MCQQuestion{
					Base:    Base{Text: "Pick.", Wt: 1},
					Options: []string{"a", "b"},
				}}
			},
			wantErr: "correct option",
		},
		{
			name: "mcq correct option not offered",
			mutate: func(q *Quiz) {
				q.Questions = []Question{MCQQuestion{
					Base:    Base{Text: "Pick.", Wt: 1},
					Options: []string{"a", "b"},
					Answer:  []string{"c"},
				}}
			},
			wantErr: "not in the options list",
		},
		{
			name: "single-select with several correct options",
			mutate: func(q *Quiz) {
				q.Questions = []Question{MCQQuestion{
					Base:    Base{Text: "Pick.", Wt: 1},
					Options: []string{"a", "b", "c"},
					Answer:  []string{"a", "b"},
				}}
			},
			wantErr: "single-select",
		},
		{
			name: "slider min above max",
			mutate: func(q *Quiz) {
				q.Questions = []Question{SliderQuestion{
					Base: Base{Text: "How many?", Wt: 1},
					Min:  10, Max: 5, Step: 1, Answer: 7,
				}}
			},
			wantErr: "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuiz()
			tt.mutate(q)

			err := Validate(q)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

// Errors for a bad question carry its 1-based position.
func TestValidateReportsQuestionIndex(t *testing.T) {
	q := validQuiz()
	q.Questions = append(q.Questions, TrueFalseQuestion{Base: Base{Text: "", Wt: 1}})

	err := Validate(q)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "question 2") {
		t.Errorf("error %q should name question 2", err)
	}
}
