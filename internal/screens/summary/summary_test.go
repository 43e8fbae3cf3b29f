package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/router"
)

func testResult() *quiz.Result {
	q1 := quiz.TrueFalseQuestion{Base: quiz.Base{Text: "The sky is blue.", Wt: 1}, Answer: true}
	q2 := quiz.TrueFalseQuestion{Base: quiz.Base{Text: "Fire is cold.", Wt: 1}, Answer: false}

	return &quiz.Result{
		Quiz: &quiz.Quiz{
			Title:     "Checks",
			Scoring:   quiz.DefaultScoring(),
			Questions: []quiz.Question{q1, q2},
		},
		TotalScore: 50,
		RawScore:   100,
		MaxScore:   200,
		Status:     quiz.StatusFailed,
		QuestionResults: []quiz.QuestionResult{
			{Question: q1, Score: 100, Status: quiz.StatusPassed},
			{Question: q2, Score: 0, Status: quiz.StatusFailed},
		},
		CompletedAt: time.Now(),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)

	if !strings.Contains(view, "Total score: 50.0 / 100") {
		t.Error("expected the total score in the view")
	}
	if !strings.Contains(view, "100 of 200 weighted points") {
		t.Error("expected the weighted point tally in the view")
	}
	if !strings.Contains(view, "Quiz failed") {
		t.Error("expected the status headline in the view")
	}
	if !strings.Contains(view, "The sky is blue.") {
		t.Error("expected per-question lines in the view")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
		{Code: 'q', Text: "q"},
	} {
		s := New(testResult())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("key %v: expected a command", key)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %v: expected a pop back to the picker", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
