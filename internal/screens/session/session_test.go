package session

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/router"
	"github.com/dverney/quizine/internal/screen"
	"github.com/dverney/quizine/internal/screens/summary"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Title:   "Checks",
		Scoring: quiz.DefaultScoring(),
		Questions: []quiz.Question{
			quiz.TrueFalseQuestion{Base: quiz.Base{Text: "The sky is blue.", Wt: 1}, Answer: true},
			quiz.MCQQuestion{
				Base:    quiz.Base{Text: "Capital of France?", Wt: 1},
				Options: []string{"Paris", "Lyon"},
				Answer:  []string{"Paris"},
			},
		},
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)
	if s.Title() != "Checks" {
		t.Errorf("Title = %q, want %q", s.Title(), "Checks")
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)
	view := s.View(80, 24)
	if !strings.Contains(view, "The sky is blue.") {
		t.Error("expected the first question prompt in the view")
	}
	if !strings.Contains(view, "Question 1/2") {
		t.Error("expected progress indicator in the view")
	}
}

func TestQuizScreen_TrueFalseSubmitFlow(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	// Press T to answer true.
	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('t'))
	ss := scr.(*QuizScreen)
	if ss.phase != phaseEvaluating {
		t.Fatalf("phase = %d, want evaluating", ss.phase)
	}
	if cmd == nil {
		t.Fatal("expected an evaluation command")
	}

	// Run the evaluation and deliver its result.
	msg, ok := cmd().(answerEvaluatedMsg)
	if !ok {
		t.Fatal("expected answerEvaluatedMsg")
	}
	scr, _ = ss.Update(msg)
	ss = scr.(*QuizScreen)
	if ss.phase != phaseShowingResult {
		t.Fatalf("phase = %d, want showing result", ss.phase)
	}
	if len(ss.results) != 1 || ss.results[0].Score != 100 {
		t.Fatalf("results = %+v", ss.results)
	}

	// Any key advances to the next question.
	scr, _ = ss.Update(keyPress(' '))
	ss = scr.(*QuizScreen)
	if ss.index != 1 || ss.phase != phasePresenting {
		t.Errorf("index=%d phase=%d, want question 2 presenting", ss.index, ss.phase)
	}
}

// Advancing only issues a focus command when the next question actually has
// a text input.
func TestQuizScreen_AdvanceFocusMatchesQuestionKind(t *testing.T) {
	answerFirstQuestion := func(t *testing.T, s *QuizScreen) *QuizScreen {
		t.Helper()
		var scr screen.Screen = s
		scr, cmd := scr.Update(keyPress('t'))
		ss := scr.(*QuizScreen)
		scr, _ = ss.Update(cmd().(answerEvaluatedMsg))
		return scr.(*QuizScreen)
	}

	// Next question is an MCQ: no widget to focus.
	s := answerFirstQuestion(t, New(testQuiz(), nil, "English", 0))
	_, cmd := s.Update(keyPress(' '))
	if cmd != nil {
		t.Error("advancing to an MCQ should not focus the text input")
	}

	// Next question is free-text: the input gets focused.
	ft := &quiz.Quiz{
		Title:   "t",
		Scoring: quiz.DefaultScoring(),
		Questions: []quiz.Question{
			quiz.TrueFalseQuestion{Base: quiz.Base{Text: "First.", Wt: 1}, Answer: true},
			quiz.FreeTextQuestion{Base: quiz.Base{Text: "Explain.", Wt: 1}, Answer: "x"},
		},
	}
	s = answerFirstQuestion(t, New(ft, judge.NewMockJudge(), "English", 0))
	_, cmd = s.Update(keyPress(' '))
	if cmd == nil {
		t.Error("advancing to a free-text question should focus the input")
	}
}

func TestQuizScreen_TrueFalseIgnoresEnter(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("Enter alone should not submit a true/false answer")
	}
	if s.phase != phasePresenting {
		t.Errorf("phase = %d, want presenting", s.phase)
	}
}

func TestQuizScreen_StaleReplyDiscarded(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	// A reply for a different question index arrives while presenting.
	var scr screen.Screen = s
	scr, _ = scr.Update(answerEvaluatedMsg{Index: 5, Result: quiz.QuestionResult{Score: 100}})
	ss := scr.(*QuizScreen)

	if len(ss.results) != 0 {
		t.Error("stale reply should not be recorded")
	}
	if ss.phase != phasePresenting {
		t.Errorf("phase = %d, want presenting", ss.phase)
	}
}

func TestQuizScreen_EvaluationErrorAllowsResubmit(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('t'))
	ss := scr.(*QuizScreen)

	scr, _ = ss.Update(answerEvaluatedMsg{Index: 0, Err: errors.New("judge offline")})
	ss = scr.(*QuizScreen)

	if ss.phase != phasePresenting {
		t.Fatalf("phase = %d, want presenting after a failed evaluation", ss.phase)
	}
	if !strings.Contains(ss.errMsg, "judge offline") {
		t.Errorf("errMsg = %q", ss.errMsg)
	}
	if len(ss.results) != 0 {
		t.Error("a failed evaluation must not record a result")
	}

	// The same question accepts a new submission.
	_, cmd := ss.Update(keyPress('t'))
	if cmd == nil {
		t.Error("expected resubmission to start a new evaluation")
	}
}

func TestQuizScreen_NoDoubleSubmitWhileEvaluating(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('t'))
	ss := scr.(*QuizScreen)

	_, cmd := ss.Update(keyPress('t'))
	if cmd != nil {
		t.Error("input during evaluation should be ignored")
	}
}

func TestQuizScreen_MCQSingleSubmit(t *testing.T) {
	q := testQuiz()
	q.Questions = q.Questions[1:] // MCQ only
	s := New(q, nil, "English", 0)

	// Move to the wrong option and submit.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected an evaluation command")
	}

	msg := cmd().(answerEvaluatedMsg)
	scr, _ = ss.Update(msg)
	ss = scr.(*QuizScreen)

	if ss.results[0].Score != 0 {
		t.Errorf("Score = %d, want 0 for Lyon", ss.results[0].Score)
	}
	if ss.results[0].Status != quiz.StatusFailed {
		t.Errorf("Status = %q", ss.results[0].Status)
	}
}

func TestQuizScreen_FreeTextUsesJudge(t *testing.T) {
	q := &quiz.Quiz{
		Title:   "Essay",
		Scoring: quiz.DefaultScoring(),
		Questions: []quiz.Question{
			quiz.FreeTextQuestion{
				Base:   quiz.Base{Text: "Why is the sky blue?", Wt: 1},
				Answer: "Rayleigh scattering.",
			},
		},
	}
	mock := judge.NewMockJudge(judge.MockResponse{
		Verdict: &judge.Verdict{Score: 90, Explanation: "Good.", ExpectedAnswer: "Rayleigh scattering."},
	})
	s := New(q, mock, "English", 0)
	s.input.Model.SetValue("light scatters")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected an evaluation command")
	}

	msg := cmd().(answerEvaluatedMsg)
	scr, _ = ss.Update(msg)
	ss = scr.(*QuizScreen)

	if ss.results[0].Score != 90 {
		t.Errorf("Score = %d, want the judge's 90", ss.results[0].Score)
	}
	if mock.CallCount() != 1 {
		t.Errorf("judge calls = %d, want 1", mock.CallCount())
	}
}

func TestQuizScreen_FreeTextEmptySubmitIgnored(t *testing.T) {
	q := &quiz.Quiz{
		Title:   "Essay",
		Scoring: quiz.DefaultScoring(),
		Questions: []quiz.Question{
			quiz.FreeTextQuestion{Base: quiz.Base{Text: "Explain.", Wt: 1}, Answer: "x"},
		},
	}
	s := New(q, judge.NewMockJudge(), "English", 0)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("an empty answer should not be submitted")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*QuizScreen)
	if !ss.showingQuitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	// N keeps the quiz running.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*QuizScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	// Esc then Y abandons the quiz.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*QuizScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop back to the picker")
	}
}

func TestQuizScreen_FinishHandsOffToSummary(t *testing.T) {
	q := testQuiz()
	q.Questions = q.Questions[:1] // single question
	s := New(q, nil, "English", 0)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('t'))
	ss := scr.(*QuizScreen)
	scr, _ = ss.Update(cmd().(answerEvaluatedMsg))
	ss = scr.(*QuizScreen)

	// Dismissing the last result finishes the quiz.
	scr, cmd = ss.Update(keyPress(' '))
	ss = scr.(*QuizScreen)
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	if _, ok := cmd().(quizFinishedMsg); !ok {
		t.Fatal("expected quizFinishedMsg")
	}

	_, cmd = ss.Update(quizFinishedMsg{})
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen is %T, want the summary", replace.Screen)
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := New(testQuiz(), nil, "English", 0)

	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected non-empty key hints")
	}

	// Multi-select MCQ advertises the Space toggle.
	multi := &quiz.Quiz{
		Title:   "m",
		Scoring: quiz.DefaultScoring(),
		Questions: []quiz.Question{
			quiz.MCQQuestion{
				Base:     quiz.Base{Text: "Pick.", Wt: 1},
				Options:  []string{"a", "b", "c"},
				Answer:   []string{"a", "b"},
				Multiple: true,
			},
		},
	}
	ms := New(multi, nil, "English", 0)
	found := false
	for _, h := range ms.KeyHints() {
		if h.Key == "Space" {
			found = true
		}
	}
	if !found {
		t.Error("expected a Space hint for multi-select")
	}
}
