package session

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dverney/quizine/internal/eval"
	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/router"
	"github.com/dverney/quizine/internal/screen"
	"github.com/dverney/quizine/internal/screens/summary"
	"github.com/dverney/quizine/internal/ui/components"
	"github.com/dverney/quizine/internal/ui/layout"
)

// phase tracks where the run is in its lifecycle. Evaluation is a distinct
// phase so a submission in flight blocks further input.
type phase int

const (
	phasePresenting phase = iota
	phaseEvaluating
	phaseShowingResult
	phaseFinished
)

// QuizScreen runs a single quiz: presents questions in order, evaluates
// each answer, shows the per-question result, then hands off to the
// summary screen.
type QuizScreen struct {
	quiz     *quiz.Quiz
	judge    judge.Judge
	language string
	timeout  time.Duration

	index   int
	phase   phase
	results []quiz.QuestionResult
	errMsg  string

	input  components.TextInput
	choice components.MultiChoice
	slider components.Slider

	showingQuitConfirm bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. The judge may be nil when the quiz has no
// free-text questions.
func New(q *quiz.Quiz, j judge.Judge, language string, timeout time.Duration) *QuizScreen {
	s := &QuizScreen{
		quiz:     q,
		judge:    j,
		language: language,
		timeout:  timeout,
		results:  make([]quiz.QuestionResult, 0, len(q.Questions)),
	}
	s.setupInput()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.inputInit()
}

func (s *QuizScreen) Title() string {
	return s.quiz.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseEvaluating:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit"},
		}
	case phaseShowingResult:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}

	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if q, ok := s.current().(quiz.MCQQuestion); ok && q.Multiple {
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle"}}, hints...)
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerEvaluatedMsg:
		return s.handleEvaluated(msg)

	case quizFinishedMsg:
		return s.handleFinished()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phasePresenting && !s.showingQuitConfirm {
		return s, s.updateInput(msg)
	}

	return s, nil
}

// current returns the question being presented, or nil past the end.
func (s *QuizScreen) current() quiz.Question {
	if s.index < 0 || s.index >= len(s.quiz.Questions) {
		return nil
	}
	return s.quiz.Questions[s.index]
}

// setupInput resets the input widget for the current question.
func (s *QuizScreen) setupInput() {
	switch q := s.current().(type) {
	case quiz.FreeTextQuestion:
		s.input = components.NewTextInput("Type your answer...", 0)
	case quiz.MCQQuestion:
		s.choice = components.NewMultiChoice(q.Options, q.Multiple)
	case quiz.SliderQuestion:
		s.slider = components.NewSlider(q.Min, q.Max, q.Step)
	}
}

// inputInit returns the focus command for the current question's widget.
// Only the free-text input needs one.
func (s *QuizScreen) inputInit() tea.Cmd {
	if _, ok := s.current().(quiz.FreeTextQuestion); ok {
		return s.input.Init()
	}
	return nil
}

func (s *QuizScreen) updateInput(msg tea.Msg) tea.Cmd {
	switch s.current().(type) {
	case quiz.FreeTextQuestion:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	case quiz.MCQQuestion:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return cmd
	case quiz.SliderQuestion:
		var cmd tea.Cmd
		s.slider, cmd = s.slider.Update(msg)
		return cmd
	}
	return nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phasePresenting:
		switch key {
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		case "enter":
			return s.submit()
		}

		// True/false has no widget; y/n and t/f answer directly.
		if _, ok := s.current().(quiz.TrueFalseQuestion); ok {
			switch key {
			case "t", "y":
				return s.submitBool(true)
			case "f", "n":
				return s.submitBool(false)
			}
			return s, nil
		}

		return s, s.updateInput(msg)

	case phaseEvaluating:
		if key == "esc" {
			s.showingQuitConfirm = true
		}
		return s, nil

	case phaseShowingResult:
		return s.advance()
	}

	return s, nil
}

// submit builds the answer for the current question and starts evaluation.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.current()
	if q == nil {
		return s, nil
	}

	var answer quiz.Answer
	switch cq := q.(type) {
	case quiz.FreeTextQuestion:
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return s, nil
		}
		answer = quiz.TextAnswer(text)
	case quiz.MCQQuestion:
		if !s.choice.HasSelection() {
			return s, nil
		}
		answer = quiz.ChoiceAnswer(s.choice.Selected())
	case quiz.SliderQuestion:
		answer = quiz.NumberAnswer(s.slider.Value)
	case quiz.TrueFalseQuestion:
		// Enter alone is ambiguous for true/false; require t/f or y/n.
		_ = cq
		return s, nil
	}

	return s.startEvaluation(q, answer)
}

func (s *QuizScreen) submitBool(v bool) (screen.Screen, tea.Cmd) {
	q := s.current()
	if q == nil {
		return s, nil
	}
	return s.startEvaluation(q, quiz.BoolAnswer(v))
}

func (s *QuizScreen) startEvaluation(q quiz.Question, answer quiz.Answer) (screen.Screen, tea.Cmd) {
	if s.phase == phaseEvaluating {
		return s, nil
	}

	s.phase = phaseEvaluating
	s.errMsg = ""

	index := s.index
	scoring := s.quiz.Scoring
	j := s.judge
	language := s.language
	timeout := s.timeout

	return s, func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		result, err := eval.EvaluateAnswer(ctx, q, answer, scoring, j, language)
		return answerEvaluatedMsg{Index: index, Result: result, Err: err}
	}
}

func (s *QuizScreen) handleEvaluated(msg answerEvaluatedMsg) (screen.Screen, tea.Cmd) {
	if msg.Index != s.index || s.phase != phaseEvaluating {
		return s, nil
	}

	if msg.Err != nil {
		// Evaluation failed (judge unreachable or unusable reply). Return
		// to the question so the answer can be resubmitted.
		s.phase = phasePresenting
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.results = append(s.results, msg.Result)
	s.phase = phaseShowingResult
	return s, nil
}

// advance moves to the next question, or finishes after the last one.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	s.index++
	if s.index >= len(s.quiz.Questions) {
		s.phase = phaseFinished
		return s, func() tea.Msg { return quizFinishedMsg{} }
	}

	s.phase = phasePresenting
	s.errMsg = ""
	s.setupInput()
	return s, s.inputInit()
}

func (s *QuizScreen) handleFinished() (screen.Screen, tea.Cmd) {
	result := quiz.CalculateResult(s.quiz, s.results)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}
