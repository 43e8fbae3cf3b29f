package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/ui/components"
	"github.com/dverney/quizine/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.phase {
	case phaseEvaluating:
		return s.renderEvaluating(width)
	case phaseShowingResult:
		return s.renderResult(width)
	case phaseFinished:
		return ""
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the current question and its input widget.
func (s *QuizScreen) renderQuestion(width int) string {
	q := s.current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Progress line.
	progress := components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", s.index+1, len(s.quiz.Questions)),
		float64(s.index)/float64(len(s.quiz.Questions)),
		false,
		min(width-4, 60),
	)
	b.WriteString(progress.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Prompt()))
	b.WriteString("\n\n")

	// Input area per question kind.
	switch cq := q.(type) {
	case quiz.FreeTextQuestion:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)

	case quiz.MCQQuestion:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
		if cq.Multiple {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Space toggles, Enter submits"))
		}

	case quiz.SliderQuestion:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.slider.View()))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("←/→ adjust, Shift for bigger steps, Enter submits"))

	case quiz.TrueFalseQuestion:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("[T] True        [F] False"))
	}

	// Evaluation error from the previous submission.
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Evaluation failed: " + s.errMsg))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to try again."))
	}

	return b.String()
}

// renderEvaluating renders the waiting state while the judge is thinking.
func (s *QuizScreen) renderEvaluating(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Evaluating your answer...")
}

// renderResult renders the outcome of the question just answered.
func (s *QuizScreen) renderResult(width int) string {
	if len(s.results) == 0 {
		return ""
	}
	r := s.results[len(s.results)-1]

	var b strings.Builder
	b.WriteString("\n\n")

	var headline string
	var style lipgloss.Style
	switch r.Status {
	case quiz.StatusPassed:
		headline = fmt.Sprintf("Passed  —  %d/100", r.Score)
		style = theme.Passed
	case quiz.StatusImprecise:
		headline = fmt.Sprintf("Close  —  %d/100", r.Score)
		style = theme.Imprecise
	default:
		headline = fmt.Sprintf("Failed  —  %d/100", r.Score)
		style = theme.Failed
	}

	b.WriteString(style.
		Width(width).
		Align(lipgloss.Center).
		Render(headline))
	b.WriteString("\n\n")

	if r.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(r.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	if r.ExpectedAnswer != "" && r.Status != quiz.StatusPassed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Expected: " + r.ExpectedAnswer))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
