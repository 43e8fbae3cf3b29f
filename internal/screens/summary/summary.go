package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/router"
	"github.com/dverney/quizine/internal/screen"
	"github.com/dverney/quizine/internal/ui/layout"
	"github.com/dverney/quizine/internal/ui/theme"
)

// SummaryScreen displays the final quiz result.
type SummaryScreen struct {
	result *quiz.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *quiz.Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			// The quiz screen was replaced by this one, so a single pop
			// returns to the picker.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	headline, style := statusLine(r.Status)
	b.WriteString(style.
		Width(width).
		Align(lipgloss.Center).
		Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Total score: %.1f / 100", r.TotalScore)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%.0f of %.0f weighted points", r.RawScore, r.MaxScore)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, qr := range r.QuestionResults {
		mark, markStyle := statusMark(qr.Status)

		prompt := qr.Question.Prompt()
		maxPrompt := min(width-30, 50)
		if maxPrompt > 3 && len(prompt) > maxPrompt {
			prompt = prompt[:maxPrompt-3] + "..."
		}

		line := fmt.Sprintf("  %s  %2d. %s    %d/100",
			markStyle.Render(mark), i+1, prompt, qr.Score)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func statusLine(s quiz.Status) (string, lipgloss.Style) {
	switch s {
	case quiz.StatusPassed:
		return "Quiz passed!", theme.Passed
	case quiz.StatusImprecise:
		return "Almost there", theme.Imprecise
	default:
		return "Quiz failed", theme.Failed
	}
}

func statusMark(s quiz.Status) (string, lipgloss.Style) {
	switch s {
	case quiz.StatusPassed:
		return "✓", theme.Passed
	case quiz.StatusImprecise:
		return "~", theme.Imprecise
	default:
		return "✗", theme.Failed
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
