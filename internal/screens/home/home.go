package home

import (
	"fmt"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dverney/quizine/internal/finder"
	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/quiz"
	"github.com/dverney/quizine/internal/router"
	"github.com/dverney/quizine/internal/screen"
	quizscreen "github.com/dverney/quizine/internal/screens/session"
	"github.com/dverney/quizine/internal/ui/components"
	"github.com/dverney/quizine/internal/ui/theme"
)

// HomeScreen is the quiz picker: one menu entry per discovered quiz.
type HomeScreen struct {
	menu     components.Menu
	entries  []finder.Entry
	problems []error
	judge    judge.Judge
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the picker over the discovered quizzes. The judge may be nil;
// quizzes with free-text questions are then disabled.
func New(entries []finder.Entry, problems []error, j judge.Judge, language string, timeout time.Duration) *HomeScreen {
	items := make([]components.MenuItem, 0, len(entries)+1)

	for _, e := range entries {
		entry := e
		disabled := j == nil && needsJudge(entry)

		detail := fmt.Sprintf("%s, %d questions", baseName(entry.Path), len(entry.Quiz.Questions))
		if disabled {
			detail += "  (needs a judge)"
		}

		items = append(items, components.MenuItem{
			Label:    entry.Quiz.Title,
			Detail:   detail,
			Disabled: disabled,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(entry.Quiz, j, language, timeout),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:     components.NewMenu(items),
		entries:  entries,
		problems: problems,
		judge:    j,
	}
}

// needsJudge reports whether the quiz contains a free-text question.
func needsJudge(e finder.Entry) bool {
	for _, q := range e.Quiz.Questions {
		if q.Kind() == quiz.KindFreeText {
			return true
		}
	}
	return false
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b string

	b += lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("\nPick a quiz") + "\n\n"

	if len(h.entries) == 0 {
		b += lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No quizzes found. Point quizine at a folder with .md or .yaml quiz files.") + "\n\n"
	}

	b += lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	if len(h.problems) > 0 {
		b += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(fmt.Sprintf("%d file(s) failed to parse:", len(h.problems))) + "\n"
		for i, p := range h.problems {
			if i >= 3 {
				b += lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.TextDim).
					Render("...") + "\n"
				break
			}
			b += lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(shorten(p.Error(), width-8)) + "\n"
		}
	}

	return b
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func shorten(s string, max int) string {
	if max > 3 && len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// baseName trims a quiz path for display.
func baseName(path string) string {
	return filepath.Base(path)
}
