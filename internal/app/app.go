package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dverney/quizine/internal/finder"
	"github.com/dverney/quizine/internal/judge"
	"github.com/dverney/quizine/internal/router"
	"github.com/dverney/quizine/internal/screen"
	"github.com/dverney/quizine/internal/screens/home"
	"github.com/dverney/quizine/internal/ui/layout"
)

// Deps carries everything the TUI needs, built by the command layer.
type Deps struct {
	Entries  []finder.Entry
	Problems []error
	Judge    judge.Judge
	Language string
	Timeout  time.Duration
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	judgeName string
	width     int
	height    int
}

// newAppModel creates a new AppModel with the picker screen.
func newAppModel(deps Deps) AppModel {
	picker := home.New(deps.Entries, deps.Problems, deps.Judge, deps.Language, deps.Timeout)

	judgeName := ""
	if deps.Judge != nil {
		judgeName = deps.Judge.Name()
	}

	return AppModel{
		router:    router.New(picker),
		judgeName: judgeName,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.judgeName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
