package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dverney/quizine/internal/ui/theme"
)

// MultiChoice is an option selector. In single mode Enter picks the option
// under the cursor; in multiple mode Space toggles checkmarks and Enter
// submits the checked set.
type MultiChoice struct {
	Options  []string
	Multiple bool
	Cursor   int
	checked  map[int]bool
}

// NewMultiChoice creates a selector over the given options.
func NewMultiChoice(options []string, multiple bool) MultiChoice {
	return MultiChoice{
		Options:  options,
		Multiple: multiple,
		checked:  make(map[int]bool),
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling. Enter is left to the
// caller so it can decide when a submission is valid.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		if m.Multiple {
			m.checked[m.Cursor] = !m.checked[m.Cursor]
		}
	}

	return m, nil
}

// Selected returns the chosen options: the checked set in multiple mode,
// the option under the cursor otherwise.
func (m MultiChoice) Selected() []string {
	if !m.Multiple {
		if m.Cursor >= 0 && m.Cursor < len(m.Options) {
			return []string{m.Options[m.Cursor]}
		}
		return nil
	}

	var out []string
	for i, opt := range m.Options {
		if m.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// HasSelection reports whether a submission would be non-empty.
func (m MultiChoice) HasSelection() bool {
	if !m.Multiple {
		return len(m.Options) > 0
	}
	for _, on := range m.checked {
		if on {
			return true
		}
	}
	return false
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		var line string
		if m.Multiple {
			mark := "[ ]"
			if m.checked[i] {
				mark = "[x]"
			}
			line = fmt.Sprintf("%s%s %s", prefix, mark, opt)
		} else {
			line = fmt.Sprintf("%s%s", prefix, opt)
		}

		if i == m.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if m.Multiple && m.checked[i] {
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
