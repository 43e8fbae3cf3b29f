package components

import (
	"math"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dverney/quizine/internal/ui/theme"
)

// Slider is a horizontal numeric picker bounded to [Min, Max], moving in
// Step increments.
type Slider struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
	Width int
}

// NewSlider creates a slider starting at the midpoint, snapped to the step
// grid.
func NewSlider(min, max, step float64) Slider {
	s := Slider{
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 40,
	}
	s.Value = s.snap((min + max) / 2)
	return s
}

// Init returns nil.
func (s Slider) Init() tea.Cmd {
	return nil
}

// Update handles arrow keys. Shift-steps move by ten increments.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value = s.clamp(s.Value - s.Step)
	case "right", "l":
		s.Value = s.clamp(s.Value + s.Step)
	case "shift+left", "H":
		s.Value = s.clamp(s.Value - 10*s.Step)
	case "shift+right", "L":
		s.Value = s.clamp(s.Value + 10*s.Step)
	case "home":
		s.Value = s.Min
	case "end":
		s.Value = s.Max
	}

	return s, nil
}

// View renders the track, handle and current value.
func (s Slider) View() string {
	width := s.Width
	if width < 10 {
		width = 10
	}

	frac := 0.0
	if s.Max > s.Min {
		frac = (s.Value - s.Min) / (s.Max - s.Min)
	}
	pos := int(math.Round(frac * float64(width-1)))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(formatFloat(s.Min)))
	b.WriteString(" ")
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●"))
		} else if i < pos {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("─"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("─"))
		}
	}
	b.WriteString(" ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(formatFloat(s.Max)))

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Value: " + formatFloat(s.Value)))

	return b.String()
}

// snap rounds v to the nearest step from Min, then clamps.
func (s Slider) snap(v float64) float64 {
	if s.Step > 0 {
		steps := math.Round((v - s.Min) / s.Step)
		v = s.Min + steps*s.Step
	}
	return s.clamp(v)
}

func (s Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
