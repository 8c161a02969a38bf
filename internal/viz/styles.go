package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from a theme.
type Styles struct {
	Panel   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	KeyHint lipgloss.Style
	Done    lipgloss.Style
	Failed  lipgloss.Style
	BarHigh lipgloss.Style
	BarMid  lipgloss.Style
	BarLow  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		Value:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtle:  lipgloss.NewStyle().Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Done:    lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Failed:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		BarHigh: lipgloss.NewStyle().Foreground(t.Success),
		BarMid:  lipgloss.NewStyle().Foreground(t.Warning),
		BarLow:  lipgloss.NewStyle().Foreground(t.Primary),
	}
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// ProgressBar renders percent in [0, 1] as a bar of the given width.
func (s Styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if percent > 0.8 {
		return s.BarHigh.Render(bar)
	} else if percent > 0.4 {
		return s.BarMid.Render(bar)
	}
	return s.BarLow.Render(bar)
}

// Row renders a label/value line.
func (s Styles) Row(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}

func (s Styles) Separator(width int) string {
	return s.Subtle.Render(strings.Repeat("─", width))
}

