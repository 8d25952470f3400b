package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/tasktrack/internal/domain"
)

var (
	// Priority colors
	CriticalColor = lipgloss.Color("#ff4444") // Red
	HighColor     = lipgloss.Color("#ff8800") // Orange
	MediumColor   = lipgloss.Color("#ffbb33") // Amber
	LowColor      = lipgloss.Color("#00C851") // Green
	VeryLowColor  = lipgloss.Color("#33b5e5") // Blue

	MutedColor   = lipgloss.Color("#9CA3AF")
	TitleColor   = lipgloss.Color("#A78BFA")
	SuccessColor = lipgloss.Color("#10B981")
	ErrorColor   = lipgloss.Color("#F87171")

	priorityColors = map[domain.Priority]lipgloss.Color{
		domain.PriorityCritical: CriticalColor,
		domain.PriorityHigh:     HighColor,
		domain.PriorityMedium:   MediumColor,
		domain.PriorityLow:      LowColor,
		domain.PriorityVeryLow:  VeryLowColor,
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(TitleColor)
	badgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)

	mutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)
	doneStyle    = lipgloss.NewStyle().Foreground(MutedColor).Strikethrough(true)
	successStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	errorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	metricStyle  = lipgloss.NewStyle().Bold(true)
	boardStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

// PriorityColor returns the badge color for p, or MutedColor for an unknown priority.
func PriorityColor(p domain.Priority) lipgloss.Color {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return MutedColor
}
