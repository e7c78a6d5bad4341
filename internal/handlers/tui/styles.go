package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/navadeep2604/Reflex-Rush/internal/display"
	"github.com/navadeep2604/Reflex-Rush/internal/models"
)

var (
	// screenStyle frames the character grid the way the original
	// board's display did
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(display.GridCols + 2).
			Height(display.GridRows)

	titleStyle = lipgloss.NewStyle().Bold(true)

	menuStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	helpStyle = lipgloss.NewStyle().Faint(true)

	redStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	yellowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	greenStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func phaseStyle(phase models.Phase) lipgloss.Style {
	switch phase {
	case models.PhaseRed:
		return redStyle
	case models.PhaseYellow:
		return yellowStyle
	case models.PhaseGreen:
		return greenStyle
	default:
		return menuStyle
	}
}
