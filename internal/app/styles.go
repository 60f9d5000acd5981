package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/photo-settings/internal/exposure"
)

var (
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cardsPane     = paneStyle.Copy().BorderForeground(lipgloss.Color("62"))
	helpPane      = paneStyle.Copy().BorderForeground(lipgloss.Color("204"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	filterStatus  = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	valueLabel    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	cardsHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	helpHeader    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("204"))
	badgeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
)

// Stop strip styles, one per segment label.
var (
	stopActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("33"))
	stopPast   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	stopNone   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Progress bar fill colours.
const (
	apertureBarColor = "#5A9BD5"
	isoBarColor      = "#E8A33D"
)

func segmentStyle(seg exposure.Segment) lipgloss.Style {
	switch seg {
	case exposure.SegmentActive:
		return stopActive
	case exposure.SegmentPast:
		return stopPast
	default:
		return stopNone
	}
}

func applyFilterTheme(input *textinput.Model) {
	input.Prompt = "/ "
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	input.PlaceholderStyle = mutedStyle
}
