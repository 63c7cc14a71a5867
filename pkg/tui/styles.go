package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kpscli/kps/pkg/problem"
)

var (
	accent    = lipgloss.Color("#7D56F4")
	muted     = lipgloss.Color("#626262")
	faint     = lipgloss.Color("#404040")
	highlight = lipgloss.Color("#2D3B4D")
	bright    = lipgloss.Color("#FFFFFF")
	warn      = lipgloss.Color("#E5C07B")
	link      = lipgloss.Color("#56B6C2")
)

// platformColors tints each platform's section header.
var platformColors = map[problem.Platform]lipgloss.Color{
	problem.BOJ:         lipgloss.Color("#4285F4"),
	problem.Programmers: lipgloss.Color("#25A065"),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	dividerStyle = lipgloss.NewStyle().Foreground(faint)
	statusStyle  = lipgloss.NewStyle().Foreground(warn)
	emptyStyle   = lipgloss.NewStyle().Foreground(muted).Italic(true)

	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(bright).Background(highlight)
	rowStyle    = lipgloss.NewStyle()

	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(link)
	previewStyle      = lipgloss.NewStyle().Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(platformColors[problem.BOJ]).Width(16)
	helpDescStyle = lipgloss.NewStyle().Foreground(bright)
)

func sectionStyle(p problem.Platform) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(platformColors[p])
}

const (
	markerCursor = "▸"
	markerRow    = "·"
)
