package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// styles is the palette of one theme.
type styles struct {
	dark    bool
	title   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	ok      lipgloss.Style
	label   lipgloss.Style
	cursor  lipgloss.Style
	overlay lipgloss.Style
	panel   lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("#2E7D32")
	text := lipgloss.Color("#1B1B1B")
	faint := lipgloss.Color("#6B6B6B")
	danger := lipgloss.Color("#C62828")
	if dark {
		accent = lipgloss.Color("#81C784")
		text = lipgloss.Color("#EDEDED")
		faint = lipgloss.Color("#9E9E9E")
		danger = lipgloss.Color("#EF9A9A")
	}

	return styles{
		dark:    dark,
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:    lipgloss.NewStyle().Faint(true).Foreground(faint),
		err:     lipgloss.NewStyle().Bold(true).Foreground(danger),
		ok:      lipgloss.NewStyle().Foreground(accent),
		label:   lipgloss.NewStyle().Foreground(text),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		overlay: overlayBoxStyle.BorderForeground(accent),
		panel:   panelStyle.BorderForeground(faint),
	}
}
