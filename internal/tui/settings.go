package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/models"
)

var themeChoices = []models.Theme{models.ThemeLight, models.ThemeDark, models.ThemeSystem}

// SettingsModel picks the appearance preference.
type SettingsModel struct {
	env    *env
	idx    int
	errMsg string
	notice string
}

func NewSettingsModel(e *env) *SettingsModel {
	return &SettingsModel{env: e}
}

// Init puts the cursor on the stored preference.
func (m *SettingsModel) Init() tea.Cmd {
	m.errMsg, m.notice = "", ""
	current := m.env.theme.Theme()
	for i, t := range themeChoices {
		if t == current {
			m.idx = i
		}
	}
	return nil
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case themeChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = "Theme set to " + string(msg.theme)
		for i, t := range themeChoices {
			if t == msg.theme {
				m.idx = i
			}
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(themeChoices)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			return m, m.setTheme(themeChoices[m.idx])
		case key.Matches(msg, keys.theme):
			return m, toggleTheme(m.env)
		case key.Matches(msg, keys.esc):
			page := pageMenu
			if _, ok := m.env.accounts.Current(); ok {
				page = pageDashboard
			}
			return m, func() tea.Msg { return NavigateTo{Page: page} }
		}
	}

	return m, nil
}

func (m *SettingsModel) View() string {
	st := m.env.styles()
	current := m.env.theme.Theme()

	var b strings.Builder
	for i, t := range themeChoices {
		cursor := " "
		if i == m.idx {
			cursor = st.cursor.Render(">")
		}
		mark := "( )"
		if t == current {
			mark = "(*)"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, mark, t))
	}
	b.WriteString(fmt.Sprintf("\nResolved scheme: %s", schemeName(m.env.theme.IsDark())))
	b.WriteString(renderStatus(st, m.errMsg, m.notice))

	return renderPage(st, "SETTINGS", b.String(), "enter: apply │ t: toggle │ ↑/↓: navigate │ esc: back")
}

func (m *SettingsModel) setTheme(theme models.Theme) tea.Cmd {
	ctx, themes := m.env.ctx, m.env.theme
	return func() tea.Msg {
		return themeChangedMsg{theme: theme, err: themes.SetTheme(ctx, theme)}
	}
}
