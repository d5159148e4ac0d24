package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the start page for visitors without a session.
type MenuModel struct {
	env    *env
	items  []menuItem
	idx    int
	status string
}

func NewMenuModel(e *env) *MenuModel {
	return &MenuModel{
		env: e,
		items: []menuItem{
			{title: "Log in", page: pageLogin},
			{title: "Sign up", page: pageRegister},
			{title: "Settings", page: pageSettings},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	m.status = ""
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(noticeMsg); ok {
		m.status = notice.text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		page := m.items[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	case key.Matches(keyMsg, keys.quit):
		return m, func() tea.Msg { return quitMsg{} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	st := m.env.styles()

	var b strings.Builder
	for i, item := range m.items {
		cursor := " "
		title := item.title
		if i == m.idx {
			cursor = st.cursor.Render(">")
			title = st.cursor.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %d  %s\n", cursor, i+1, title))
	}
	b.WriteString(renderStatus(st, "", m.status))

	return renderPage(st, "GARDEN DASHBOARD", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
