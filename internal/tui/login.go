// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/models"
)

// LoginModel is the Bubble Tea model for the login screen. On submit it
// validates the form, calls AccountManager.Authenticate in a command and
// opens the dashboard on success.
type LoginModel struct {
	env *env
	form
}

func NewLoginModel(e *env) *LoginModel {
	return &LoginModel{
		env: e,
		form: newForm(
			fieldSpec{label: "Email", placeholder: "you@example.com"},
			fieldSpec{label: "Password", placeholder: "password", secret: true},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// Update handles:
//   - authResultMsg: opens the dashboard, or shows the error.
//   - esc: back to the menu.
//   - enter: validates and dispatches the login command.
//
// Everything else goes to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		if result.err != nil {
			m.fail(result.err)
			return m, nil
		}
		m.reset()
		return m, navigateWithNotice(pageDashboard, "Welcome back, "+result.account.Name)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.handle(msg)
}

func (m *LoginModel) View() string {
	return renderPage(m.env.styles(), "LOG IN", m.view(m.env.styles(), "Log in"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	creds := models.Credentials{Email: m.value(0), Password: m.value(1)}
	if err := m.env.validator.Validate(m.env.ctx, creds); err != nil {
		m.fail(err)
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, accounts := m.env.ctx, m.env.accounts
	return func() tea.Msg {
		account, err := accounts.Authenticate(ctx, creds.Email, creds.Password)
		return authResultMsg{account: account, err: err}
	}
}

func navigateWithNotice(page, text string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: noticeMsg{text: text}}
	}
}
