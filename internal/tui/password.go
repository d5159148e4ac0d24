package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// PasswordModel changes the password of the logged-in account.
type PasswordModel struct {
	env *env
	form
}

func NewPasswordModel(e *env) *PasswordModel {
	return &PasswordModel{
		env: e,
		form: newForm(
			fieldSpec{label: "Current password", secret: true},
			fieldSpec{label: "New password", placeholder: "at least 6 characters", secret: true},
			fieldSpec{label: "Confirm password", secret: true},
		),
	}
}

func (m *PasswordModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(passwordChangedMsg); ok {
		switch {
		case errors.Is(result.err, service.ErrNoActiveSession):
			m.reset()
			return m, navigateWithNotice(pageMenu, humanizeError(result.err))
		case result.err != nil:
			m.fail(result.err)
			return m, nil
		}
		m.reset()
		return m, navigateWithNotice(pageDashboard, "Password changed")
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.handle(msg)
}

func (m *PasswordModel) View() string {
	return renderPage(m.env.styles(), "CHANGE PASSWORD", m.view(m.env.styles(), "Change password"), "esc: back │ tab: next field │ enter: save")
}

func (m *PasswordModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	change := models.PasswordChange{
		CurrentPassword: m.value(0),
		NewPassword:     m.value(1),
		ConfirmPassword: m.value(2),
	}
	if err := m.env.validator.Validate(m.env.ctx, change); err != nil {
		m.fail(err)
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, accounts := m.env.ctx, m.env.accounts
	return func() tea.Msg {
		err := accounts.ChangePassword(ctx, change.CurrentPassword, change.NewPassword, change.ConfirmPassword)
		return passwordChangedMsg{err: err}
	}
}
