package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/models"
)

// RegisterModel is the sign up screen. A successful registration logs the
// new account in and opens the dashboard.
type RegisterModel struct {
	env *env
	form
}

func NewRegisterModel(e *env) *RegisterModel {
	return &RegisterModel{
		env: e,
		form: newForm(
			fieldSpec{label: "Name", placeholder: "Ann"},
			fieldSpec{label: "Email", placeholder: "you@example.com"},
			fieldSpec{label: "Password", placeholder: "at least 6 characters", secret: true},
			fieldSpec{label: "Confirm password", placeholder: "repeat password", secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		if result.err != nil {
			m.fail(result.err)
			return m, nil
		}
		m.reset()
		return m, navigateWithNotice(pageDashboard, "Account created, welcome "+result.account.Name)
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

func (m *RegisterModel) View() string {
	return renderPage(m.env.styles(), "SIGN UP", m.view(m.env.styles(), "Create account"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	reg := models.Registration{
		Name:            m.value(0),
		Email:           m.value(1),
		Password:        m.value(2),
		ConfirmPassword: m.value(3),
	}
	if err := m.env.validator.Validate(m.env.ctx, reg); err != nil {
		m.fail(err)
		return nil
	}
	// the form always asks for the confirmation
	if reg.ConfirmPassword == "" {
		m.fail(errConfirmRequired)
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, accounts := m.env.ctx, m.env.accounts
	return func() tea.Msg {
		account, err := accounts.Register(ctx, reg.Name, reg.Email, reg.Password)
		return authResultMsg{account: account, err: err}
	}
}
