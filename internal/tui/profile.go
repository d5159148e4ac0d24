package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/internal/app"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// ProfileModel edits the logged-in account. Only the fields that differ
// from the current values are sent.
type ProfileModel struct {
	env *env
	form

	original models.Account
}

func NewProfileModel(e *env) *ProfileModel {
	return &ProfileModel{
		env: e,
		form: newForm(
			fieldSpec{label: "Name"},
			fieldSpec{label: "Email"},
			fieldSpec{label: "Phone", limit: 32},
			fieldSpec{label: "Photo URL", limit: 2048},
		),
	}
}

// Init fills the form from the current account.
func (m *ProfileModel) Init() tea.Cmd {
	m.reset()

	m.original, _ = m.env.accounts.Current()
	m.setValue(0, m.original.Name)
	m.setValue(1, m.original.Email)
	m.setValue(2, m.original.Phone)
	m.setValue(3, m.original.PhotoURL)

	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(profileSavedMsg); ok {
		return m, m.saved(result)
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

func (m *ProfileModel) View() string {
	return renderPage(m.env.styles(), "EDIT PROFILE", m.view(m.env.styles(), "Save"), "esc: back │ tab: next field │ enter: save")
}

// patch holds the fields whose trimmed value changed.
func (m *ProfileModel) patch() models.ProfileUpdate {
	var patch models.ProfileUpdate

	changed := func(v, old string) *string {
		v = strings.TrimSpace(v)
		if v == old {
			return nil
		}
		return &v
	}

	patch.Name = changed(m.value(0), m.original.Name)
	if email := models.NormalizeEmail(m.value(1)); email != m.original.Email {
		patch.Email = &email
	}
	patch.Phone = changed(m.value(2), m.original.Phone)
	patch.PhotoURL = changed(m.value(3), m.original.PhotoURL)

	return patch
}

func (m *ProfileModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	patch := m.patch()
	if err := m.env.validator.Validate(m.env.ctx, patch); err != nil {
		m.fail(err)
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, accounts := m.env.ctx, m.env.accounts
	return func() tea.Msg {
		account, updated, err := accounts.UpdateProfile(ctx, patch)
		return profileSavedMsg{account: account, updated: updated, err: err}
	}
}

func (m *ProfileModel) saved(result profileSavedMsg) tea.Cmd {
	switch {
	case errors.Is(result.err, service.ErrPartialUpdate):
		m.reset()
		return func() tea.Msg {
			return NavigateTo{Page: pageDashboard, Payload: noticeMsg{text: app.MsgPartialUpdate, warning: true}}
		}
	case result.err != nil:
		m.fail(result.err)
		return nil
	case !result.updated:
		m.reset()
		return navigateWithNotice(pageMenu, app.MsgNoActiveSession)
	}

	m.reset()
	return navigateWithNotice(pageDashboard, "Profile saved")
}
