package tui

import "github.com/MKhiriev/go-garden-keeper/models"

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// noticeMsg is a one-line status shown by the receiving page. Warnings are
// rendered as errors.
type noticeMsg struct {
	text    string
	warning bool
}

type sessionReadyMsg struct {
	err error
}

type authResultMsg struct {
	account models.Account
	err     error
}

type profileSavedMsg struct {
	account models.Account
	updated bool
	err     error
}

type passwordChangedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}

type readingsMsg struct {
	timeRange models.TimeRange
	report    models.ReadingsReport
	err       error
}

type copiedMsg struct {
	err error
}

type quitMsg struct{}
