package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Page names used with NavigateTo.
const (
	pageLoading   = "loading"
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pageProfile   = "profile"
	pagePassword  = "password"
	pageSettings  = "settings"
)

// RootModel is a TUI router:
// 1) waits for the persisted session before showing anything
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	env *env

	pages   map[string]tea.Model
	current string

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel registers all pages and opens the loading page.
func NewRootModel(e *env) RootModel {
	return RootModel{
		env: e,
		pages: map[string]tea.Model{
			pageMenu:      NewMenuModel(e),
			pageLogin:     NewLoginModel(e),
			pageRegister:  NewRegisterModel(e),
			pageDashboard: NewDashboardModel(e),
			pageProfile:   NewProfileModel(e),
			pagePassword:  NewPasswordModel(e),
			pageSettings:  NewSettingsModel(e),
		},
		current: pageLoading,
	}
}

// Init starts the session load and waits for it in a command.
func (r RootModel) Init() tea.Cmd {
	accounts := r.env.accounts
	ctx := r.env.ctx

	r.env.theme.Init(ctx)
	accounts.Init(ctx)

	return func() tea.Msg {
		return sessionReadyMsg{err: accounts.WaitReady(ctx)}
	}
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo || r.current == pageLoading {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case sessionReadyMsg:
		if m.err != nil {
			r.env.logger.Err(m.err).Msg("waiting for session failed")
		}
		return r.navigate(NavigateTo{Page: r.homePage()})
	case NavigateTo:
		return r.navigate(m)
	case quitMsg:
		return r, tea.Quit
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	next, cmd := page.Update(msg)
	r.pages[r.current] = next
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.env.styles(), r.env.build)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return renderPage(r.env.styles(), "GARDEN DASHBOARD", "Loading your garden...", "")
	}
	return page.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	page, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	cmds := []tea.Cmd{page.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// homePage is the dashboard when someone is logged in, the menu otherwise.
func (r RootModel) homePage() string {
	if _, ok := r.env.accounts.Current(); ok {
		return pageDashboard
	}
	return pageMenu
}
