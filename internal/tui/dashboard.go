package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-garden-keeper/models"
)

// DashboardModel shows the logged-in account, the active theme and the
// garden readings of the selected period.
type DashboardModel struct {
	env *env

	notice  string
	warning bool

	// timeRange survives page switches; report is nil until it loads.
	timeRange   models.TimeRange
	report      *models.ReadingsReport
	readingsErr string

	confirmLogout bool
	overlay       *errorOverlayModel
}

func NewDashboardModel(e *env) *DashboardModel {
	return &DashboardModel{env: e, timeRange: models.RangeWeek}
}

// Init drops stale status lines and reloads the readings. Without a session
// it falls back to the menu.
func (m *DashboardModel) Init() tea.Cmd {
	m.notice = ""
	m.warning = false
	m.confirmLogout = false
	m.overlay = nil

	if _, ok := m.env.accounts.Current(); !ok {
		return func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}
	return m.loadReadings()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice, m.warning = msg.text, msg.warning
		return m, nil
	case readingsMsg:
		// a slow answer for a range the user already left
		if msg.timeRange != m.timeRange {
			return m, nil
		}
		if msg.err != nil {
			m.report, m.readingsErr = nil, humanizeError(msg.err)
			return m, nil
		}
		m.report, m.readingsErr = &msg.report, ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "Could not copy to the clipboard"}
			return m, nil
		}
		m.notice, m.warning = "Account id copied", false
		return m, nil
	case themeChangedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.notice, m.warning = "Theme: "+string(msg.theme), false
		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		return m, navigateWithNotice(pageMenu, "You have been logged out")
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return nil
	}

	if m.confirmLogout {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmLogout = false
			return m.logout()
		case key.Matches(msg, keys.no):
			m.confirmLogout = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.edit):
		return func() tea.Msg { return NavigateTo{Page: pageProfile} }
	case key.Matches(msg, keys.pass):
		return func() tea.Msg { return NavigateTo{Page: pagePassword} }
	case key.Matches(msg, keys.theme):
		return toggleTheme(m.env)
	case key.Matches(msg, keys.copy):
		return m.copyID()
	case key.Matches(msg, keys.period):
		m.timeRange = m.timeRange.Next()
		return m.loadReadings()
	case key.Matches(msg, keys.logout):
		m.confirmLogout = true
	case key.Matches(msg, keys.quit):
		return func() tea.Msg { return quitMsg{} }
	case msg.String() == "s":
		return func() tea.Msg { return NavigateTo{Page: pageSettings} }
	}
	return nil
}

func (m *DashboardModel) View() string {
	st := m.env.styles()

	account, ok := m.env.accounts.Current()
	if !ok {
		return renderPage(st, "DASHBOARD", "Nobody is logged in", "")
	}

	var b strings.Builder
	rows := [][2]string{
		{"Name", account.Name},
		{"Email", account.Email},
		{"Phone", account.Phone},
		{"Photo", fitText(account.PhotoURL, 40)},
		{"Account id", account.ID},
		{"Theme", fmt.Sprintf("%s (%s)", m.env.theme.Theme(), schemeName(m.env.theme.IsDark()))},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-10s │ %s\n", st.label.Render(row[0]), valueOrDash(row[1])))
	}

	if block := m.readingsView(st); block != "" {
		b.WriteString("\n" + block + "\n")
	}

	if m.warning {
		b.WriteString(renderStatus(st, m.notice, ""))
	} else {
		b.WriteString(renderStatus(st, "", m.notice))
	}

	switch {
	case m.overlay != nil:
		b.WriteString("\n\n" + m.overlay.View(st))
	case m.confirmLogout:
		b.WriteString("\n\n" + confirmModel{message: "Log out of " + account.Name + "?"}.View(st))
	}

	title := "DASHBOARD: " + strings.ToUpper(valueOrDash(account.Name))
	return renderPage(st, title, strings.TrimRight(b.String(), "\n"),
		"e: edit profile │ p: password │ t: theme │ r: period │ s: settings │ c: copy id │ l: log out │ q: quit")
}

// readingsView renders one row per metric with out-of-range values in the
// error style, boxed under the period title.
func (m *DashboardModel) readingsView(st styles) string {
	if m.env.readings == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(st.title.Render("READINGS: "+strings.ToUpper(m.timeRange.Title())) + "\n")

	switch {
	case m.readingsErr != "":
		b.WriteString(st.err.Render("Error: " + m.readingsErr))
		return st.panel.Render(b.String())
	case m.report == nil:
		b.WriteString(st.help.Render("Loading readings..."))
		return st.panel.Render(b.String())
	}

	b.WriteString(st.help.Render(readingCell("", metricColumn)))
	for _, label := range m.report.Labels {
		b.WriteString(st.help.Render(readingCell(label, valueColumn)))
	}
	b.WriteString("\n")

	alerts := 0
	for _, series := range m.report.Series {
		b.WriteString(st.label.Render(readingCell(metricTitle(series), metricColumn)))
		for _, r := range series.Readings {
			cell := readingCell(strconv.FormatFloat(r.Value, 'f', -1, 64), valueColumn)
			if r.OutOfRange {
				b.WriteString(st.err.Render(cell))
				continue
			}
			b.WriteString(st.label.Render(cell))
		}
		b.WriteString("\n")
		alerts += series.Alerts()
	}

	switch alerts {
	case 0:
		b.WriteString(st.ok.Render("All readings in range"))
	case 1:
		b.WriteString(st.err.Render("1 reading needs attention"))
	default:
		b.WriteString(st.err.Render(fmt.Sprintf("%d readings need attention", alerts)))
	}

	return st.panel.Render(b.String())
}

func (m *DashboardModel) loadReadings() tea.Cmd {
	if m.env.readings == nil {
		return nil
	}

	ctx, readings, timeRange := m.env.ctx, m.env.readings, m.timeRange
	return func() tea.Msg {
		report, err := readings.Readings(ctx, timeRange)
		return readingsMsg{timeRange: timeRange, report: report, err: err}
	}
}

func (m *DashboardModel) logout() tea.Cmd {
	ctx, accounts := m.env.ctx, m.env.accounts
	return func() tea.Msg {
		return loggedOutMsg{err: accounts.EndSession(ctx)}
	}
}

func (m *DashboardModel) copyID() tea.Cmd {
	account, ok := m.env.accounts.Current()
	if !ok {
		return nil
	}

	write := m.env.copy
	return func() tea.Msg {
		return copiedMsg{err: write(account.ID)}
	}
}

func toggleTheme(e *env) tea.Cmd {
	ctx, theme := e.ctx, e.theme
	return func() tea.Msg {
		next, err := theme.Toggle(ctx)
		return themeChangedMsg{theme: next, err: err}
	}
}

func schemeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

const (
	metricColumn = 18
	valueColumn  = 8
)

// readingCell pads v to width before styling so escape codes do not skew the
// columns.
func readingCell(v string, width int) string {
	return fmt.Sprintf("%-*s", width, fitText(v, width-1))
}

func metricTitle(s models.Series) string {
	title := map[models.Metric]string{
		models.MetricMoisture:    "Moisture",
		models.MetricTemperature: "Temperature",
		models.MetricPH:          "pH",
		models.MetricLight:       "Light",
		models.MetricHumidity:    "Humidity",
	}[s.Metric]
	if title == "" {
		title = string(s.Metric)
	}
	if unit := strings.TrimSpace(s.Unit); unit != "" {
		title += " (" + unit + ")"
	}
	return title
}
