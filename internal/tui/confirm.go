package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View(st styles) string {
	content := m.message + "\n\n"
	content += st.help.Render("y: yes    n: no")
	return st.overlay.Render(content)
}
