package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View(st styles) string {
	content := st.err.Render("Error") + "\n\n" + m.message + "\n\n" + st.help.Render("enter / esc: close")
	return st.overlay.Render(content)
}
