package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View(st styles) string {
	content := "Are you sure you want to delete \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return st.overlay.Render(content)
}
