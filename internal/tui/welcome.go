package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Sign up"}}
}

func (m welcomeModel) View(st styles) string {
	out := "Track your internship applications.\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
			item = st.selected.Render(item)
		}
		out += cursor + item + "\n"
	}
	return renderPage(st, "Internship Tracker", out, "enter: choose  v: about  q: quit")
}
