package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/internship-tracker/models"
)

var registerLabels = []string{"First name", "Last name", "Email", "Password"}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	inputs := make([]textinput.Model, len(registerLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].EchoCharacter = '*'
	inputs[3].Placeholder = "at least 6 characters"
	inputs[0].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) registration() models.Registration {
	return models.Registration{
		FirstName: strings.TrimSpace(m.inputs[0].Value()),
		LastName:  strings.TrimSpace(m.inputs[1].Value()),
		Email:     strings.TrimSpace(m.inputs[2].Value()),
		Password:  m.inputs[3].Value(),
	}
}

func (m registerModel) View(st styles) string {
	var b strings.Builder
	for i, label := range registerLabels {
		b.WriteString(padRight(label+":", 12) + m.inputs[i].View() + "\n")
	}
	if m.submitting {
		b.WriteString("\nCreating account...\n")
	}
	return renderPage(st, "Sign up", b.String(), "tab: next field  enter: sign up  esc: back")
}
