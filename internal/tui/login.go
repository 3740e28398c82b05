// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/internship-tracker/models"
)

// loginModel is the login screen: email and password.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
}

func (m loginModel) View(st styles) string {
	var b strings.Builder
	b.WriteString("Email:    " + m.inputs[0].View() + "\n")
	b.WriteString("Password: " + m.inputs[1].View() + "\n")
	if m.submitting {
		b.WriteString("\nLogging in...\n")
	}
	return renderPage(st, "Log in", b.String(), "tab: next field  enter: log in  esc: back")
}
