package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

// Form slots in focus order. The status slot is a selector, every other
// slot is a text input.
const (
	slotCompany = iota
	slotRole
	slotLink
	slotDeadline
	slotStatus
	slotNotes
	slotCount
)

var formLabels = [slotCount]string{"Company", "Role", "Link", "Deadline", "Status", "Notes"}

// formModel renders the working copy of an [service.EditSession].
type formModel struct {
	inputs     map[int]textinput.Model
	status     models.Status
	focus      int
	editing    bool
	submitting bool
}

func newFormModel(session *service.EditSession) formModel {
	fields := session.Fields()
	_, editing := session.State().(service.Editing)

	values := map[int]string{
		slotCompany:  fields.Company,
		slotRole:     fields.Role,
		slotLink:     fields.Link,
		slotDeadline: fields.Deadline,
		slotNotes:    fields.Notes,
	}

	m := formModel{
		inputs:  make(map[int]textinput.Model, len(values)),
		status:  fields.Status,
		editing: editing,
	}
	if !m.status.Valid() {
		m.status = models.DefaultStatus
	}

	for slot, v := range values {
		in := textinput.New()
		in.Width = 48
		in.CharLimit = 512
		in.SetValue(v)
		m.inputs[slot] = in
	}
	deadline := m.inputs[slotDeadline]
	deadline.Placeholder = models.DeadlineLayout
	m.inputs[slotDeadline] = deadline

	return m.focusSlot(slotCompany)
}

func (m formModel) fields() models.InternshipFields {
	return models.InternshipFields{
		Company:  strings.TrimSpace(m.inputs[slotCompany].Value()),
		Role:     strings.TrimSpace(m.inputs[slotRole].Value()),
		Link:     strings.TrimSpace(m.inputs[slotLink].Value()),
		Deadline: strings.TrimSpace(m.inputs[slotDeadline].Value()),
		Status:   m.status,
		Notes:    m.inputs[slotNotes].Value(),
	}
}

func (m formModel) focusSlot(slot int) formModel {
	if in, ok := m.inputs[m.focus]; ok {
		in.Blur()
		m.inputs[m.focus] = in
	}
	m.focus = slot
	if in, ok := m.inputs[m.focus]; ok {
		in.Focus()
		m.inputs[m.focus] = in
	}
	return m
}

func (m formModel) next() formModel {
	return m.focusSlot((m.focus + 1) % slotCount)
}

func (m formModel) prev() formModel {
	return m.focusSlot((m.focus - 1 + slotCount) % slotCount)
}

func (m formModel) View(st styles) string {
	title := "Add Internship"
	if m.editing {
		title = "Edit Internship"
	}

	var b strings.Builder
	for slot, label := range formLabels {
		cursor := "  "
		if slot == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + padRight(label+":", 10))
		if slot == slotStatus {
			b.WriteString("< " + st.badge.Render(string(m.status)) + " >")
		} else {
			b.WriteString(m.inputs[slot].View())
		}
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...\n")
	}

	submit := "enter: add"
	if m.editing {
		submit = "enter: update"
	}
	return renderPage(st, title, b.String(), "tab: next field  ←/→: status  "+submit+"  esc: cancel")
}
