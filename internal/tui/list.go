package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

// listModel is the dashboard: the live record set of the signed-in user
// seen through the current filter and sort order.
type listModel struct {
	user      models.CurrentUser
	firstName string

	records []models.Internship
	view    []models.Internship
	seq     uint64

	filter models.StatusFilter
	order  models.SortOrder
	idx    int

	loading bool
	spinner spinner.Model
	status  string
}

func newListModel(user models.CurrentUser) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{
		user:    user,
		filter:  models.FilterAll,
		order:   models.SortDeadlineAsc,
		loading: true,
		spinner: s,
	}
}

// setSnapshot replaces the record set, keeping the cursor on the same
// record when it is still visible.
func (m listModel) setSnapshot(set models.RecordSet) listModel {
	selected, hadSelection := m.current()

	m.loading = false
	m.seq = set.Seq
	m.records = set.Records
	m = m.refresh()

	if hadSelection {
		for i, rec := range m.view {
			if rec.ID == selected.ID {
				m.idx = i
				break
			}
		}
	}
	return m
}

// refresh recomputes the visible rows and clamps the cursor.
func (m listModel) refresh() listModel {
	m.view = service.DeriveView(m.records, m.filter, m.order)
	if m.idx >= len(m.view) {
		m.idx = len(m.view) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) cycleFilter() listModel {
	m.filter = m.filter.Next()
	m.idx = 0
	return m.refresh()
}

func (m listModel) toggleOrder() listModel {
	m.order = m.order.Toggle()
	return m.refresh()
}

func (m listModel) current() (models.Internship, bool) {
	if len(m.view) == 0 || m.idx < 0 || m.idx >= len(m.view) {
		return models.Internship{}, false
	}
	return m.view[m.idx], true
}

func (m listModel) greeting() string {
	name := m.firstName
	if name == "" {
		name = m.user.Email
	}
	return "Welcome, " + name + "!"
}

func orderLabel(o models.SortOrder) string {
	if o == models.SortDeadlineDesc {
		return "Deadline (latest first)"
	}
	return "Deadline (earliest first)"
}

func (m listModel) View(st styles) string {
	var b strings.Builder

	b.WriteString(m.greeting() + "\n\n")
	fmt.Fprintf(&b, "Filter: %s   Sort: %s\n\n", m.filter, orderLabel(m.order))

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading applications...\n")
	case len(m.view) == 0:
		b.WriteString(app.MsgNoInternships + "\n")
		b.WriteString(st.help.Render("Add your first internship with n!") + "\n")
	default:
		b.WriteString(st.header.Render(fmt.Sprintf("  %s %s %s %s",
			padRight("Company", 20), padRight("Role", 24), padRight("Deadline", 11), "Status")) + "\n")
		for i, rec := range m.view {
			row := fmt.Sprintf("%s %s %s ",
				padRight(fitText(rec.Company, 20), 20),
				padRight(fitText(rec.Role, 24), 24),
				padRight(rec.Deadline, 11))
			cursor := "  "
			if i == m.idx {
				cursor = "> "
				row = st.selected.Render(row)
			}
			b.WriteString(cursor + row + st.badge.Render(string(rec.Status)) + "\n")
		}
	}

	if rec, ok := m.current(); ok && rec.Notes != "" {
		b.WriteString("\n" + st.help.Render("Notes: "+fitText(rec.Notes, 70)) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := strings.Join([]string{
		st.action(0, "c") + " copy link",
		st.action(1, "e") + " edit",
		st.action(2, "d") + " delete",
		"n new  f filter  s sort  t colour  m dark  L log out  q quit",
	}, "  ")

	return renderPage(st, "Internship Tracker", b.String(), hotKeys)
}
