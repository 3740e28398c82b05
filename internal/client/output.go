package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/models"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func printRecords(w io.Writer, records []models.Internship) {
	if len(records) == 0 {
		fmt.Fprintln(w, app.MsgNoInternships)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Company", "Role", "Deadline", "Status", "Link").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, rec := range records {
		t.Row(rec.ID, rec.Company, rec.Role, rec.Deadline, string(rec.Status), rec.Link)
	}
	fmt.Fprintln(w, t.String())
}
