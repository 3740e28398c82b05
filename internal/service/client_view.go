package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/internship-tracker/models"
)

// DeriveView returns the records matching filter, ordered by deadline.
//
// A filter of [models.FilterAll] (or empty) keeps every record; any other
// value keeps exact status matches. Deadlines are ISO dates and compare as
// strings. The sort is stable, so records with the same deadline keep
// their input order. records is not modified.
func DeriveView(records []models.Internship, filter models.StatusFilter, order models.SortOrder) []models.Internship {
	view := make([]models.Internship, 0, len(records))
	for _, rec := range records {
		if filter == "" || filter == models.FilterAll || models.StatusFilter(rec.Status) == filter {
			view = append(view, rec)
		}
	}

	slices.SortStableFunc(view, func(a, b models.Internship) int {
		c := strings.Compare(a.Deadline, b.Deadline)
		if order == models.SortDeadlineDesc {
			return -c
		}
		return c
	})

	return view
}
