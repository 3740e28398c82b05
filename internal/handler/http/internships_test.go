package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/models"
)

func TestInternships_Lifecycle(t *testing.T) {
	router := newTestHandler(t).Init()
	ada := registerUser(t, router, "ada@example.com")

	rec := do(t, router, http.MethodPost, "/api/internships", ada.Token, sampleRecord())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.Internship](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, ada.User.ID, created.UserID)
	assert.False(t, created.Created.IsZero())
	assert.Nil(t, created.Updated)

	rec = do(t, router, http.MethodGet, "/api/internships/"+created.ID, ada.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.InternshipFields, decodeBody[models.Internship](t, rec).InternshipFields)

	changed := created
	changed.Status = models.StatusInterviewing
	changed.Notes = "phone screen booked"
	rec = do(t, router, http.MethodPut, "/api/internships/"+created.ID, ada.Token, changed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[models.Internship](t, rec)
	assert.Equal(t, models.StatusInterviewing, updated.Status)
	assert.NotNil(t, updated.Updated)
	assert.True(t, created.Created.Equal(updated.Created))

	rec = do(t, router, http.MethodGet, "/api/internships?userId="+ada.User.ID, ada.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.Internship](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "phone screen booked", list[0].Notes)

	rec = do(t, router, http.MethodDelete, "/api/internships/"+created.ID, ada.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/internships/"+created.ID, ada.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRecordNotFound, errorText(t, rec))

	rec = do(t, router, http.MethodDelete, "/api/internships/"+created.ID, ada.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/internships", ada.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInternships_Validation(t *testing.T) {
	router := newTestHandler(t).Init()
	ada := registerUser(t, router, "ada@example.com")

	tests := []struct {
		name    string
		mutate  func(*models.Internship)
		message string
	}{
		{"empty company", func(r *models.Internship) { r.Company = "" }, "company is required"},
		{"bad link", func(r *models.Internship) { r.Link = "jobs" }, "link must be a valid URL"},
		{"bad deadline", func(r *models.Internship) { r.Deadline = "May 1st" }, "deadline must be a date in YYYY-MM-DD format"},
		{"unknown status", func(r *models.Internship) { r.Status = "Ghosted" }, "status must be one of Applied, Interviewing, Rejected, Offer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := sampleRecord()
			tt.mutate(&body)

			rec := do(t, router, http.MethodPost, "/api/internships", ada.Token, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, errorText(t, rec))
		})
	}

	rec := do(t, router, http.MethodPost, "/api/internships", ada.Token, "{")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInternships_ScopedToOwner(t *testing.T) {
	router := newTestHandler(t).Init()
	ada := registerUser(t, router, "ada@example.com")
	bob := registerUser(t, router, "bob@example.com")

	rec := do(t, router, http.MethodPost, "/api/internships", ada.Token, sampleRecord())
	require.Equal(t, http.StatusCreated, rec.Code)
	adas := decodeBody[models.Internship](t, rec)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"read foreign record", http.MethodGet, "/api/internships/" + adas.ID, nil, http.StatusForbidden},
		{"update foreign record", http.MethodPut, "/api/internships/" + adas.ID, sampleRecord(), http.StatusForbidden},
		{"delete foreign record", http.MethodDelete, "/api/internships/" + adas.ID, nil, http.StatusForbidden},
		{"query foreign user", http.MethodGet, "/api/internships?userId=" + ada.User.ID, nil, http.StatusForbidden},
		{"create for foreign user", http.MethodPost, "/api/internships", models.Internship{UserID: ada.User.ID, InternshipFields: sampleRecord().InternshipFields}, http.StatusForbidden},
		{"unsupported filter", http.MethodGet, "/api/internships?status=Offer", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, bob.Token, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	rec = do(t, router, http.MethodGet, "/api/internships", bob.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Internship](t, rec))

	rec = do(t, router, http.MethodGet, "/api/internships/"+adas.ID, ada.Token, nil)
	assert.Equal(t, models.StatusApplied, decodeBody[models.Internship](t, rec).Status, "ada's record is untouched")
}
