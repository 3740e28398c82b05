package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/internal/utils"
	"github.com/MKhiriev/internship-tracker/models"
)

func (h *Handler) listInternships(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerFilter(w, r, "*Handler.listInternships")
	if !ok {
		return
	}

	records, err := h.services.InternshipService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listInternships", err)
		return
	}
	if records == nil {
		records = []models.Internship{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getInternship(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.getInternship")
	if !ok {
		return
	}

	rec, err := h.services.InternshipService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getInternship", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) createInternship(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.createInternship")
	if !ok {
		return
	}

	var rec models.Internship
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, r, "*Handler.createInternship", err)
		return
	}

	created, err := h.services.InternshipService.Create(r.Context(), userID, rec)
	if err != nil {
		writeError(w, r, "*Handler.createInternship", err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", created.ID).Msg("internship created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateInternship overwrites the mutable fields of the record named in
// the path; an id in the body is ignored.
func (h *Handler) updateInternship(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.updateInternship")
	if !ok {
		return
	}

	var rec models.Internship
	if err := decodeJSON(r, &rec); err != nil {
		writeError(w, r, "*Handler.updateInternship", err)
		return
	}
	rec.ID = chi.URLParam(r, "id")

	updated, err := h.services.InternshipService.Update(r.Context(), userID, rec)
	if err != nil {
		writeError(w, r, "*Handler.updateInternship", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteInternship(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "*Handler.deleteInternship")
	if !ok {
		return
	}

	if err := h.services.InternshipService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteInternship", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownerFilter resolves the query filter of a collection read. Only
// equality on userId is supported and it must name the caller; an absent
// filter means the caller.
func (h *Handler) ownerFilter(w http.ResponseWriter, r *http.Request, fn string) (string, bool) {
	userID, ok := userIDFromRequest(w, r, fn)
	if !ok {
		return "", false
	}

	query := r.URL.Query()
	for key := range query {
		if key != models.FilterFieldUserID {
			logger.FromRequest(r).Warn().Str("func", fn).Str("param", key).Msg("unsupported filter")
			utils.WriteError(w, app.MsgUnsupportedFilter, http.StatusBadRequest)
			return "", false
		}
	}

	if requested := query.Get(models.FilterFieldUserID); requested != "" && requested != userID {
		writeError(w, r, fn, service.ErrForbidden)
		return "", false
	}

	return userID, true
}
