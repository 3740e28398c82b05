package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/internship-tracker/internal/utils"
)

// getUser is getOne on the users collection. Users may only read their own
// document.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := userIDFromRequest(w, r, "*Handler.getUser")
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), requesterID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
