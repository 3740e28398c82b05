package http

import (
	"net/http"

	"github.com/MKhiriev/internship-tracker/internal/utils"
)

// getServerVersion reports the build the server runs. The client only reads
// "version"; date and commit are there for operators.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
