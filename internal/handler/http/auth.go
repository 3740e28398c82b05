package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/utils"
	"github.com/MKhiriev/internship-tracker/models"
)

// register creates the account and its users profile document and answers
// 201 with {token, user}.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reg models.Registration
	if err := decodeJSON(r, &reg); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, reg)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.respondWithToken", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}
