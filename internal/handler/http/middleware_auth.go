package http

import (
	"net/http"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT bearer authentication.
//
// The token is verified via [service.AuthService.ParseToken]. On success
// the subject is stored in the request context under [utils.UserIDCtxKey]
// and added to the request logger as "user_id". Missing, malformed,
// expired and forged tokens are all answered with 401 and a JSON error.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = log.With().Str("user_id", token.UserID).Logger().WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// userIDFromRequest returns the authenticated user id. It only fails for
// handlers mounted outside the auth middleware.
func userIDFromRequest(w http.ResponseWriter, r *http.Request, fn string) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", fn).Msg("no user ID in context")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
	}
	return userID, ok
}
