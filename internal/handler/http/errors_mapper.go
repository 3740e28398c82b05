package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/utils"
	"github.com/MKhiriev/internship-tracker/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidInput:         http.StatusBadRequest,
	errInvalidJSON:                     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrFeedClosed:              http.StatusServiceUnavailable,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrInternshipNotFound: http.StatusNotFound,
}

var errorMessageMap = map[error]string{
	errInvalidJSON:                     app.MsgInvalidDataProvided,
	service.ErrInvalidCredentials:      app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrForbidden:               app.MsgAccessDenied,
	store.ErrEmailAlreadyExists:        app.MsgEmailAlreadyExists,
	store.ErrUserNotFound:              app.MsgUserNotFound,
	store.ErrInternshipNotFound:        app.MsgRecordNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Validation
// failures carry their field message; unknown errors never leak.
func messageFromError(err error) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}

	if errors.Is(err, validators.ErrInvalidInput) {
		return app.MsgInvalidDataProvided
	}
	if errors.Is(err, service.ErrFeedClosed) {
		return http.StatusText(http.StatusServiceUnavailable)
	}
	return app.MsgInternalServerError
}

// writeError logs err and writes the mapped status and JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	utils.WriteError(w, messageFromError(err), status)
}
