package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/internship-tracker/internal/utils"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

// mapStatus converts a status code and error body into a [*ResponseError].
// 2xx yields nil.
func mapStatus(code int, body []byte) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{StatusCode: code, Message: errorMessage(code, body)}

	switch code {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusConflict:
		respErr.kind = ErrConflict
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		respErr.kind = ErrUnexpectedStatus
	}

	return respErr
}

func errorMessage(code int, body []byte) string {
	var payload utils.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}

	return http.StatusText(code)
}
