// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/app"
	"github.com/MKhiriev/internship-tracker/internal/validators"
)

// ValidationError reports a missing or malformed field. It is returned
// before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
	// Rule is the violated validation tag, e.g. "required" or "min".
	Rule string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError reports that the target record no longer exists.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %s not found", e.ID)
}

// ServiceError wraps any failure reported by the server or the transport.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) error {
	var fe *validators.FieldError
	if errors.As(err, &fe) {
		return &ValidationError{Field: fe.Field, Reason: fe.Reason, Rule: fe.Tag}
	}
	return &ValidationError{Field: "input", Reason: err.Error()}
}

func requiredField(field string) error {
	return &ValidationError{Field: field, Reason: "is required", Rule: "required"}
}

// UserMessage turns an error returned by the client services into the one
// message shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		serviceErr    *ServiceError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field == "password" && validationErr.Rule == "min" {
			return app.MsgSignupWeakPassword
		}
		return fmt.Sprintf("%s %s.", fieldLabel(validationErr.Field), validationErr.Reason)

	case errors.As(err, &notFoundErr):
		return app.MsgRecordVanished

	case errors.As(err, &serviceErr):
		return serviceMessage(serviceErr)
	}

	return err.Error()
}

func serviceMessage(err *ServiceError) string {
	switch {
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return app.MsgSignupEmailInUse
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgLoginFailed
	case errors.Is(err, ErrSessionExpired), errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrUnavailable):
		return app.MsgServiceUnavailable
	}

	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}
	return err.Err.Error()
}

func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
