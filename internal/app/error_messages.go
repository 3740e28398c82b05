// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// server handlers, the client services and the terminal UI.
//
// Msg* constants are written into HTTP error bodies; the client matches on
// a few of them to pick a friendlier text for the screen. Keeping them in
// one place keeps the wording identical on both ends.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the email/password pair does
	// not match an account.
	MsgInvalidLoginPassword = "invalid email or password"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is
	// missing, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a protected handler runs without
	// an authenticated user in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when a user asks for another user's
	// records or profile.
	MsgAccessDenied = "access denied"

	// MsgUnsupportedFilter is returned when a query filters on anything
	// other than the owning user id.
	MsgUnsupportedFilter = "only the userId filter is supported"

	// MsgEmailAlreadyExists is returned when signup uses a taken email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgRecordNotFound is returned when the target internship is gone.
	MsgRecordNotFound = "record not found"

	// MsgUserNotFound is returned when a profile lookup misses.
	MsgUserNotFound = "user not found"

	// MsgStreamingUnsupported is returned when the response writer cannot
	// flush, so live updates cannot be delivered.
	MsgStreamingUnsupported = "streaming unsupported"
)

// Messages shown on the client screens.
const (
	// MsgSignupEmailInUse replaces the server's duplicate email error.
	MsgSignupEmailInUse = "This email is already registered. Please try logging in instead."

	// MsgSignupWeakPassword replaces the password length validation error.
	MsgSignupWeakPassword = "Password should be at least 6 characters long."

	// MsgLoginFailed is shown for rejected credentials.
	MsgLoginFailed = "Invalid email or password."

	// MsgRecordVanished is shown when an edited or deleted record no longer
	// exists.
	MsgRecordVanished = "This application no longer exists. It may have been deleted elsewhere."

	// MsgSessionExpired is shown when the stored token is rejected.
	MsgSessionExpired = "Your session has expired. Please log in again."

	// MsgServiceUnavailable is shown when the server cannot be reached.
	MsgServiceUnavailable = "The tracker service is unavailable. Please try again."

	// MsgNoInternships is shown for an empty list.
	MsgNoInternships = "No internships found."
)
