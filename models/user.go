// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a document of the users collection.
// PasswordHash never leaves the server.
type User struct {
	// ID is the opaque user identifier; it is also the JWT subject.
	ID string `json:"id"`

	// Email is unique across users and used to log in.
	Email string `json:"email"`

	// FirstName and LastName are collected at signup.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Registration is the signup payload.
type Registration struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CurrentUser is the identity the client is signed in as.
type CurrentUser struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Session is the locally persisted sign-in state of the client.
type Session struct {
	UserID    string
	Email     string
	Token     string
	CreatedAt time.Time
}

// CurrentUser returns the identity part of the session.
func (s Session) CurrentUser() CurrentUser {
	return CurrentUser{UserID: s.UserID, Email: s.Email}
}

// AuthState is the resolution state of the current user.
type AuthState int

const (
	// AuthLoading means the session has not been resolved yet.
	AuthLoading AuthState = iota
	// AuthSignedOut means there is no usable session.
	AuthSignedOut
	// AuthSignedIn means CurrentUser is available.
	AuthSignedIn
)
