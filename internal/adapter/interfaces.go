// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the tracker server.
//
// The server plays two roles for the client and the package mirrors them
// with two interfaces: [AuthProvider] issues sessions and [DocumentStore]
// serves the users and internships collections, including the live query
// delivered as a stream of full snapshots. [ServerAdapter] combines both and
// is implemented over HTTP by [NewHTTPServerAdapter].
//
// Non-2xx responses are mapped to the sentinel errors in errors.go wrapped
// in a [*ResponseError], so callers branch with [errors.Is] and can still
// read the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/internship-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthProvider issues and holds the bearer token of the signed-in user.
type AuthProvider interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account together with its users profile document
	// and stores the returned token.
	Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}

// DocumentStore is the collection API of the server.
type DocumentStore interface {
	// SubscribeInternships opens a live query. The first snapshot arrives
	// right after the stream is established and another follows every
	// change of the matching records.
	SubscribeInternships(ctx context.Context, filter models.Filter) (SnapshotStream, error)

	// ListInternships runs the query once.
	ListInternships(ctx context.Context, filter models.Filter) ([]models.Internship, error)

	// InsertInternship stores rec and returns the id assigned by the server.
	InsertInternship(ctx context.Context, rec models.Internship) (string, error)

	// UpdateInternship overwrites the mutable fields of the record rec.ID.
	UpdateInternship(ctx context.Context, rec models.Internship) error

	// DeleteInternship removes the record id.
	DeleteInternship(ctx context.Context, id string) error

	// GetInternship fetches one record.
	GetInternship(ctx context.Context, id string) (models.Internship, error)

	// GetUser fetches one users document.
	GetUser(ctx context.Context, id string) (models.User, error)
}

// SnapshotStream is an open live query.
type SnapshotStream interface {
	// Next blocks until the next snapshot arrives. After the stream ends it
	// returns an error wrapping [ErrStreamClosed] on every call.
	Next() (models.RecordSet, error)

	// Close releases the connection and unblocks a pending Next. It is safe
	// to call more than once.
	Close() error
}

// ServerAdapter is everything the client needs from the server.
type ServerAdapter interface {
	AuthProvider
	DocumentStore
}
