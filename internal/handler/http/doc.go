// Package http implements the REST and live-query surface of the tracker
// server.
//
// Routes are wired in routes.go. Public routes cover registration, login
// and the build version; everything else requires a bearer token whose
// subject becomes the user id in the request context. JSON CRUD endpoints
// on the internships collection are compressed and time-bounded, the live
// endpoint streams full snapshots as Server-Sent Events.
package http
