package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when a user with the same email exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrInternshipNotFound is returned when the targeted record does not
	// exist (or does not belong to the given user).
	ErrInternshipNotFound = errors.New("internship not found")

	// ErrNoSession is returned by the client session store when nobody is
	// signed in.
	ErrNoSession = errors.New("no session stored")

	// ErrUnsupportedDriver is returned for a DSN whose backend is unknown.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrNotifying            = errors.New("failed to publish change notification")
)
