package shared

import "errors"

var (
	// ErrUnauthorized covers every authentication failure: bad signature,
	// expired token, wrong scope, unknown subject. Callers must not be able
	// to tell which check failed.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrNotFound is returned both for records that do not exist and for
	// records owned by another user.
	ErrNotFound = errors.New("not found")

	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")

	// ErrDependency marks a failed store or cache call, distinct from
	// business errors.
	ErrDependency = errors.New("dependency unavailable")
)
