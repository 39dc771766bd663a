package errs

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a registration email is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrForbidden is returned when the caller is neither the resource author nor an admin
	ErrForbidden = errors.New("forbidden")

	// ErrIncorrectPassword is returned when a supplied password does not match the stored hash
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrNoAuthor is returned when a listing or comment has no author attached.
	// The ownership check fails closed on it instead of dereferencing nil.
	ErrNoAuthor = errors.New("resource has no author")
)
