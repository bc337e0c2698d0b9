package resolver

import "errors"

var (
	// ErrMissingFile is returned when a file candidate's path does not exist or cannot be read.
	ErrMissingFile = errors.New("file not found or unreadable")
	// ErrInvalidEncoding is returned when a file candidate's contents are not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("file contents are not valid UTF-8")
	// ErrMissingEnvVar is returned when an environment candidate's variable is not set.
	ErrMissingEnvVar = errors.New("environment variable not set")
	// ErrExhausted is returned when every candidate in a chain failed and no literal default was supplied.
	ErrExhausted = errors.New("no candidate produced a value")
	// ErrInvalidArity is returned when a chain is malformed: fewer than 2 or more than 3
	// candidates, or a literal default in any position but the last.
	ErrInvalidArity = errors.New("a fallback chain needs 2 or 3 candidates with the literal default last")
)
