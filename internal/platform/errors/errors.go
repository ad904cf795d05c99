package apperrors

import "errors"

var (
	// ErrTimeout marks a remote request that exceeded its deadline. Callers
	// surface this as its own UI state, distinct from other fetch failures.
	ErrTimeout = errors.New("request timed out")
	// ErrMalformed marks a response body that could not be decoded.
	ErrMalformed = errors.New("malformed response")
	// ErrStaleFetch marks a fetch result superseded by a newer refresh.
	// The result is discarded; the user never sees this.
	ErrStaleFetch = errors.New("stale fetch superseded")
	ErrNotFound     = errors.New("not found")
	ErrNoProgram    = errors.New("no program loaded")
	ErrInvalidInput = errors.New("invalid input")
)
