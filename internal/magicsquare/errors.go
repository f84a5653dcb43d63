package magicsquare

import "errors"

// Sentinel errors classifying every failure mode of a generation call.
// Callers match with errors.Is; messages carry the specifics.
var (
	// ErrInvalidSize means the requested size failed local validation.
	// No network call is made when this is returned.
	ErrInvalidSize = errors.New("magic square size must be a positive integer")

	// ErrUnavailable means the remote service could not be reached or
	// answered with a non-2xx status.
	ErrUnavailable = errors.New("magic square service unavailable")

	// ErrMalformed means the remote service answered but the body was not
	// valid JSON or did not contain a usable square matrix.
	ErrMalformed = errors.New("malformed magic square response")
)
