package domain

import "errors"

var (
	// ErrFetchFailure is returned when the recipe-extraction service is
	// unreachable or answers with a non-success status
	ErrFetchFailure = errors.New("recipe extraction failed")

	// ErrInvocationFailure is returned when a language-model call fails
	// (network, auth, quota, or an empty completion)
	ErrInvocationFailure = errors.New("model invocation failed")

	// ErrParseFailure is returned when model output is not valid JSON after
	// sanitization
	ErrParseFailure = errors.New("model response could not be parsed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
