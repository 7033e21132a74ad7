package llm

import "errors"

var (
	// ErrUnavailable indicates the completion endpoint is unreachable.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrEmptyResponse indicates a 2xx reply that carried no candidate text.
	ErrEmptyResponse = errors.New("empty completion response")

	// ErrMissingAPIKey indicates the client was built without an API key.
	ErrMissingAPIKey = errors.New("missing API key")
)
