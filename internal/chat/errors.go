package chat

import "errors"

var (
	// ErrMissingMessage is returned when the chat request has no message
	ErrMissingMessage = errors.New("message is required")

	// ErrNoResponder is returned when neither oracle nor fallback is configured
	ErrNoResponder = errors.New("no responder configured")
)
