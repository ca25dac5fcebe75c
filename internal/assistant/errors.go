package assistant

import "errors"

var (
	// ErrEmptyResponse means the model returned no message content.
	ErrEmptyResponse = errors.New("no content from model")
	// ErrMalformedJSON means the model content did not parse as JSON.
	ErrMalformedJSON = errors.New("model did not return JSON")
	// ErrIncompleteEvent means the parsed JSON lacks summary, start.dateTime
	// or end.dateTime.
	ErrIncompleteEvent = errors.New("incomplete event data from model")
)
