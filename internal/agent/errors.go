package agent

import (
	"encoding/json"
	"fmt"
)

// RemoteError is a failure reported by the quiz service: either a non-2xx
// response carrying a message body, or a transport failure with no response
// at all. Message is always human-readable and safe to show inline.
type RemoteError struct {
	Operation  string // e.g. "submit-responses"
	StatusCode int    // 0 for transport failures
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// DecodeError indicates the service returned a body the adapter could not
// normalize into the stable client schema.
type DecodeError struct {
	Operation string
	Body      json.RawMessage
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
