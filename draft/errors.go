package draft

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrRequired = errors.New("required")
	ErrCategory = errors.New("must be student, teacher, or common")
	ErrTooLong  = fmt.Errorf("cannot exceed %d characters", ContentLimit)
)

// InputError is a problem the author can fix in the form. It is shown to
// the user and never retried.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// ErrorPayload is the error body returned by the template endpoints.
type ErrorPayload struct {
	Error string `json:"error"`
}

// ParseErrorPayload extracts the message from an error body, falling
// back to fallback when the body is not an error payload.
func ParseErrorPayload(body []byte, fallback string) string {
	var p ErrorPayload
	if err := json.Unmarshal(body, &p); err != nil || p.Error == "" {
		return fallback
	}
	return p.Error
}
