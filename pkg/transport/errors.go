package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatusError is a non-success HTTP response.
type StatusError struct {
	Status  int
	Message string
	Body    []byte
}

// Error returns "Error <status>: <message>".
func (e *StatusError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Status, e.Message)
}

// NewStatusError builds a StatusError from a response status and body. The
// message is the "message" member of a JSON object body, or empty for any
// other JSON value. If the body is not JSON the decoding error is returned
// instead.
func NewStatusError(status int, body []byte) (*StatusError, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error decoding response body (status %d): %w", status, err)
	}

	var message string
	obj, _ := payload.(map[string]any)
	switch m := obj["message"].(type) {
	case nil:
	case string:
		message = m
	default:
		message = fmt.Sprint(m)
	}

	return &StatusError{
		Status:  status,
		Message: message,
		Body:    body,
	}, nil
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status, true
	}
	return 0, false
}
