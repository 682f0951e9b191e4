package services

import (
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
)

var ErrNotLoggedIn = errors.New("no user logged in")

const msgNotLoggedIn = "No user logged in"

// OpError is returned by a failed session operation. Message is the text that
// was shown to the user; Err is the underlying cause.
type OpError struct {
	Op      string
	Message string
	Err     error
}

func (e *OpError) Error() string { return e.Message }

func (e *OpError) Unwrap() error { return e.Err }

// serverMessage returns the API's own failure text, if it sent one.
func serverMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// fieldMessage returns the first field-level validation message, if any.
func fieldMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.FirstFieldMessage()
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
