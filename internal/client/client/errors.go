package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// FieldError is one entry of the "errors" object of a failure response.
type FieldError struct {
	Field   string
	Message string
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	// Message is the body's "message" member, empty when absent or when the
	// body was not JSON.
	Message string
	// FieldErrors keeps the "errors" object in document order.
	FieldErrors []FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// FirstFieldMessage returns the message of the first field error, or "".
func (e *APIError) FirstFieldMessage() string {
	for _, fe := range e.FieldErrors {
		if fe.Message != "" {
			return fe.Message
		}
	}
	return ""
}

// newAPIError reads whatever structure the failure body has. Bodies that are
// not JSON objects yield an APIError with only the status code.
func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}
	if !gjson.ValidBytes(body) {
		return e
	}

	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return e
	}

	if m := res.Get("message"); m.Type == gjson.String {
		e.Message = m.String()
	}

	if errs := res.Get("errors"); errs.IsObject() {
		errs.ForEach(func(key, value gjson.Result) bool {
			msg := value.String()
			if value.IsObject() {
				msg = value.Get("message").String()
			}
			e.FieldErrors = append(e.FieldErrors, FieldError{Field: key.String(), Message: msg})
			return true
		})
	}
	return e
}
