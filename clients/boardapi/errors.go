package boardapi

import (
	"errors"
	"fmt"
	"net/http"

	"tictactask/clients"
)

// NotFoundError indicates the requested resource does not exist (HTTP 404).
// Idempotent delete paths treat it as benign.
type NotFoundError struct {
	Endpoint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Endpoint)
}

// RequestError covers every other failure: non-2xx responses and transport
// errors alike. StatusCode is zero when the request never got a response.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request failed: %s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("request failed: %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// wrapErr maps a BaseClient failure into the gateway error taxonomy.
func wrapErr(err error, endpoint string) error {
	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return &NotFoundError{Endpoint: endpoint}
		}
		return &RequestError{Endpoint: endpoint, StatusCode: statusErr.StatusCode, Message: statusErr.Body}
	}
	return &RequestError{Endpoint: endpoint, Message: err.Error()}
}
