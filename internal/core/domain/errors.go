package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrCorruptToken = errors.New("corrupt credential token")
var ErrUnauthorized = errors.New("unauthorized")
var ErrNoCredential = errors.New("no credential stored")

// RequestError is any non-2xx (or network-level) failure on a gateway call
// that is not an authentication failure. Status is zero when the request
// never reached the backend.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// Is makes errors.Is(err, ErrUnauthorized) hold for 401 responses without a
// separate error type per status.
func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == 401
}

// ValidationError reports missing or malformed form fields. It is raised
// before any network call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}
