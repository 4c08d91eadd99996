package platform

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when no API key is configured
var ErrMissingAPIKey = errors.New("no API key configured: set PAASCTL_API_KEY or api.key in config.yaml")

// ErrTransport is returned when the request never produced a response
type ErrTransport struct {
	Method string
	URL    string
	Err    error
}

func (e ErrTransport) Error() string {
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e ErrTransport) Unwrap() error {
	return e.Err
}

// ErrProtocol is returned when the API answers with a body that is not JSON
type ErrProtocol struct {
	Err error
}

func (e ErrProtocol) Error() string {
	return fmt.Sprintf("unexpected non-JSON response from API: %v", e.Err)
}

func (e ErrProtocol) Unwrap() error {
	return e.Err
}

// ErrAPIFailure is returned when a well-formed response signals a logical failure
type ErrAPIFailure struct {
	Status  string
	Message string
}

func (e ErrAPIFailure) Error() string {
	return "API request failed: " + e.Message
}

// ErrNotFound is returned when a referenced resource is absent from a list response
type ErrNotFound struct {
	Kind string
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}
