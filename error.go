package contacts

import (
	"errors"
	"fmt"
)

// ErrEmptyTransport is returned when attempting to create a loader without providing a transport.
// The transport is mandatory for every load; construction fails if it is missing.
var ErrEmptyTransport = errors.New("transport is empty")

// ErrEmptyURL is returned when attempting to create a loader without a resource locator.
var ErrEmptyURL = errors.New("url is empty")

// ErrMissingField is returned by envelope validation when a required wire field is absent.
var ErrMissingField = errors.New("missing required field")

// Classification sentinels. A failed load always matches exactly one of them through errors.Is.
var (
	ErrConnectivity = errors.New("connectivity")
	ErrInvalidData  = errors.New("invalid data")
)

// ErrorKind is the coarse classification delivered to load continuations.
type ErrorKind string

const (
	// KindConnectivity means the transport could not complete the request.
	KindConnectivity ErrorKind = "connectivity"
	// KindInvalidData means the server answered, but with a non-200 status or an undecodable body.
	KindInvalidData ErrorKind = "invalid_data"
)

// LoadError is the only error type a continuation ever receives.
// Kind drives caller behavior, Err keeps the underlying cause for diagnostics.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

// Error method formats the kind followed by the underlying cause, when there is one.
func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Err != nil {
		return fmt.Sprintf("load failed: %s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("load failed: %s", e.Kind)
}

// Unwrap method returns the underlying cause so errors.Is and errors.As can reach it.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Is matches the classification sentinel that corresponds to the error kind.
func (e *LoadError) Is(target error) bool {
	if e == nil {
		return false
	}

	switch target {
	case ErrConnectivity:
		return e.Kind == KindConnectivity
	case ErrInvalidData:
		return e.Kind == KindInvalidData
	}

	return false
}

// IsKind helps callers classify errors without inspecting the underlying cause.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind == kind
	}

	return false
}

func connectivityError(cause error) *LoadError {
	return &LoadError{Kind: KindConnectivity, Err: cause}
}

func invalidDataError(cause error) *LoadError {
	return &LoadError{Kind: KindInvalidData, Err: cause}
}
