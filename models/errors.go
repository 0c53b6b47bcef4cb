package models

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a city, region or location cannot be resolved,
// including when the upstream API answers with a non-success status.
type NotFoundError struct {
	Kind   string // what was looked up, e.g. "city" or "region"
	Name   string
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q not found: %s", e.Kind, e.Name, e.Reason)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// NetworkError is returned when an outbound request fails or times out
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsNetwork reports whether err wraps a NetworkError
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
