package errors

import (
	"errors"
	"fmt"
)

// ValidationError indicates a request the server understood but cannot
// honor: a malformed page token, an unsupported FROM entity, bad OAuth
// parameters. Surfaced directly to the client, not retried.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidationError checks if the error is a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Kind: kind, ID: id}
}

func NewCustomerNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("customer", id)
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// UnauthorizedError indicates a missing or invalid bearer token or developer
// token.
type UnauthorizedError struct {
	msg string
}

func NewUnauthorizedError(msg string) *UnauthorizedError {
	return &UnauthorizedError{msg: msg}
}

func (e *UnauthorizedError) Error() string {
	return e.msg
}

// IsUnauthorizedError checks if the error is an UnauthorizedError.
func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

// InvalidGrantError indicates an OAuth token exchange with an unknown or
// already-consumed authorization code or refresh token.
type InvalidGrantError struct{}

func NewInvalidGrantError() *InvalidGrantError {
	return &InvalidGrantError{}
}

func (e *InvalidGrantError) Error() string {
	return "invalid_grant"
}

func IsInvalidGrantError(err error) bool {
	var e *InvalidGrantError
	return errors.As(err, &e)
}
