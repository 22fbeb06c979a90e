// Package server provides the HTTP REST API for the profile extractor.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidCredentials indicates a bad operator password
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid operator password"
}

// ErrRunNotFound indicates the requested extraction run does not exist
type ErrRunNotFound struct {
	RunID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// ErrProfileNotFound indicates a run exists but has no profile snapshot
type ErrProfileNotFound struct {
	RunID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found for run: %s", e.RunID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrEmptyDocument indicates the submitted text has no usable content
type ErrEmptyDocument struct{}

func (e *ErrEmptyDocument) Error() string {
	return "no extractable text in document"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrRunNotFound, *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrEmptyDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
