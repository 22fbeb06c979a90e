package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	runID := uuid.New()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"run not found", &ErrRunNotFound{RunID: runID}, http.StatusNotFound},
		{"profile not found", &ErrProfileNotFound{RunID: runID}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "text", Message: "required"}, http.StatusBadRequest},
		{"empty document", &ErrEmptyDocument{}, http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	runID := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	assert.Equal(t, "invalid operator password", (&ErrInvalidCredentials{}).Error())
	assert.Contains(t, (&ErrRunNotFound{RunID: runID}).Error(), runID.String())
	assert.Contains(t, (&ErrProfileNotFound{RunID: runID}).Error(), runID.String())
	assert.Equal(t, "validation error: text - required",
		(&ErrValidation{Field: "text", Message: "required"}).Error())
	assert.Equal(t, "no extractable text in document", (&ErrEmptyDocument{}).Error())
}
