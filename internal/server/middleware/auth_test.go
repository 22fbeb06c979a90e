package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct{ id uuid.UUID }

func (c stubClaims) GetOperatorID() uuid.UUID { return c.id }

type stubValidator struct {
	id  uuid.UUID
	err error
}

func (v *stubValidator) ValidateToken(string) (OperatorIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return stubClaims{id: v.id}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	var seenID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetOperatorID(r)
		require.NoError(t, err)
		seenID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	AuthMiddleware(validator)(next).ServeHTTP(rec, req)
	return rec, seenID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	operatorID := uuid.New()
	rec, seenID := runAuth(t, &stubValidator{id: operatorID}, "Bearer token123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, operatorID, seenID)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	rec, _ := runAuth(t, &stubValidator{id: uuid.New()}, "bearer token123")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		validator TokenValidator
	}{
		{"missing header", "", &stubValidator{id: uuid.New()}},
		{"wrong scheme", "Basic dXNlcjpwdw==", &stubValidator{id: uuid.New()}},
		{"scheme without token", "Bearer", &stubValidator{id: uuid.New()}},
		{"extra fields", "Bearer one two", &stubValidator{id: uuid.New()}},
		{"validator failure", "Bearer bad", &stubValidator{err: errors.New("expired")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run")
			})
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetOperatorID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetOperatorID(req)
	assert.Error(t, err)
}
