package apperrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-gateway/internal/apperrors"
)

func TestHTTPStatusRepositoryKinds(t *testing.T) {
	tests := []struct {
		kind       apperrors.RepositoryErrorKind
		wantStatus int
		wantMsg    string
	}{
		{apperrors.RepoNotFound, http.StatusNotFound, "Not found"},
		{apperrors.RepoConflict, http.StatusConflict, "email already taken"},
		{apperrors.RepoForeignKey, http.StatusBadRequest, "Foreign key violation: email already taken"},
		{apperrors.RepoConnection, http.StatusInternalServerError, "Internal server error"},
		{apperrors.RepoInternal, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := apperrors.NewRepositoryError(tt.kind, "email already taken", nil)
			status, msg := apperrors.HTTPStatus(err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestHTTPStatusServiceKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"forbidden", apperrors.Forbidden("not yours"), http.StatusForbidden, "not yours"},
		{"invalid credentials", apperrors.InvalidCredentials(), http.StatusUnauthorized, "Invalid credentials"},
		{"validation", apperrors.Validation([]string{"email: invalid"}), http.StatusBadRequest, "Validation failed: email: invalid"},
		{"token expired", apperrors.TokenExpired(), http.StatusUnauthorized, "Token has expired"},
		{"invalid token type", apperrors.InvalidTokenType(), http.StatusUnauthorized, "Invalid token type"},
		{"not found", apperrors.NotFound("card not found"), http.StatusNotFound, "card not found"},
		{"internal hides detail", apperrors.Internal("db exploded", errors.New("boom")), http.StatusInternalServerError, "Internal server error"},
		{"custom hides detail", apperrors.Custom("weird state"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := apperrors.HTTPStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

// Every declared kind must resolve to a usable status; nothing may fall
// through to a zero status.
func TestHTTPStatusTotality(t *testing.T) {
	for _, kind := range apperrors.RepositoryErrorKinds {
		status, msg := apperrors.HTTPStatus(apperrors.NewRepositoryError(kind, "m", nil))
		assert.GreaterOrEqual(t, status, 400, "repository kind %s", kind)
		assert.NotEmpty(t, msg, "repository kind %s", kind)
	}
	for _, kind := range apperrors.ServiceErrorKinds {
		err := &apperrors.ServiceError{Kind: kind, Message: "m"}
		status, msg := apperrors.HTTPStatus(err)
		assert.GreaterOrEqual(t, status, 400, "service kind %s", kind)
		assert.NotEmpty(t, msg, "service kind %s", kind)
	}
}

// A repository cause wrapped by the service layer keeps the repository
// mapping.
func TestHTTPStatusUnwrapsRepositoryCause(t *testing.T) {
	repoErr := apperrors.NewRepositoryError(apperrors.RepoNotFound, "user not found", nil)
	svcErr := apperrors.FromRepository(repoErr)

	status, msg := apperrors.HTTPStatus(svcErr)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", msg)
}

func TestHTTPStatusUnknownError(t *testing.T) {
	status, msg := apperrors.HTTPStatus(errors.New("surprise"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", msg)
}
