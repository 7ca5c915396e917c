package apperrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
)

func TestWrapGorm(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.RepositoryErrorKind
	}{
		{"record not found", gorm.ErrRecordNotFound, apperrors.RepoNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, apperrors.RepoConflict},
		{"foreign key violated", gorm.ErrForeignKeyViolated, apperrors.RepoForeignKey},
		{"anything else", errors.New("connection reset"), apperrors.RepoInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperrors.WrapGorm(tt.err, "query users")
			assert.Equal(t, tt.want, got.Kind)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestValidationAggregatesFields(t *testing.T) {
	err := apperrors.Validation([]string{
		"email: must be a valid email address",
		"password: must be at least 8 characters",
		"firstname: is required",
	})

	assert.Equal(t,
		"Validation failed: email: must be a valid email address; password: must be at least 8 characters; firstname: is required",
		err.Message)
	assert.Len(t, err.Fields, 3)
}

func TestFromRepositoryKeepsCause(t *testing.T) {
	repoErr := apperrors.NewRepositoryError(apperrors.RepoConflict, "duplicate card", gorm.ErrDuplicatedKey)
	svcErr := apperrors.FromRepository(repoErr)

	assert.Equal(t, apperrors.ServiceRepo, svcErr.Kind)

	var unwrapped *apperrors.RepositoryError
	require.True(t, errors.As(svcErr, &unwrapped))
	assert.Equal(t, apperrors.RepoConflict, unwrapped.Kind)
}

func TestFromRepositoryFoldsForeignErrors(t *testing.T) {
	svcErr := apperrors.FromRepository(errors.New("not a repo error"))
	assert.Equal(t, apperrors.ServiceInternal, svcErr.Kind)
}

func TestIsKind(t *testing.T) {
	assert.True(t, apperrors.IsKind(apperrors.InvalidCredentials(), apperrors.ServiceInvalidCredentials))
	assert.False(t, apperrors.IsKind(apperrors.InvalidCredentials(), apperrors.ServiceForbidden))
	assert.False(t, apperrors.IsKind(errors.New("plain"), apperrors.ServiceInternal))
}
