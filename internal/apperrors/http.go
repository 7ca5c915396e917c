package apperrors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps any error from the service or repository layers to its
// transport status and user-visible message. The mapping is total: every
// declared kind resolves to exactly one status, and 500-class results carry
// a generic message so internal detail never leaks to clients.
func HTTPStatus(err error) (int, string) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return serviceStatus(svcErr)
	}

	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repositoryStatus(repoErr)
	}

	return http.StatusInternalServerError, "Internal server error"
}

func serviceStatus(err *ServiceError) (int, string) {
	switch err.Kind {
	case ServiceRepo:
		var repoErr *RepositoryError
		if errors.As(err.Err, &repoErr) {
			return repositoryStatus(repoErr)
		}
		return http.StatusInternalServerError, "Internal server error"
	case ServiceForbidden:
		return http.StatusForbidden, err.Message
	case ServiceInvalidCredentials:
		return http.StatusUnauthorized, "Invalid credentials"
	case ServiceValidation:
		return http.StatusBadRequest, err.Message
	case ServiceTokenExpired:
		return http.StatusUnauthorized, "Token has expired"
	case ServiceInvalidTokenType:
		return http.StatusUnauthorized, "Invalid token type"
	case ServiceNotFound:
		return http.StatusNotFound, err.Message
	case ServiceInternal:
		return http.StatusInternalServerError, "Internal server error"
	case ServiceCustom:
		return http.StatusInternalServerError, "Internal server error"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func repositoryStatus(err *RepositoryError) (int, string) {
	switch err.Kind {
	case RepoNotFound:
		return http.StatusNotFound, "Not found"
	case RepoConflict:
		return http.StatusConflict, err.Message
	case RepoForeignKey:
		return http.StatusBadRequest, "Foreign key violation: " + err.Message
	case RepoConnection:
		return http.StatusInternalServerError, "Internal server error"
	case RepoInternal:
		return http.StatusInternalServerError, "Internal server error"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
