package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RepositoryErrorKind categorizes data-layer failures.
type RepositoryErrorKind string

const (
	RepoNotFound   RepositoryErrorKind = "NOT_FOUND"
	RepoConflict   RepositoryErrorKind = "CONFLICT"
	RepoForeignKey RepositoryErrorKind = "FOREIGN_KEY"
	RepoConnection RepositoryErrorKind = "CONNECTION"
	RepoInternal   RepositoryErrorKind = "INTERNAL"
)

// RepositoryErrorKinds lists every declared repository error kind.
var RepositoryErrorKinds = []RepositoryErrorKind{
	RepoNotFound,
	RepoConflict,
	RepoForeignKey,
	RepoConnection,
	RepoInternal,
}

// RepositoryError is the leaf cause produced by the data layer.
type RepositoryError struct {
	Kind    RepositoryErrorKind
	Message string
	Err     error
}

func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[repository][%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[repository][%s] %s", e.Kind, e.Message)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError builds a repository error with an explicit kind.
func NewRepositoryError(kind RepositoryErrorKind, message string, err error) *RepositoryError {
	return &RepositoryError{Kind: kind, Message: message, Err: err}
}

// WrapGorm translates a gorm error into the repository taxonomy. Requires
// gorm.Config.TranslateError so driver errors surface as gorm sentinels.
func WrapGorm(err error, message string) *RepositoryError {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &RepositoryError{Kind: RepoNotFound, Message: message, Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &RepositoryError{Kind: RepoConflict, Message: message, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &RepositoryError{Kind: RepoForeignKey, Message: message, Err: err}
	default:
		return &RepositoryError{Kind: RepoInternal, Message: message, Err: err}
	}
}

// ServiceErrorKind categorizes business-layer failures.
type ServiceErrorKind string

const (
	ServiceRepo               ServiceErrorKind = "REPOSITORY"
	ServiceForbidden          ServiceErrorKind = "FORBIDDEN"
	ServiceInvalidCredentials ServiceErrorKind = "INVALID_CREDENTIALS"
	ServiceValidation         ServiceErrorKind = "VALIDATION"
	ServiceTokenExpired       ServiceErrorKind = "TOKEN_EXPIRED"
	ServiceInvalidTokenType   ServiceErrorKind = "INVALID_TOKEN_TYPE"
	ServiceNotFound           ServiceErrorKind = "NOT_FOUND"
	ServiceInternal           ServiceErrorKind = "INTERNAL"
	ServiceCustom             ServiceErrorKind = "CUSTOM"
)

// ServiceErrorKinds lists every declared service error kind.
var ServiceErrorKinds = []ServiceErrorKind{
	ServiceRepo,
	ServiceForbidden,
	ServiceInvalidCredentials,
	ServiceValidation,
	ServiceTokenExpired,
	ServiceInvalidTokenType,
	ServiceNotFound,
	ServiceInternal,
	ServiceCustom,
}

// ServiceError is the business-layer error. A repository cause is wrapped
// transparently (Kind == ServiceRepo); other kinds introduce business
// failures of their own.
type ServiceError struct {
	Kind    ServiceErrorKind
	Message string
	Fields  []string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[service][%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[service][%s] %s", e.Kind, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// FromRepository wraps a repository error without discarding its cause. A
// non-repository error is folded into the internal kind so nothing escapes
// the taxonomy.
func FromRepository(err error) *ServiceError {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return &ServiceError{Kind: ServiceRepo, Message: repoErr.Message, Err: repoErr}
	}
	return &ServiceError{Kind: ServiceInternal, Message: "internal error", Err: err}
}

func Forbidden(message string) *ServiceError {
	return &ServiceError{Kind: ServiceForbidden, Message: message}
}

func InvalidCredentials() *ServiceError {
	return &ServiceError{Kind: ServiceInvalidCredentials, Message: "Invalid credentials"}
}

// Validation aggregates every failing field into a single error so the
// caller receives the complete correction list in one round trip.
func Validation(fields []string) *ServiceError {
	return &ServiceError{
		Kind:    ServiceValidation,
		Message: "Validation failed: " + strings.Join(fields, "; "),
		Fields:  fields,
	}
}

func TokenExpired() *ServiceError {
	return &ServiceError{Kind: ServiceTokenExpired, Message: "Token has expired"}
}

func InvalidTokenType() *ServiceError {
	return &ServiceError{Kind: ServiceInvalidTokenType, Message: "Invalid token type"}
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Kind: ServiceNotFound, Message: message}
}

func Internal(message string, err error) *ServiceError {
	return &ServiceError{Kind: ServiceInternal, Message: message, Err: err}
}

func Custom(message string) *ServiceError {
	return &ServiceError{Kind: ServiceCustom, Message: message}
}

// IsKind reports whether err is a ServiceError of the given kind.
func IsKind(err error, kind ServiceErrorKind) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Kind == kind
}

// LogError records a service error with its full cause chain.
func LogError(logger zerolog.Logger, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		logger.Error().
			Str("error_kind", string(svcErr.Kind)).
			Err(svcErr).
			Msg(svcErr.Message)
		return
	}
	logger.Error().Err(err).Msg("unclassified error")
}
