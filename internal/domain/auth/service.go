package auth

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
	infraauth "payment-gateway/internal/infrastructure/auth"
	"payment-gateway/internal/infrastructure/metrics"
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/identifier"
)

// UserStore is the slice of user persistence the auth flow needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
}

// RefreshTokenStore persists the single active refresh token per user.
type RefreshTokenStore interface {
	Upsert(ctx context.Context, t *model.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*model.RefreshToken, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

// Service implements register, login, refresh and identity lookup.
type Service struct {
	users  UserStore
	tokens RefreshTokenStore
	jwt    *infraauth.TokenManager
	hasher *infraauth.Hasher
	log    zerolog.Logger
}

// NewService wires the auth service.
func NewService(users UserStore, tokens RefreshTokenStore, jwt *infraauth.TokenManager, hasher *infraauth.Hasher, log zerolog.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		hasher: hasher,
		log:    log.With().Str("component", "auth-service").Logger(),
	}
}

// Register creates an account and returns its public shape.
func (s *Service) Register(ctx context.Context, req requests.RegisterRequest) (*responses.ApiResponse[responses.UserResponse], error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal("hash password", err)
	}

	row, err := s.users.Create(ctx, &model.User{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Password:    hashed,
		NocTransfer: identifier.NewNocTransfer(),
	})
	if err != nil {
		svcErr := apperrors.FromRepository(err)
		apperrors.LogError(s.log, svcErr)
		return nil, svcErr
	}

	s.log.Info().Int("user_id", row.ID).Msg("account registered")
	resp := responses.NewResponse("Successfully registered", responses.NewUserResponse(*row))
	return &resp, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req requests.LoginRequest) (*responses.ApiResponse[responses.TokenResponse], error) {
	row, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Warn().Str("email", req.Email).Msg("login for unknown email")
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return nil, apperrors.InvalidCredentials()
	}
	if !s.hasher.Compare(row.Password, req.Password) {
		s.log.Warn().Int("user_id", row.ID).Msg("login with wrong password")
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return nil, apperrors.InvalidCredentials()
	}

	pair, err := s.issuePair(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	resp := responses.NewResponse("Successfully logged in", *pair)
	return &resp, nil
}

// Refresh rotates the refresh token and issues a new pair. The presented
// token must verify as a refresh token and match the stored one.
func (s *Service) Refresh(ctx context.Context, req requests.RefreshTokenRequest) (*responses.ApiResponse[responses.TokenResponse], error) {
	userID, err := s.jwt.Verify(req.RefreshToken, infraauth.TokenTypeRefresh)
	if err != nil {
		apperrors.LogError(s.log, err)
		return nil, err
	}

	stored, err := s.tokens.FindByToken(ctx, req.RefreshToken)
	if err != nil || stored.UserID != userID {
		s.log.Warn().Int("user_id", userID).Msg("refresh with unknown token")
		return nil, apperrors.InvalidCredentials()
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.TokenExpired()
	}

	pair, err := s.issuePair(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := responses.NewResponse("Successfully refreshed token", *pair)
	return &resp, nil
}

// GetMe returns the account behind the access token.
func (s *Service) GetMe(ctx context.Context, userID int) (*responses.ApiResponse[responses.UserResponse], error) {
	row, err := s.users.FindByID(ctx, userID)
	if err != nil {
		svcErr := apperrors.FromRepository(err)
		apperrors.LogError(s.log, svcErr)
		return nil, svcErr
	}
	resp := responses.NewResponse("Successfully fetched identity", responses.NewUserResponse(*row))
	return &resp, nil
}

func (s *Service) issuePair(ctx context.Context, userID int) (*responses.TokenResponse, error) {
	access, err := s.jwt.GenerateAccess(userID)
	if err != nil {
		return nil, apperrors.Internal("issue access token", err)
	}
	refresh, expiresAt, err := s.jwt.GenerateRefresh(userID)
	if err != nil {
		return nil, apperrors.Internal("issue refresh token", err)
	}

	if err := s.tokens.Upsert(ctx, &model.RefreshToken{
		UserID:    userID,
		Token:     refresh,
		ExpiresAt: expiresAt,
	}); err != nil {
		svcErr := apperrors.FromRepository(err)
		apperrors.LogError(s.log, svcErr)
		return nil, svcErr
	}

	return &responses.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}
