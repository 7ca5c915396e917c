package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/config"
)

// Token types carried in the "type" claim. Access tokens authorize API
// calls; refresh tokens are only accepted by the refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenManager issues and verifies HMAC signed token pairs.
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a TokenManager from service configuration.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.JWTSecret),
		issuer:     cfg.ServiceName,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}
}

type claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccess issues an access token for the user.
func (m *TokenManager) GenerateAccess(userID int) (string, error) {
	return m.generate(userID, TokenTypeAccess, m.accessTTL)
}

// GenerateRefresh issues a refresh token for the user and returns the
// token together with its expiry.
func (m *TokenManager) GenerateRefresh(userID int) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.refreshTTL)
	token, err := m.generate(userID, TokenTypeRefresh, m.refreshTTL)
	return token, expiresAt, err
}

func (m *TokenManager) generate(userID int, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// Verify checks the token signature, expiry and type and returns the
// user ID it was issued for. Expired tokens and tokens of the wrong
// type map to the matching service errors.
func (m *TokenManager) Verify(tokenString, wantType string) (int, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.TokenExpired()
		}
		return 0, apperrors.InvalidCredentials()
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return 0, apperrors.InvalidCredentials()
	}
	if c.TokenType != wantType {
		return 0, apperrors.InvalidTokenType()
	}

	userID, err := strconv.Atoi(c.Subject)
	if err != nil || userID <= 0 {
		return 0, apperrors.InvalidCredentials()
	}
	return userID, nil
}
