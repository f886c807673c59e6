package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating the
// session tokens handed out at login. Tokens identify users by username.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for the
	// given user. Only the access token carries the role claim.
	GenerateTokens(username string, role string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
