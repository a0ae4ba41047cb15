package stub

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hospitrack/ncs-console/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer mints and validates the access/refresh pair the login
// endpoint hands out.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type tokenClaims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Issue builds the pair for a freshly authenticated user.
func (i *TokenIssuer) Issue(u *model.User) (model.TokenResponse, error) {
	access, err := i.sign(u, "access", i.accessTTL)
	if err != nil {
		return model.TokenResponse{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := i.sign(u, "refresh", i.refreshTTL)
	if err != nil {
		return model.TokenResponse{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return model.TokenResponse{Access: access, Refresh: refresh}, nil
}

func (i *TokenIssuer) sign(u *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username:  u.Username,
		Role:      u.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate checks an access token and returns its claims. Refresh
// tokens are rejected here: they never authorize API calls.
func (i *TokenIssuer) Validate(token string) (*tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.TokenType != "access" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
