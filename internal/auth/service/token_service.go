package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/lyzehq/auth-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lyzehq/auth-service/internal/auth/domain"
	autherror "github.com/lyzehq/auth-service/internal/errors"
)

type TokenGenerator interface {
	Generate(user *domain.User) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
	Expiry() time.Duration
}

// TokenService issues and verifies the stateless session tokens. There is no
// server-side session table: validity is entirely signature plus expiry.
type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (ts *TokenService) Generate(user *domain.User) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", err
	}

	return token, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.TokenExpiry
}

// Verify parses and validates the given session token string. Any failure
// (bad signature, expiry, wrong signing method) comes back as
// ErrInvalidToken with nil claims.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
