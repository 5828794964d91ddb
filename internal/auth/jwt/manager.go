package jwtauth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xw1nchester/storefront-backend/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

// manager only verifies tokens. They are issued by the account service that
// shares the secret.
type manager struct {
	jwtConfig config.JWT
}

func NewManager(jwtConfig config.JWT) *manager {
	return &manager{
		jwtConfig: jwtConfig,
	}
}

type CustomClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

func (m *manager) ParseToken(tokenStr string) (int, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&CustomClaims{},
		func(token *jwt.Token) (any, error) {
			return []byte(m.jwtConfig.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID < 1 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
