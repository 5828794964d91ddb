package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/storefront-backend/internal/config"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims CustomClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func claimsFor(userID int, ttl time.Duration) CustomClaims {
	return CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	}
}

func TestParseToken(t *testing.T) {
	m := NewManager(config.JWT{Secret: secret})

	tests := []struct {
		name           string
		token          string
		expectedUserID int
		expectErr      bool
	}{
		{
			name:           "valid token",
			token:          sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(7, time.Hour)),
			expectedUserID: 7,
		},
		{
			name:      "expired token",
			token:     sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(7, -time.Hour)),
			expectErr: true,
		},
		{
			name:      "wrong secret",
			token:     sign(t, jwt.SigningMethodHS256, []byte("other"), claimsFor(7, time.Hour)),
			expectErr: true,
		},
		{
			name:      "unexpected signing method",
			token:     sign(t, jwt.SigningMethodHS512, []byte(secret), claimsFor(7, time.Hour)),
			expectErr: true,
		},
		{
			name:      "missing user id",
			token:     sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(0, time.Hour)),
			expectErr: true,
		},
		{
			name:      "garbage",
			token:     "not.a.token",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := m.ParseToken(tt.token)

			if tt.expectErr {
				require.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedUserID, userID)
		})
	}
}
