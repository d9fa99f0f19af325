package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-testing"

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint
		role    string
		secret  string
		expiry  time.Duration
		wantErr bool
	}{
		{
			name:    "Valid token generation",
			userID:  1,
			role:    "user",
			secret:  testSecret,
			expiry:  time.Hour,
			wantErr: false,
		},
		{
			name:    "With admin role",
			userID:  2,
			role:    "admin",
			secret:  testSecret,
			expiry:  time.Hour,
			wantErr: false,
		},
		{
			name:    "With owner role",
			userID:  3,
			role:    "owner",
			secret:  testSecret,
			expiry:  time.Hour,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.userID, tt.role, tt.secret, tt.expiry)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	userID := uint(123)
	role := "user"

	token, err := GenerateToken(userID, role, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{
			name:    "Valid token",
			token:   token,
			secret:  testSecret,
			wantErr: nil,
		},
		{
			name:    "Invalid secret",
			token:   token,
			secret:  "wrong-secret",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Invalid token format",
			token:   "invalid.token.format",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Empty token",
			token:   "",
			secret:  testSecret,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, role, claims.Role)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken(1, "user", testSecret, 1*time.Nanosecond)
	require.NoError(t, err)

	// Wait a bit to ensure token expires
	time.Sleep(10 * time.Millisecond)

	claims, err := ValidateToken(token, testSecret)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestTokenClaims(t *testing.T) {
	userID := uint(42)
	role := "admin"

	token, err := GenerateToken(userID, role, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.IssuedAt.Before(claims.ExpiresAt.Time))
}

func TestDifferentSecrets(t *testing.T) {
	token, err := GenerateToken(1, "user", "secret1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret2")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
