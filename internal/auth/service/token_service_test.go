package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/api/internal/auth/domain"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			secret:         "secret-key",
			accessMinutes:  15,
			refreshMinutes: 10080,
		},
		{
			name:           "empty secret",
			secret:         "",
			accessMinutes:  30,
			refreshMinutes: 2880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		accessMinutes int
		user          *domain.User
	}{
		{
			name:          "job seeker token",
			secret:        "test-secret-key-123",
			accessMinutes: 15,
			user: &domain.User{
				ID:       "user-123",
				Username: "johndoe",
				Role:     "JOB_SEEKER",
			},
		},
		{
			name:          "admin token",
			secret:        "test-secret-key-123",
			accessMinutes: 30,
			user: &domain.User{
				ID:       "admin-456",
				Username: "admin",
				Role:     "ADMIN",
			},
		},
		{
			name:          "empty user data",
			secret:        "test-secret-key-123",
			accessMinutes: 15,
			user:          &domain.User{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.accessMinutes, 10080)

			beforeGenerate := time.Now()
			tokenString, expiresAt, err := ts.Generate(tt.user)
			afterGenerate := time.Now()

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)

			wantMin := beforeGenerate.Add(time.Duration(tt.accessMinutes) * time.Minute)
			wantMax := afterGenerate.Add(time.Duration(tt.accessMinutes) * time.Minute)
			assert.False(t, expiresAt.Before(wantMin))
			assert.False(t, expiresAt.After(wantMax))

			claims, err := ts.Verify(tokenString)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, claims.UserID)
			assert.Equal(t, tt.user.Username, claims.Username)
			assert.Equal(t, tt.user.Role, claims.Role)
			assert.Equal(t, tt.user.ID, claims.Subject)
		})
	}
}

func TestTokenService_Verify(t *testing.T) {
	user := &domain.User{
		ID:       "user-123",
		Username: "johndoe",
		Role:     "RECRUITER",
	}

	t.Run("valid token", func(t *testing.T) {
		ts := NewTokenService("test-secret", 15, 10080)

		tokenString, _, err := ts.Generate(user)
		require.NoError(t, err)

		claims, err := ts.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Role, claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		ts := NewTokenService("test-secret", -1, 10080)

		tokenString, _, err := ts.Generate(user)
		require.NoError(t, err)

		claims, err := ts.Verify(tokenString)
		assert.Error(t, err)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		ts := NewTokenService("test-secret", 15, 10080)

		tokenString, _, err := ts.Generate(user)
		require.NoError(t, err)

		other := NewTokenService("different-secret", 15, 10080)
		claims, err := other.Verify(tokenString)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("malformed token", func(t *testing.T) {
		ts := NewTokenService("test-secret", 15, 10080)

		claims, err := ts.Verify("not.a.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		ts := NewTokenService("test-secret", 15, 10080)

		// alg=none token, signed with the empty signature.
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: user.ID})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := ts.Verify(tokenString)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestTokenService_Validate(t *testing.T) {
	user := &domain.User{ID: "user-123", Username: "johndoe", Role: "JOB_SEEKER"}

	ts := NewTokenService("test-secret", 15, 10080)

	tokenString, _, err := ts.Generate(user)
	require.NoError(t, err)

	assert.True(t, ts.Validate(tokenString))
	assert.False(t, ts.Validate(""))
	assert.False(t, ts.Validate("garbage"))

	expired := NewTokenService("test-secret", -1, 10080)
	expiredToken, _, err := expired.Generate(user)
	require.NoError(t, err)
	assert.False(t, ts.Validate(expiredToken))
}

func TestTokenService_TTLs(t *testing.T) {
	ts := NewTokenService("test-secret", 15, 10080)

	assert.Equal(t, 15*time.Minute, ts.AccessTokenTTL())
	assert.Equal(t, 10080*time.Minute, ts.RefreshTokenTTL())
}
