package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/api/internal/auth/domain"
	repo "github.com/jobportal/api/internal/auth/repository/postgres"
)

// TestReplace covers the delete-then-insert that keeps one live refresh token
// per user.
func TestReplace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()

	rt := &domain.RefreshToken{
		ID:        "rt-123",
		UserID:    "user-123",
		Token:     "opaque-token",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	insertArgs := []any{
		rt.ID, rt.UserID, rt.Token, rt.DeviceInfo, rt.IPAddress,
		rt.ExpiresAt, rt.Revoked, rt.CreatedAt,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id").
			WithArgs(rt.UserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO refresh_tokens").
			WithArgs(insertArgs...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Replace(ctx, rt)
		assert.NoError(t, err)
	})

	t.Run("delete error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id").
			WithArgs(rt.UserID).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Replace(ctx, rt)
		assert.Error(t, err)
	})

	t.Run("insert error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens WHERE user_id").
			WithArgs(rt.UserID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO refresh_tokens").
			WithArgs(insertArgs...).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Replace(ctx, rt)
		assert.Error(t, err)
	})
}

// TestGetByToken covers the ledger lookup at refresh time.
func TestGetByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()

	columns := []string{"id", "user_id", "token", "device_info", "ip_address", "expires_at", "revoked", "created_at"}
	expected := &domain.RefreshToken{
		ID:        "rt-123",
		UserID:    "user-123",
		Token:     "opaque-token",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs(expected.Token).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(expected.ID, expected.UserID, expected.Token, expected.DeviceInfo,
					expected.IPAddress, expected.ExpiresAt, expected.Revoked, expected.CreatedAt))

		rt, err := r.GetByToken(ctx, expected.Token)
		require.NoError(t, err)
		require.NotNil(t, rt)
		assert.Equal(t, expected.ID, rt.ID)
		assert.Equal(t, expected.UserID, rt.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("unknown").
			WillReturnError(pgx.ErrNoRows)

		rt, err := r.GetByToken(ctx, "unknown")
		require.NoError(t, err) // Should return nil token, nil error
		assert.Nil(t, rt)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs(expected.Token).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByToken(ctx, expected.Token)
		assert.Error(t, err)
	})
}

// TestRevokeAllByUserID covers the logout path.
func TestRevokeAllByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()

	mock.ExpectExec("UPDATE refresh_tokens SET revoked").
		WithArgs("user-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = r.RevokeAllByUserID(ctx, "user-123")
	assert.NoError(t, err)
}

// TestDeleteExpired covers the purge and its removed-row count.
func TestDeleteExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens WHERE expires_at").
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))

		removed, err := r.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens WHERE expires_at").
			WithArgs(now).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.DeleteExpired(ctx, now)
		assert.Error(t, err)
	})
}
