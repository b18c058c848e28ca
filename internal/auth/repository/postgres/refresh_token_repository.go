package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jobportal/api/internal/auth/domain"
)

type RefreshTokenRepository struct {
	db PgxIface
}

func NewRefreshTokenRepository(db PgxIface) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Replace enforces the one-live-token-per-user invariant: the old row is
// deleted before the new one is inserted. Not wrapped in a cross-request
// lock; concurrent logins race and the last writer wins.
func (r *RefreshTokenRepository) Replace(ctx context.Context, rt *domain.RefreshToken) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, rt.UserID); err != nil {
		return fmt.Errorf("failed to delete old refresh tokens: %w", err)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, user_id, token, device_info, ip_address, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, rt.ID, rt.UserID, rt.Token, rt.DeviceInfo, rt.IPAddress, rt.ExpiresAt, rt.Revoked, rt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, device_info, ip_address, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1
		LIMIT 1
	`, token)

	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.Token, &rt.DeviceInfo, &rt.IPAddress,
		&rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

func (r *RefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	return err
}

func (r *RefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE
	`, userID)

	return err
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
