package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/jobportal/api/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_refresh_token_repository.go -package=mocks github.com/jobportal/api/internal/auth/domain RefreshTokenRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	SearchByName(ctx context.Context, query string, limit, offset int) ([]User, int, error)
}

type RefreshTokenRepository interface {
	// Replace deletes any existing refresh token rows for the user before
	// inserting rt, keeping at most one live token per user.
	Replace(ctx context.Context, rt *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteByID(ctx context.Context, id string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PasswordHasher abstracts the password hashing primitive so the auth
// service never sees plaintext storage concerns.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}
