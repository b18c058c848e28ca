package db

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal/api/pkg/constant"
)

// EnsureAdminUser creates the bootstrap admin account if it does not exist.
// Safe to run on every startup.
func EnsureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	row := pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", constant.DefaultAdminUsername)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("check admin exists: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, role, enabled, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'System', 'Administrator', $5, TRUE, TRUE, now(), now())
	`, uuid.NewString(), constant.DefaultAdminUsername, email, string(hash), constant.RoleAdmin)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Printf("Created admin user: %s", email)

	return nil
}
