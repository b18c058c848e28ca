package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apperr "github.com/jobportal/api/internal/errors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "username taken", err: apperr.ErrUsernameTaken, want: fiber.StatusConflict},
		{name: "email taken", err: apperr.ErrEmailTaken, want: fiber.StatusConflict},
		{name: "already applied", err: apperr.ErrAlreadyApplied, want: fiber.StatusConflict},
		{name: "invalid role", err: apperr.ErrInvalidRole, want: fiber.StatusBadRequest},
		{name: "invalid status", err: apperr.ErrInvalidStatus, want: fiber.StatusBadRequest},
		{name: "job inactive", err: apperr.ErrJobInactive, want: fiber.StatusBadRequest},
		{name: "only job seekers", err: apperr.ErrOnlyJobSeekers, want: fiber.StatusBadRequest},
		{name: "invalid credentials", err: apperr.ErrInvalidCredentials, want: fiber.StatusUnauthorized},
		{name: "account disabled", err: apperr.ErrAccountDisabled, want: fiber.StatusUnauthorized},
		{name: "refresh token not found", err: apperr.ErrRefreshTokenNotFound, want: fiber.StatusUnauthorized},
		{name: "refresh token revoked", err: apperr.ErrRefreshTokenRevoked, want: fiber.StatusUnauthorized},
		{name: "refresh token expired", err: apperr.ErrRefreshTokenExpired, want: fiber.StatusUnauthorized},
		{name: "user not found", err: apperr.ErrUserNotFound, want: fiber.StatusNotFound},
		{name: "job not found", err: apperr.ErrJobNotFound, want: fiber.StatusNotFound},
		{name: "application not found", err: apperr.ErrApplicationNotFound, want: fiber.StatusNotFound},
		{name: "recruiter not found", err: apperr.ErrRecruiterNotFound, want: fiber.StatusNotFound},
		{name: "forbidden", err: apperr.ErrForbidden, want: fiber.StatusForbidden},
		{name: "unknown error", err: errors.New("boom"), want: fiber.StatusInternalServerError},
		{name: "wrapped sentinel", err: fmt.Errorf("context: %w", apperr.ErrJobNotFound), want: fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.HTTPStatus(tt.err))
		})
	}
}
