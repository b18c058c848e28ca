package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a service error to its HTTP status code. Unknown errors
// fall through to 500 so handlers never leak internals as client faults.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrJobInactive),
		errors.Is(err, ErrOnlyJobSeekers):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountDisabled),
		errors.Is(err, ErrRefreshTokenNotFound),
		errors.Is(err, ErrRefreshTokenRevoked),
		errors.Is(err, ErrRefreshTokenExpired),
		errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrJobNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrRecruiterNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
