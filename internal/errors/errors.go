package errors

import (
	"errors"
)

var (
	// conflicts
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrEmailTaken     = errors.New("email is already in use")
	ErrAlreadyApplied = errors.New("you have already applied for this job")

	// bad input
	ErrInvalidRole    = errors.New("unknown role")
	ErrInvalidStatus  = errors.New("unknown application status")
	ErrJobInactive    = errors.New("this job is no longer accepting applications")
	ErrOnlyJobSeekers = errors.New("only job seekers can apply for jobs")

	// unauthorized
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired, please login again")
	ErrMissingToken         = errors.New("missing or invalid authorization token")

	// not found
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrRecruiterNotFound   = errors.New("recruiter profile not found, please complete your profile first")

	// forbidden
	ErrForbidden = errors.New("you are not authorized to perform this action")
)
