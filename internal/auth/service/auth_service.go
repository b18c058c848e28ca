package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobportal/api/internal/auth/domain"
	"github.com/jobportal/api/internal/auth/dto"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/pkg/constant"
)

// AuthService orchestrates registration, login, refresh and logout over the
// credential store and the refresh token ledger.
type AuthService struct {
	users  domain.UserRepository
	tokens domain.RefreshTokenRepository
	issuer TokenGenerator
	hasher domain.PasswordHasher
}

func NewAuthService(users domain.UserRepository, tokens domain.RefreshTokenRepository,
	issuer TokenGenerator, hasher domain.PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		issuer: issuer,
		hasher: hasher,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	role := strings.ToUpper(input.Role)
	if !domain.ValidRole(role) {
		return nil, apperr.ErrInvalidRole
	}

	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  hash,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		PhoneNumber:   input.PhoneNumber,
		Role:          role,
		Enabled:       true,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user, "", "")
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, input.UsernameOrEmail)
	if err != nil {
		return nil, err
	}

	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	if !user.Enabled {
		return nil, apperr.ErrAccountDisabled
	}

	if err := s.tokens.RevokeAllByUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Printf("warn: failed to update last login for user %s: %v", user.ID, err)
	}

	return s.issueTokens(ctx, user, input.DeviceInfo, input.IPAddress)
}

// Refresh redeems a refresh token for a new access token. The refresh token
// itself is not rotated; rotation happens only on login.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthResponse, error) {
	token, err := s.tokens.GetByToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, apperr.ErrRefreshTokenNotFound
	}

	if token.Revoked {
		return nil, apperr.ErrRefreshTokenRevoked
	}

	if token.IsExpired(time.Now()) {
		if err := s.tokens.DeleteByID(ctx, token.ID); err != nil {
			log.Printf("warn: failed to delete expired refresh token %s: %v", token.ID, err)
		}
		return nil, apperr.ErrRefreshTokenExpired
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	accessToken, expiresAt, err := s.issuer.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: token.Token,
		TokenType:    constant.TokenTypeBearer,
		ExpiresIn:    int64(time.Until(expiresAt).Seconds()),
		User:         dto.NewUserOutput(user),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.tokens.RevokeAllByUserID(ctx, userID)
}

// ValidateToken never returns an error: malformed input is simply invalid.
func (s *AuthService) ValidateToken(token string) bool {
	return s.issuer.Validate(token)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	out := dto.NewUserOutput(user)

	return &out, nil
}

// PurgeExpiredTokens removes refresh token rows past expiry. Invoked from the
// admin surface; there is no in-process scheduler.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx, time.Now())
}

// issueTokens mints the access token and replaces the user's refresh token
// row. Two concurrent logins race on delete-then-insert; the last writer
// wins, which is acceptable for single-session-per-user semantics.
func (s *AuthService) issueTokens(ctx context.Context, user *domain.User, deviceInfo, ipAddress string) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := s.issuer.Generate(user)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	refreshToken := &domain.RefreshToken{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Token:      uuid.NewString(),
		DeviceInfo: deviceInfo,
		IPAddress:  ipAddress,
		ExpiresAt:  now.Add(s.issuer.RefreshTokenTTL()),
		CreatedAt:  now,
		Revoked:    false,
	}

	if err := s.tokens.Replace(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		TokenType:    constant.TokenTypeBearer,
		ExpiresIn:    int64(time.Until(expiresAt).Seconds()),
		User:         dto.NewUserOutput(user),
	}, nil
}
