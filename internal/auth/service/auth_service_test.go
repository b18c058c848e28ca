package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal/api/internal/auth/domain"
	"github.com/jobportal/api/internal/auth/dto"
	"github.com/jobportal/api/internal/auth/service"
	apperr "github.com/jobportal/api/internal/errors"
	"github.com/jobportal/api/internal/mocks"
	"github.com/jobportal/api/pkg/constant"
)

func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUserRepository,
	*mocks.MockRefreshTokenRepository, *mocks.MockTokenGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockRefreshTokenRepository(ctrl)
	mockIssuer := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockUsers, mockTokens, mockIssuer, service.NewBcryptHasher())

	return s, mockUsers, mockTokens, mockIssuer
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()

	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)

	return string(digest)
}

func TestAuthService_Register_Success(t *testing.T) {
	s, mockUsers, mockTokens, mockIssuer := newAuthService(t)

	input := dto.RegisterInput{
		Username:  "johndoe",
		Email:     "john@example.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
		Role:      "job_seeker",
	}

	expiresAt := time.Now().Add(15 * time.Minute)

	// Mock expectations
	mockUsers.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, nil)
	mockUsers.EXPECT().ExistsByEmail(gomock.Any(), input.Email).Return(false, nil)
	mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockIssuer.EXPECT().Generate(gomock.Any()).Return("access-token", expiresAt, nil)
	mockIssuer.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	mockTokens.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := s.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, constant.TokenTypeBearer, resp.TokenType)
	assert.Greater(t, resp.ExpiresIn, int64(0))
	assert.Equal(t, input.Username, resp.User.Username)
	assert.Equal(t, constant.RoleJobSeeker, resp.User.Role)
	assert.True(t, resp.User.Enabled)
	assert.False(t, resp.User.EmailVerified)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	s, _, _, _ := newAuthService(t)

	input := dto.RegisterInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
		Role:     "SUPERUSER",
	}

	resp, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperr.ErrInvalidRole)
	assert.Nil(t, resp)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	input := dto.RegisterInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
		Role:     constant.RoleJobSeeker,
	}

	// Mock expectations
	mockUsers.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(true, nil)

	resp, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperr.ErrUsernameTaken)
	assert.Nil(t, resp)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	input := dto.RegisterInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
		Role:     constant.RoleRecruiter,
	}

	// Mock expectations
	mockUsers.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, nil)
	mockUsers.EXPECT().ExistsByEmail(gomock.Any(), input.Email).Return(true, nil)

	resp, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
	assert.Nil(t, resp)
}

func TestAuthService_Register_CreateError(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	input := dto.RegisterInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
		Role:     constant.RoleJobSeeker,
	}

	expectedErr := errors.New("database error")

	// Mock expectations
	mockUsers.EXPECT().ExistsByUsername(gomock.Any(), input.Username).Return(false, nil)
	mockUsers.EXPECT().ExistsByEmail(gomock.Any(), input.Email).Return(false, nil)
	mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expectedErr)

	resp, err := s.Register(context.Background(), input)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, resp)
}

func TestAuthService_Login_Success(t *testing.T) {
	s, mockUsers, mockTokens, mockIssuer := newAuthService(t)

	input := dto.LoginInput{
		UsernameOrEmail: "johndoe",
		Password:        "password123",
		IPAddress:       "203.0.113.7",
		DeviceInfo:      "test-agent",
	}

	user := &domain.User{
		ID:           "user-123",
		Username:     "johndoe",
		Email:        "john@example.com",
		PasswordHash: hashPassword(t, input.Password),
		Role:         constant.RoleJobSeeker,
		Enabled:      true,
	}

	expiresAt := time.Now().Add(15 * time.Minute)

	// Mock expectations
	mockUsers.EXPECT().GetByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail).Return(user, nil)
	mockTokens.EXPECT().RevokeAllByUserID(gomock.Any(), user.ID).Return(nil)
	mockUsers.EXPECT().UpdateLastLogin(gomock.Any(), user.ID, gomock.Any()).Return(nil)
	mockIssuer.EXPECT().Generate(user).Return("access-token", expiresAt, nil)
	mockIssuer.EXPECT().RefreshTokenTTL().Return(7 * 24 * time.Hour)
	mockTokens.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rt *domain.RefreshToken) error {
			assert.Equal(t, user.ID, rt.UserID)
			assert.Equal(t, input.DeviceInfo, rt.DeviceInfo)
			assert.Equal(t, input.IPAddress, rt.IPAddress)
			assert.False(t, rt.Revoked)
			assert.True(t, rt.ExpiresAt.After(time.Now()))
			return nil
		})

	resp, err := s.Login(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.Username, resp.User.Username)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	input := dto.LoginInput{UsernameOrEmail: "ghost", Password: "password123"}

	// Mock expectations
	mockUsers.EXPECT().GetByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail).Return(nil, nil)

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	input := dto.LoginInput{UsernameOrEmail: "johndoe", Password: "wrong-password"}

	user := &domain.User{
		ID:           "user-123",
		Username:     "johndoe",
		PasswordHash: hashPassword(t, "password123"),
		Enabled:      true,
	}

	// Mock expectations
	mockUsers.EXPECT().GetByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail).Return(user, nil)

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestAuthService_Login_AccountDisabled(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	input := dto.LoginInput{UsernameOrEmail: "johndoe", Password: "password123"}

	user := &domain.User{
		ID:           "user-123",
		Username:     "johndoe",
		PasswordHash: hashPassword(t, input.Password),
		Enabled:      false,
	}

	// Mock expectations
	mockUsers.EXPECT().GetByUsernameOrEmail(gomock.Any(), input.UsernameOrEmail).Return(user, nil)

	resp, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, apperr.ErrAccountDisabled)
	assert.Nil(t, resp)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	s, mockUsers, mockTokens, mockIssuer := newAuthService(t)

	stored := &domain.RefreshToken{
		ID:        "token-row-1",
		UserID:    "user-123",
		Token:     "opaque-refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	user := &domain.User{
		ID:       "user-123",
		Username: "johndoe",
		Role:     constant.RoleJobSeeker,
		Enabled:  true,
	}

	expiresAt := time.Now().Add(15 * time.Minute)

	// Mock expectations
	mockTokens.EXPECT().GetByToken(gomock.Any(), stored.Token).Return(stored, nil)
	mockUsers.EXPECT().GetByID(gomock.Any(), stored.UserID).Return(user, nil)
	mockIssuer.EXPECT().Generate(user).Return("new-access-token", expiresAt, nil)

	resp, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: stored.Token})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "new-access-token", resp.AccessToken)
	// Redeeming does not rotate the refresh token.
	assert.Equal(t, stored.Token, resp.RefreshToken)
	assert.Equal(t, user.Username, resp.User.Username)
}

func TestAuthService_Refresh_NotFound(t *testing.T) {
	s, _, mockTokens, _ := newAuthService(t)

	// Mock expectations
	mockTokens.EXPECT().GetByToken(gomock.Any(), "unknown").Return(nil, nil)

	resp, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "unknown"})

	assert.ErrorIs(t, err, apperr.ErrRefreshTokenNotFound)
	assert.Nil(t, resp)
}

func TestAuthService_Refresh_Revoked(t *testing.T) {
	s, _, mockTokens, _ := newAuthService(t)

	stored := &domain.RefreshToken{
		ID:        "token-row-1",
		UserID:    "user-123",
		Token:     "opaque-refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}

	// Mock expectations
	mockTokens.EXPECT().GetByToken(gomock.Any(), stored.Token).Return(stored, nil)

	resp, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: stored.Token})

	assert.ErrorIs(t, err, apperr.ErrRefreshTokenRevoked)
	assert.Nil(t, resp)
}

func TestAuthService_Refresh_ExpiredDeletesRow(t *testing.T) {
	s, _, mockTokens, _ := newAuthService(t)

	stored := &domain.RefreshToken{
		ID:        "token-row-1",
		UserID:    "user-123",
		Token:     "opaque-refresh-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	// Mock expectations
	mockTokens.EXPECT().GetByToken(gomock.Any(), stored.Token).Return(stored, nil)
	mockTokens.EXPECT().DeleteByID(gomock.Any(), stored.ID).Return(nil)

	resp, err := s.Refresh(context.Background(), dto.RefreshInput{RefreshToken: stored.Token})

	assert.ErrorIs(t, err, apperr.ErrRefreshTokenExpired)
	assert.Nil(t, resp)
}

func TestAuthService_Logout(t *testing.T) {
	s, _, mockTokens, _ := newAuthService(t)

	// Mock expectations
	mockTokens.EXPECT().RevokeAllByUserID(gomock.Any(), "user-123").Return(nil)

	err := s.Logout(context.Background(), "user-123")

	assert.NoError(t, err)
}

func TestAuthService_ValidateToken(t *testing.T) {
	s, _, _, mockIssuer := newAuthService(t)

	// Mock expectations
	mockIssuer.EXPECT().Validate("good").Return(true)
	mockIssuer.EXPECT().Validate("bad").Return(false)

	assert.True(t, s.ValidateToken("good"))
	assert.False(t, s.ValidateToken("bad"))
}

func TestAuthService_CurrentUser(t *testing.T) {
	s, mockUsers, _, _ := newAuthService(t)

	user := &domain.User{
		ID:       "user-123",
		Username: "johndoe",
		Email:    "john@example.com",
		Role:     constant.RoleJobSeeker,
	}

	// Mock expectations
	mockUsers.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
	mockUsers.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	out, err := s.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, out.Email)

	out, err = s.CurrentUser(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	assert.Nil(t, out)
}

func TestAuthService_PurgeExpiredTokens(t *testing.T) {
	s, _, mockTokens, _ := newAuthService(t)

	// Mock expectations
	mockTokens.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	removed, err := s.PurgeExpiredTokens(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
