package service

import (
	"testing"
	"time"

	"bloghub/internal/config"
	"bloghub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	mockUserRepo.On("FindByUsername", "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register("testuser", "password123", "test@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_UsernameExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	mockUserRepo.On("FindByUsername", "taken").Return(&models.User{Username: "taken"}, nil)

	user, err := authService.Register("taken", "password123", "test@example.com")

	assert.ErrorIs(t, err, ErrNameInUse)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	mockUserRepo.On("FindByUsername", "testuser").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

	user, err := authService.Register("testuser", "password123", "taken@example.com")

	assert.ErrorIs(t, err, ErrEmailInUse)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := &models.User{
		ID:       "a0000000-0000-0000-0000-00000000000a",
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashed),
	}
	mockUserRepo.On("FindByUsername", "testuser").Return(stored, nil)
	mockRefreshTokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, refreshToken, user, err := authService.Login("testuser", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, stored.ID, user.ID)

	claims, err := authService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	mockRefreshTokenRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockUserRepo.On("FindByUsername", "testuser").Return(&models.User{
		Username: "testuser",
		Password: string(hashed),
	}, nil)

	_, _, _, err := authService.Login("testuser", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	mockUserRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := authService.Login("ghost", "password123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshAccessToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	stored := &models.User{
		ID:       "a0000000-0000-0000-0000-00000000000a",
		Username: "testuser",
		Email:    "test@example.com",
	}
	mockRefreshTokenRepo.On("FindByToken", "refresh-token").Return(&models.RefreshToken{
		ID:        "rt-1",
		UserID:    stored.ID,
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	mockUserRepo.On("FindByID", stored.ID).Return(stored, nil)

	accessToken, err := authService.RefreshAccessToken("refresh-token")

	assert.NoError(t, err)
	claims, err := authService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	mockRefreshTokenRepo.On("FindByToken", "stale").Return(&models.RefreshToken{
		ID:        "rt-2",
		UserID:    "a0000000-0000-0000-0000-00000000000a",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	mockRefreshTokenRepo.On("Delete", "rt-2").Return(nil)

	_, err := authService.RefreshAccessToken("stale")

	assert.ErrorIs(t, err, ErrExpiredToken)
	mockRefreshTokenRepo.AssertCalled(t, "Delete", "rt-2")
}

func TestRefreshAccessToken_Revoked(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	mockRefreshTokenRepo.On("FindByToken", "revoked").Return(&models.RefreshToken{
		ID:        "rt-3",
		Token:     "revoked",
		Revoked:   true,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	_, err := authService.RefreshAccessToken("revoked")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	_, err := authService.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, authTestConfig())

	otherCfg := authTestConfig()
	otherCfg.JWTSecret = "other-secret"
	otherService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, otherCfg)

	mockRefreshTokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	mockUserRepo.On("FindByUsername", "testuser").Return(&models.User{
		ID:       "a0000000-0000-0000-0000-00000000000a",
		Username: "testuser",
		Password: string(hashed),
	}, nil)

	accessToken, _, _, err := otherService.Login("testuser", "password123")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
