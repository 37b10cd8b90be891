package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/mocks"
)

func jwtTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "cofrat-test",
	}
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        "ana@cofrat.com.br",
		PasswordHash: string(hash),
		FullName:     "Ana Lima",
		Role:         domain.RoleAtendente,
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "senha-secreta")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := NewAuthService(repo, jwtTestConfig())
	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "senha-secreta"})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleAtendente, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "senha-secreta")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := NewAuthService(repo, jwtTestConfig())
	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nobody@cofrat.com.br").Return(nil, domain.ErrNotFound)

	svc := NewAuthService(repo, jwtTestConfig())
	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@cofrat.com.br", Password: "qualquer-coisa"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	user := testUser(t, "senha-secreta")
	user.IsActive = false
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := NewAuthService(repo, jwtTestConfig())
	_, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "senha-secreta"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	user := testUser(t, "senha-secreta")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	svc := NewAuthService(repo, jwtTestConfig())
	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "senha-secreta"})
	require.NoError(t, err)

	newPair, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newPair.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	user := testUser(t, "senha-secreta")
	repo := new(mocks.MockUserRepo)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := NewAuthService(repo, jwtTestConfig())
	pair, err := svc.Login(context.Background(), LoginInput{Email: user.Email, Password: "senha-secreta"})
	require.NoError(t, err)

	// An access token must not work as a refresh token.
	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(new(mocks.MockUserRepo), jwtTestConfig())
	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
