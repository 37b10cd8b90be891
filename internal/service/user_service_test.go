package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/mocks"
)

func TestCreateUserHashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@cofrat.com.br" && u.IsActive && u.PasswordHash != "senha-secreta"
	})).Return(nil)

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "ana@cofrat.com.br",
		Password: "senha-secreta",
		FullName: "Ana Lima",
		Role:     domain.RoleAtendente,
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-secreta")))
	repo.AssertExpectations(t)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "ana@cofrat.com.br",
		Password: "senha-secreta",
		FullName: "Ana Lima",
		Role:     "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdateUserAppliesPartialFields(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)

	existing := &domain.User{
		ID:       uuid.New(),
		Email:    "ana@cofrat.com.br",
		FullName: "Ana Lima",
		Role:     domain.RoleAtendente,
		IsActive: true,
	}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	inactive := false
	updated, err := svc.Update(context.Background(), existing.ID, UpdateUserInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Ana Lima", updated.FullName)
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := NewUserService(repo)

	existing := &domain.User{ID: uuid.New(), Role: domain.RoleAtendente}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)

	bad := domain.UserRole("gerente")
	_, err := svc.Update(context.Background(), existing.ID, UpdateUserInput{Role: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	repo.AssertNotCalled(t, "Update")
}
