package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/models"
	appErr "github.com/loftbook/engine/pkg/errors"
	"github.com/loftbook/engine/pkg/utils"
)

var testSecret = []byte("unit-test-secret-key")

func TestRegister(t *testing.T) {
	t.Run("lowercases the email before storing", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "fancier@example.com" && u.PasswordHash != "" && u.PasswordHash != "hunter2secret"
		})).Return(nil)

		svc := NewAuthService(userRepo, testSecret, time.Hour)
		u, err := svc.Register(context.Background(), "  Fancier@Example.COM ", "hunter2secret")
		require.NoError(t, err)
		require.Equal(t, "fancier@example.com", u.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		svc := NewAuthService(userRepo, testSecret, time.Hour)

		_, err := svc.Register(context.Background(), "a@b.com", "short")
		require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(appErr.New(appErr.CodeConflict, "entity already exists"))

		svc := NewAuthService(userRepo, testSecret, time.Hour)
		_, err := svc.Register(context.Background(), "a@b.com", "hunter2secret")
		require.True(t, appErr.IsCode(err, appErr.CodeConflict))
		require.Contains(t, err.Error(), "email already registered")
	})
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("hunter2secret")
	require.NoError(t, err)
	userID := uuid.New()
	stored := &models.User{ID: userID, Email: "a@b.com", PasswordHash: hash}

	t.Run("issues a verifiable token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "a@b.com", mock.Anything).Return(nil, stored)

		svc := NewAuthService(userRepo, testSecret, time.Hour)
		tokenString, u, err := svc.Login(context.Background(), "a@b.com", "hunter2secret")
		require.NoError(t, err)
		require.Equal(t, userID, u.ID)

		parsed, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) { return testSecret, nil },
			jwt.WithValidMethods([]string{"HS256"}))
		require.NoError(t, err)
		sub, err := parsed.Claims.GetSubject()
		require.NoError(t, err)
		require.Equal(t, userID.String(), sub)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		knownRepo := new(mockUserRepository)
		knownRepo.On("GetByEmail", mock.Anything, "a@b.com", mock.Anything).Return(nil, stored)
		unknownRepo := new(mockUserRepository)
		unknownRepo.On("GetByEmail", mock.Anything, "nobody@b.com", mock.Anything).
			Return(appErr.New(appErr.CodeNotFound, "user not found"), nil)

		svc1 := NewAuthService(knownRepo, testSecret, time.Hour)
		_, _, err1 := svc1.Login(context.Background(), "a@b.com", "wrong-password")
		svc2 := NewAuthService(unknownRepo, testSecret, time.Hour)
		_, _, err2 := svc2.Login(context.Background(), "nobody@b.com", "whatever123")

		require.True(t, appErr.IsCode(err1, appErr.CodeUnauthorized))
		require.True(t, appErr.IsCode(err2, appErr.CodeUnauthorized))
		require.Equal(t, err1.Error(), err2.Error())
	})
}
