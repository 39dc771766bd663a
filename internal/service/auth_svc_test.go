package service_test

import (
	"context"
	"testing"

	"adboard-service/internal/dto"
	"adboard-service/internal/errs"
	"adboard-service/internal/model"
	"adboard-service/internal/service"
	"adboard-service/internal/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	registration := dto.Register{
		Username:  "New@Example.com",
		Password:  "secret123",
		FirstName: "New",
		LastName:  "User",
		Phone:     "+200000",
	}

	t.Run("creates a user with hashed password and default role", func(t *testing.T) {
		store := servicetest.NewStore()
		svc := service.NewAuthService(store)

		user, err := svc.Register(ctx, registration)
		require.NoError(t, err)

		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.NotEqual(t, "secret123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	})

	t.Run("honours an explicit admin role", func(t *testing.T) {
		store := servicetest.NewStore()
		svc := service.NewAuthService(store)

		reg := registration
		reg.Role = "ADMIN"
		user, err := svc.Register(ctx, reg)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	t.Run("duplicate email is rejected case-insensitively", func(t *testing.T) {
		store := servicetest.NewStore()
		svc := service.NewAuthService(store)

		_, err := svc.Register(ctx, registration)
		require.NoError(t, err)

		dup := registration
		dup.Username = "NEW@EXAMPLE.COM"
		_, err = svc.Register(ctx, dup)
		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) *servicetest.Store {
		t.Helper()
		store := servicetest.NewStore()
		hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
		require.NoError(t, err)
		store.AddUser(model.User{Email: "user@example.com", Password: string(hash), Role: model.RoleUser})
		return store
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc := service.NewAuthService(newStore(t))
		user, err := svc.Login(ctx, "user@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		svc := service.NewAuthService(newStore(t))
		_, err := svc.Login(ctx, "USER@example.COM", "secret123")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := service.NewAuthService(newStore(t))
		_, err := svc.Login(ctx, "user@example.com", "wrong")
		assert.ErrorIs(t, err, errs.ErrIncorrectPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := service.NewAuthService(newStore(t))
		_, err := svc.Login(ctx, "ghost@example.com", "secret123")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
