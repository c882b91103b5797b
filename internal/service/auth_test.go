package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avc/bank-cards/internal/domain"
	domainmocks "github.com/avc/bank-cards/internal/domain/mocks"
	"github.com/avc/bank-cards/internal/utils/jwt"
	"github.com/avc/bank-cards/internal/utils/password"
)

func newAuthService(t *testing.T) (*AuthService, *domainmocks.UserRepositoryMock, *jwt.Manager) {
	t.Helper()

	mockUserRepo := domainmocks.NewUserRepositoryMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	hasher := password.NewBCryptHasher(bcrypt.MinCost)

	svc := NewAuthService(mockUserRepo, hasher, jwtManager, AuthServiceConfig{MinPasswordLength: 8})
	return svc, mockUserRepo, jwtManager
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockUserRepo, jwtManager := newAuthService(t)

		userID := uuid.New()

		mockUserRepo.EXPECT().
			CreateUser(mock.Anything, "testuser", mock.Anything, "test@example.com", []domain.Role{domain.RoleUser}).
			RunAndReturn(func(_ context.Context, username, hash, email string, roles []domain.Role) (*domain.User, error) {
				return &domain.User{
					ID:           userID,
					Username:     username,
					PasswordHash: hash,
					Email:        email,
					Roles:        roles,
				}, nil
			}).Once()

		pair, err := svc.Register(ctx, "testuser", "test@example.com", "password123")
		require.NoError(t, err)

		assert.Equal(t, "Bearer", pair.TokenType)
		assert.Equal(t, "testuser", pair.Username)

		identity, err := jwtManager.Validate(pair.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, []domain.Role{domain.RoleUser}, identity.Roles)
	})

	t.Run("Empty username", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Register(ctx, "", "test@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Empty email", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Register(ctx, "testuser", "", "password123")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Password too short", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Register(ctx, "testuser", "test@example.com", "short")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Username taken", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			CreateUser(mock.Anything, "testuser", mock.Anything, "test@example.com", []domain.Role{domain.RoleUser}).
			Return(nil, domain.ErrUserExists).Once()

		_, err := svc.Register(ctx, "testuser", "test@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("Email taken", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().
			CreateUser(mock.Anything, "testuser", mock.Anything, "test@example.com", []domain.Role{domain.RoleUser}).
			Return(nil, domain.ErrEmailExists).Once()

		_, err := svc.Register(ctx, "testuser", "test@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hasher := password.NewBCryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "testuser",
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleUser},
	}

	t.Run("Success", func(t *testing.T) {
		svc, mockUserRepo, jwtManager := newAuthService(t)

		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "testuser").Return(user, nil).Once()

		pair, err := svc.Login(ctx, "testuser", "password123")
		require.NoError(t, err)

		assert.Equal(t, "Bearer", pair.TokenType)
		assert.Equal(t, "testuser", pair.Username)

		identity, err := jwtManager.Validate(pair.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.Login(ctx, "missing", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "testuser").Return(user, nil).Once()

		_, err := svc.Login(ctx, "testuser", "wrongpassword")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, mockUserRepo, _ := newAuthService(t)

		mockUserRepo.EXPECT().GetUserByUsername(mock.Anything, "testuser").Return(nil, errors.New("db error")).Once()

		_, err := svc.Login(ctx, "testuser", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
