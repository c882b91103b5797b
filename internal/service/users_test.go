package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc/bank-cards/internal/domain"
	domainmocks "github.com/avc/bank-cards/internal/domain/mocks"
)

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		user := &domain.User{ID: userID, Username: "testuser"}

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()

		result, err := svc.GetUser(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, user, result)
	})

	t.Run("Not found", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.GetUser(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		users := []*domain.User{
			{ID: uuid.New(), Username: "first"},
			{ID: uuid.New(), Username: "second"},
		}

		mockUserRepo.EXPECT().ListUsers(mock.Anything, 2, 4).Return(users, int64(10), nil).Once()

		page, err := svc.ListUsers(ctx, 2, 2)
		require.NoError(t, err)

		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.Size)
		assert.Equal(t, int64(10), page.Total)
		assert.Equal(t, users, page.Users)
	})

	t.Run("Defaults applied", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		mockUserRepo.EXPECT().ListUsers(mock.Anything, DefaultPageSize, 0).Return(nil, int64(0), nil).Once()

		page, err := svc.ListUsers(ctx, -5, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Page)
		assert.Equal(t, DefaultPageSize, page.Size)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		mockUserRepo.EXPECT().ListUsers(mock.Anything, DefaultPageSize, 0).
			Return(nil, int64(0), errors.New("db error")).Once()

		_, err := svc.ListUsers(ctx, 0, 0)
		assert.Error(t, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		mockUserRepo.EXPECT().DeleteUser(mock.Anything, userID).Return(nil).Once()

		err := svc.DeleteUser(ctx, userID)
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewUserService(mockUserRepo)

		mockUserRepo.EXPECT().DeleteUser(mock.Anything, userID).Return(domain.ErrUserNotFound).Once()

		err := svc.DeleteUser(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
