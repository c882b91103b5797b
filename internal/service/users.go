package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avc/bank-cards/internal/domain"
)

// UserService реализует domain.UserService: административные
// операции над пользователями
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService создает новый UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUser получает пользователя по ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("user service: failed to get user %s: %w", id, err)
	}

	return user, nil
}

// ListUsers возвращает страницу пользователей
func (s *UserService) ListUsers(ctx context.Context, page, size int) (*domain.UserPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	users, total, err := s.userRepo.ListUsers(ctx, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("user service: failed to list users: %w", err)
	}

	return &domain.UserPage{
		Users: users,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// DeleteUser удаляет пользователя вместе с его картами
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.userRepo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("user service: failed to delete user %s: %w", id, err)
	}

	return nil
}
