package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/bank-cards/internal/domain"
	"github.com/avc/bank-cards/internal/utils/jwt"
	"github.com/avc/bank-cards/internal/utils/password"
)

// ErrInvalidInput возвращается при некорректных регистрационных данных
var ErrInvalidInput = errors.New("invalid input")

// tokenType тип выдаваемого токена
const tokenType = "Bearer"

// AuthServiceConfig содержит настройки аутентификации
type AuthServiceConfig struct {
	MinPasswordLength int
}

// AuthService реализует domain.AuthService
type AuthService struct {
	userRepo       domain.UserRepository
	passwordHasher password.Hasher
	jwtManager     *jwt.Manager
	config         AuthServiceConfig
}

// NewAuthService создает новый AuthService
func NewAuthService(
	userRepo domain.UserRepository,
	passwordHasher password.Hasher,
	jwtManager *jwt.Manager,
	config AuthServiceConfig,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtManager:     jwtManager,
		config:         config,
	}
}

// Register регистрирует нового пользователя с ролью USER и выдает токен
func (s *AuthService) Register(ctx context.Context, username, email, userPassword string) (*domain.TokenPair, error) {
	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}
	if len(userPassword) < s.config.MinPasswordLength {
		return nil, ErrInvalidInput
	}

	hash, err := s.passwordHasher.Hash(userPassword)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to hash password for user %q: %w", username, err)
	}

	user, err := s.userRepo.CreateUser(ctx, username, hash, email, []domain.Role{domain.RoleUser})
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrUserExists) || errors.Is(err, domain.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to register user %q: %w", username, err)
	}

	return s.issueToken(user)
}

// Login аутентифицирует пользователя и выдает токен
func (s *AuthService) Login(ctx context.Context, username, userPassword string) (*domain.TokenPair, error) {
	if username == "" || userPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to get user %q: %w", username, err)
	}

	if err := s.passwordHasher.Check(user.PasswordHash, userPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth service: failed to check password for user %q: %w", username, err)
	}

	return s.issueToken(user)
}

// issueToken генерирует JWT токен для пользователя
func (s *AuthService) issueToken(user *domain.User) (*domain.TokenPair, error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to generate token for user %s: %w", user.ID, err)
	}

	return &domain.TokenPair{
		Token:     token,
		TokenType: tokenType,
		Username:  user.Username,
	}, nil
}
