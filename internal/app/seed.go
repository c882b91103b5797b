package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/config"
	"github.com/avc/bank-cards/internal/domain"
)

// seedAdmin создает начальную учетную запись администратора,
// если она задана в конфигурации и еще не существует
func seedAdmin(ctx context.Context, cfg *config.Config, deps *dependencies, logger *zap.Logger) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logger.Info("admin account is not configured, skipping seed")
		return nil
	}

	hash, err := deps.passwordHasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	email := cfg.AdminEmail
	if email == "" {
		email = cfg.AdminUsername + "@localhost"
	}

	_, err = deps.repos.user.CreateUser(ctx, cfg.AdminUsername, hash, email,
		[]domain.Role{domain.RoleAdmin, domain.RoleUser})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) || errors.Is(err, domain.ErrEmailExists) {
			logger.Info("admin account already exists", zap.String("username", cfg.AdminUsername))
			return nil
		}
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("admin account created", zap.String("username", cfg.AdminUsername))
	return nil
}
