package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/domain"
	"github.com/avc/bank-cards/internal/handlers"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/auth/register", deps.handlers.auth.Register)
	r.Post("/api/auth/login", deps.handlers.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))

		// Операции пользователя со своими картами
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireRole(domain.RoleUser))
			r.Get("/api/cards", deps.handlers.cards.GetUserCards)
			r.Post("/api/cards/{id}/request-block", deps.handlers.cards.RequestBlock)
			r.Post("/api/cards/transfer", deps.handlers.cards.Transfer)
		})

		// Административные операции
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireRole(domain.RoleAdmin))
			r.Post("/api/cards", deps.handlers.cards.CreateCard)
			r.Put("/api/cards/{id}/block", deps.handlers.cards.BlockCard)
			r.Put("/api/cards/{id}/activate", deps.handlers.cards.ActivateCard)
			r.Delete("/api/cards/{id}", deps.handlers.cards.DeleteCard)

			r.Get("/api/users", deps.handlers.users.ListUsers)
			r.Get("/api/users/{id}", deps.handlers.users.GetUser)
			r.Delete("/api/users/{id}", deps.handlers.users.DeleteUser)
		})
	})
}
