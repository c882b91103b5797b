package app

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/config"
	"github.com/avc/bank-cards/internal/domain"
	"github.com/avc/bank-cards/internal/handlers"
	"github.com/avc/bank-cards/internal/repository/postgres"
	"github.com/avc/bank-cards/internal/service"
	"github.com/avc/bank-cards/internal/utils/cardcipher"
	"github.com/avc/bank-cards/internal/utils/jwt"
	"github.com/avc/bank-cards/internal/utils/password"
	"github.com/avc/bank-cards/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user domain.UserRepository
	card domain.CardRepository
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	card     domain.CardService
	transfer domain.TransferService
	user     domain.UserService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth   *handlers.AuthHandler
	cards  *handlers.CardsHandler
	users  *handlers.UsersHandler
	health *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos          *repositories
	services       *services
	handlers       *handlerSet
	jwtManager     *jwt.Manager
	passwordHasher password.Hasher
	workerPool     *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		user: postgres.NewUserRepository(dbPool),
		card: postgres.NewCardRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	codec, err := cardcipher.NewCodec(cfg.CardCipherKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create card number codec: %w", err)
	}

	// Создание сервисов
	authServiceConfig := service.AuthServiceConfig{
		MinPasswordLength: cfg.MinPasswordLength,
	}
	svcs := &services{
		auth:     service.NewAuthService(repos.user, passwordHasher, jwtManager, authServiceConfig),
		card:     service.NewCardService(repos.card, repos.user, codec),
		transfer: service.NewTransferService(repos.card, repos.user),
		user:     service.NewUserService(repos.user),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:   handlers.NewAuthHandler(svcs.auth, logger),
		cards:  handlers.NewCardsHandler(svcs.card, svcs.transfer, logger),
		users:  handlers.NewUsersHandler(svcs.user, logger),
		health: handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание наблюдателя за истечением срока действия карт
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.ExpireScanInterval,
		BatchLimit:   cfg.ExpireBatchLimit,
	}
	workerPool := worker.NewPool(workerPoolConfig, repos.card, logger)

	return &dependencies{
		repos:          repos,
		services:       svcs,
		handlers:       hdlrs,
		jwtManager:     jwtManager,
		passwordHasher: passwordHasher,
		workerPool:     workerPool,
	}, nil
}
