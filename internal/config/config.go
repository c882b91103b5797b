package config

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string // Адрес и порт запуска сервиса
	DatabaseURI string // URI подключения к БД
	LogLevel    string // Уровень логирования

	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена

	// Симметричный ключ шифрования номеров карт (16/24/32 байта).
	// Задается один раз при старте и не ротируется во время работы.
	CardCipherKey []byte

	// Валидация
	MinPasswordLength int // Минимальная длина пароля

	// Наблюдатель за истечением срока действия карт
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди карт
	ExpireScanInterval time.Duration // Интервал сканирования просроченных карт
	ExpireBatchLimit   int           // Максимум карт за один скан

	// Учетная запись администратора, создаваемая при старте (опционально)
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// Load загружает конфигурацию из переменных окружения и флагов.
// Приоритет: env переменные > флаги > дефолтные значения.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{
		LogLevel:           "info",
		JWTTokenTTL:        24 * time.Hour,
		MinPasswordLength:  6,
		WorkerPoolSize:     2,
		WorkerQueueSize:    100,
		ExpireScanInterval: time.Hour,
		ExpireBatchLimit:   100,
	}

	fs := flag.NewFlagSet("bank-cards", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Секреты берутся только из env
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envTTL, ok := os.LookupEnv("JWT_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(envTTL); err == nil && ttl > 0 {
			cfg.JWTTokenTTL = ttl
		}
	}

	keyHex, ok := os.LookupEnv("CARD_CIPHER_KEY")
	if !ok {
		return nil, fmt.Errorf("card cipher key is required (use CARD_CIPHER_KEY env, hex-encoded)")
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("card cipher key must be hex-encoded: %w", err)
	}
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("card cipher key must be 16, 24 or 32 bytes, got %d", len(key))
	}
	cfg.CardCipherKey = key

	if envMinLen, ok := os.LookupEnv("MIN_PASSWORD_LENGTH"); ok {
		if minLen, err := strconv.Atoi(envMinLen); err == nil && minLen > 0 {
			cfg.MinPasswordLength = minLen
		}
	}

	if envPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("EXPIRE_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.ExpireScanInterval = interval
		}
	}

	if envBatchLimit, ok := os.LookupEnv("EXPIRE_BATCH_LIMIT"); ok {
		if limit, err := strconv.Atoi(envBatchLimit); err == nil && limit > 0 {
			cfg.ExpireBatchLimit = limit
		}
	}

	cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}
