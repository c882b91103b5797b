package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCipherKeyHex hex-представление 16-байтового ключа
const testCipherKeyHex = "31323334353637383930313233343536"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex)

	cfg, err := load([]string{"-d", "postgres://localhost/bankcards"})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.RunAddress)
	assert.Equal(t, "postgres://localhost/bankcards", cfg.DatabaseURI)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JWTTokenTTL)
	assert.Equal(t, 6, cfg.MinPasswordLength)
	assert.Equal(t, 2, cfg.WorkerPoolSize)
	assert.Equal(t, 100, cfg.WorkerQueueSize)
	assert.Equal(t, time.Hour, cfg.ExpireScanInterval)
	assert.Equal(t, 100, cfg.ExpireBatchLimit)
	assert.Equal(t, []byte("1234567890123456"), cfg.CardCipherKey)
}

func TestLoad_Flags(t *testing.T) {
	t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex)

	cfg, err := load([]string{"-a", ":9090", "-d", "postgres://localhost/bankcards"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
}

func TestLoad_EnvOverridesFlags(t *testing.T) {
	t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex)
	t.Setenv("RUN_ADDRESS", ":7070")
	t.Setenv("DATABASE_URI", "postgres://env/bankcards")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_TOKEN_TTL", "2h")
	t.Setenv("MIN_PASSWORD_LENGTH", "10")
	t.Setenv("WORKER_POOL_SIZE", "4")
	t.Setenv("WORKER_QUEUE_SIZE", "50")
	t.Setenv("EXPIRE_SCAN_INTERVAL", "30m")
	t.Setenv("EXPIRE_BATCH_LIMIT", "25")

	cfg, err := load([]string{"-a", ":9090", "-d", "postgres://flag/bankcards"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.RunAddress)
	assert.Equal(t, "postgres://env/bankcards", cfg.DatabaseURI)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTTokenTTL)
	assert.Equal(t, 10, cfg.MinPasswordLength)
	assert.Equal(t, 4, cfg.WorkerPoolSize)
	assert.Equal(t, 50, cfg.WorkerQueueSize)
	assert.Equal(t, 30*time.Minute, cfg.ExpireScanInterval)
	assert.Equal(t, 25, cfg.ExpireBatchLimit)
}

func TestLoad_AdminAccount(t *testing.T) {
	t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "admin-password")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")

	cfg, err := load([]string{"-d", "postgres://localhost/bankcards"})
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin-password", cfg.AdminPassword)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
}

func TestLoad_MissingDatabaseURI(t *testing.T) {
	t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex)

	_, err := load(nil)
	assert.Error(t, err)
}

func TestLoad_CipherKey(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		t.Setenv("CARD_CIPHER_KEY", "")

		_, err := load([]string{"-d", "postgres://localhost/bankcards"})
		assert.Error(t, err)
	})

	t.Run("Not hex", func(t *testing.T) {
		t.Setenv("CARD_CIPHER_KEY", "not-hex")

		_, err := load([]string{"-d", "postgres://localhost/bankcards"})
		assert.Error(t, err)
	})

	t.Run("Wrong length", func(t *testing.T) {
		t.Setenv("CARD_CIPHER_KEY", "313233")

		_, err := load([]string{"-d", "postgres://localhost/bankcards"})
		assert.Error(t, err)
	})

	t.Run("32 bytes", func(t *testing.T) {
		t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex+testCipherKeyHex)

		cfg, err := load([]string{"-d", "postgres://localhost/bankcards"})
		require.NoError(t, err)
		assert.Len(t, cfg.CardCipherKey, 32)
	})
}

func TestLoad_InvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("CARD_CIPHER_KEY", testCipherKeyHex)
	t.Setenv("JWT_TOKEN_TTL", "not-a-duration")
	t.Setenv("MIN_PASSWORD_LENGTH", "-5")
	t.Setenv("WORKER_POOL_SIZE", "zero")

	cfg, err := load([]string{"-d", "postgres://localhost/bankcards"})
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.JWTTokenTTL)
	assert.Equal(t, 6, cfg.MinPasswordLength)
	assert.Equal(t, 2, cfg.WorkerPoolSize)
}
