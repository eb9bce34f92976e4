package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ADMIN_USERNAME", "boss")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, "boss", cfg.AdminUsername)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, "./uploads", cfg.UploadDir)
		assert.Equal(t, "https://portal.packzy.com/api/v1", cfg.CourierBaseURL)
		assert.Equal(t, 25, cfg.DBMaxOpenConns)
		assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	})

	t.Run("Pool overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DB_MAX_OPEN_CONNS", "50")
		t.Setenv("DB_CONN_MAX_LIFETIME", "5m")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxOpenConns)
		assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	})

	t.Run("Production needs admin hash", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("APP_ENV", "production")
		t.Setenv("ADMIN_PASSWORD_HASH", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ADMIN_PASSWORD_HASH")
	})

	t.Run("Missing JWT secret", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}
