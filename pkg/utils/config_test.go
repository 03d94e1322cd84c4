package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "cinema-reservation", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, int64(20), cfg.RateLimit.Orders)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 3, cfg.Orders.PageSize)
	assert.Equal(t, 20, cfg.Orders.MaxPageSize)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Telemetry.Endpoint)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9000\nDB_NAME=cinema\nDB_USER=app\nREDIS_URL=localhost:6379\nRATE_LIMIT_WINDOW=30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "9100")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.App.Port, "environment overrides the file")
	assert.Equal(t, "cinema", cfg.Database.Name)
	assert.Equal(t, "localhost:6379", cfg.Redis.URL)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Contains(t, cfg.Database.DSN(), "dbname=cinema")
	assert.Contains(t, cfg.Database.DSN(), "user=app")
}

func TestLoadConfig_RejectsBadPageSizes(t *testing.T) {
	t.Setenv("ORDER_PAGE_SIZE", "30")
	t.Setenv("ORDER_MAX_PAGE_SIZE", "20")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
