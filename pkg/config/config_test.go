package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "fx")
	t.Setenv("CACHE_TTL_SECONDS", "5")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "fx", cfg.Database.DBName)
	assert.Equal(t, 5*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "fx", SSLMode: "disable"}

	assert.Equal(t, "pgx5://u:p@db:5432/fx?sslmode=disable", c.URL("pgx5"))
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=fx sslmode=disable", c.DSN())
}
