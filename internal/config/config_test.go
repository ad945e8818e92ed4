package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, "devconnector", cfg.MongoDatabase)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "5000")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/devconnector")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://devconnector.io ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://devconnector.io"}, cfg.CORSOrigins)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}},
		{name: "bad ttl", env: map[string]string{"JWT_SECRET": "s", "TOKEN_TTL": "soon"}},
		{name: "negative ttl", env: map[string]string{"JWT_SECRET": "s", "TOKEN_TTL": "-1m"}},
		{name: "unknown driver", env: map[string]string{"JWT_SECRET": "s", "DB_DRIVER": "cassandra"}},
		{name: "sql without url", env: map[string]string{"JWT_SECRET": "s", "DB_DRIVER": "sqlite", "DATABASE_URL": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOKEN_TTL", "")
			t.Setenv("DB_DRIVER", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
