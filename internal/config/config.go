package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DBDriver      string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string

	JWTSecret string
	TokenTTL  time.Duration

	RedisURL    string
	CORSOrigins []string
}

// LoadEnv подгружает .env.local, затем .env; отсутствие файлов не ошибка
func LoadEnv() bool {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			return false
		}
	}
	return true
}

// Load читает конфигурацию из окружения
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		GinMode:       getEnv("GIN_MODE", "release"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverMongo)),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "devconnector"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}

	switch c.DBDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return errors.New("MONGODB_URI is not set")
		}
	case DriverPostgres, DriverSQLite:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
