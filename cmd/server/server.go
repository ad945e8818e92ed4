package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/cors"

	"github.com/thereayou/devconnector/internal/cache"
	"github.com/thereayou/devconnector/internal/config"
	"github.com/thereayou/devconnector/internal/database"
	"github.com/thereayou/devconnector/internal/handlers"
	"github.com/thereayou/devconnector/internal/logger"
	"github.com/thereayou/devconnector/internal/middleware"
	"github.com/thereayou/devconnector/internal/mongodb"
	"github.com/thereayou/devconnector/internal/services"
	ws "github.com/thereayou/devconnector/internal/websocket"
	"github.com/thereayou/devconnector/pkg/auth"
)

type Server struct {
	Config     *config.Config
	Router     *gin.Engine
	HTTP       *http.Server
	DB         services.DatabaseService
	Redis      *redis.Client
	Blacklist  services.TokenBlacklist
	JWTManager *auth.JWTManager
	Hub        *ws.Hub
}

// NewServer поднимает хранилище, черный список токенов и роутер
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &Server{Config: cfg, DB: db}

	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		s.Redis = rdb
		s.Blacklist = cache.NewRedisBlacklist(rdb)
	} else {
		logger.LogW("REDIS_URL not set, token blacklist kept in memory")
		s.Blacklist = cache.NewMemoryBlacklist(10 * time.Minute)
	}

	s.JWTManager = auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	s.Hub = ws.NewHub()

	gin.SetMode(cfg.GinMode)
	s.Router = NewRouter(db, s.Blacklist, s.JWTManager, s.Hub, cfg.CORSOrigins)

	s.HTTP = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler(cfg.CORSOrigins, s.Router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// NewRouter собирает gin engine со всеми обработчиками
func NewRouter(db services.DatabaseService, blacklist services.TokenBlacklist, jwtMgr *auth.JWTManager, hub *ws.Hub, origins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	APIEndpoints(router, Handlers{
		Auth:      handlers.NewAuthHandler(db, jwtMgr, blacklist),
		Profile:   handlers.NewProfileHandler(db),
		Post:      handlers.NewPostHandler(db, hub),
		WebSocket: handlers.NewWebSocketHandler(hub, origins),
		Health:    handlers.NewHealthHandler(db),
	}, jwtMgr, blacklist)

	return router
}

func openStore(ctx context.Context, cfg *config.Config) (services.DatabaseService, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		logger.LogIf("connected to MongoDB database %s", cfg.MongoDatabase)
		return store, nil
	default:
		db, err := database.Connect(cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("%s connect: %w", cfg.DBDriver, err)
		}
		logger.LogIf("connected to %s database", cfg.DBDriver)
		return db, nil
	}
}

func corsHandler(origins []string, next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}
	if len(origins) > 0 {
		opts.AllowedOrigins = origins
	} else {
		opts.AllowedOrigins = []string{"*"}
		opts.AllowCredentials = false
	}
	return cors.New(opts).Handler(next)
}

// Run слушает порт до SIGINT/SIGTERM, затем аккуратно останавливается
func (s *Server) Run() error {
	go s.Hub.Run()

	errCh := make(chan error, 1)
	go func() {
		logger.LogIf("Server starting on port %s", s.Config.Port)
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			s.shutdown()
			return fmt.Errorf("server run: %w", err)
		}
	case sig := <-quit:
		logger.LogIf("received %s, shutting down", sig)
	}

	return s.shutdown()
}

func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.HTTP.Shutdown(ctx)
	s.Hub.Stop()

	if s.Redis != nil {
		if rerr := s.Redis.Close(); rerr != nil {
			logger.LogEf("redis close: %v", rerr)
		}
	}
	if derr := s.DB.Close(ctx); derr != nil {
		logger.LogEf("database close: %v", derr)
	}
	logger.Sync()
	return err
}
