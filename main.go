package main

import (
	"github.com/thereayou/devconnector/cmd/server"
	"github.com/thereayou/devconnector/internal/config"
	"github.com/thereayou/devconnector/internal/logger"
)

func main() {
	envLoaded := config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.InitZap()
		logger.Fatalf("config: %v", err)
	}

	logger.InitZap(logger.OptionLevel(cfg.LogLevel))
	defer logger.Sync()

	if !envLoaded {
		logger.LogI(".env not found, using environment variables")
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Fatalf("server init: %v", err)
	}
	if err := srv.Run(); err != nil {
		logger.Fatalf("%v", err)
	}
}
