package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/pajter/scheisskopf/config"
	"github.com/pajter/scheisskopf/server"
	"github.com/pajter/scheisskopf/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	var logger *zap.Logger
	if cfg.Production() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("could not build logger: %s", err)
	}
	defer logger.Sync()

	srv := server.NewServer(store.New(logger), logger)
	srv.Addr = cfg.Addr

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
