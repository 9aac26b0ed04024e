package main

import (
	"net/http"
	"os"

	"artregistry/internal/app/server/api"
	"artregistry/internal/app/server/config"
	"artregistry/internal/infrastructure/storage/postgres"
	"artregistry/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	mux := api.New(storage, log)

	log.Info("art registry listening", "address", cfg.Server.RunAddress, "env", cfg.Env)
	if err := http.ListenAndServe(cfg.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
