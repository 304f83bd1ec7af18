package main

import (
	"context"
	"log"
	"os"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/auth"
	"github.com/romch007/youtube/internal/cache"
	"github.com/romch007/youtube/internal/config"
	"github.com/romch007/youtube/internal/db"
	"github.com/romch007/youtube/internal/logger"
	"github.com/romch007/youtube/internal/search"
	"github.com/romch007/youtube/internal/server"
	"github.com/romch007/youtube/internal/service/accounts"
	"github.com/romch007/youtube/internal/service/likes"
	"github.com/romch007/youtube/internal/service/videos"
	"github.com/romch007/youtube/internal/storage"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	slogger := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		slogger.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		slogger.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}

	store, err := storage.NewMinioStore(cfg)
	if err != nil {
		slogger.Error("failed to init object storage", "err", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		slogger.Error("failed to ensure bucket", "err", err)
		os.Exit(1)
	}

	idx, err := search.Open(cfg.Search.IndexPath)
	if err != nil {
		slogger.Error("failed to open search index", "err", err)
		os.Exit(1)
	}
	defer idx.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	appCtx := app.New(database, redisCache, store, idx, tokens, slogger)

	engine := server.NewEngine(appCtx,
		accounts.NewRegistrar(appCtx),
		videos.NewRegistrar(appCtx),
		likes.NewRegistrar(appCtx),
	)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	slogger.Info("starting HTTP server", "addr", addr)

	if err := server.Start(cfg, engine); err != nil {
		slogger.Error("failed to start HTTP server", "err", err)
		os.Exit(1)
	}
}
