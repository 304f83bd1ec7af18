package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/auth"
	"github.com/romch007/youtube/internal/cache"
	"github.com/romch007/youtube/internal/search"
	"github.com/romch007/youtube/internal/storage"
)

// AppContext holds shared dependencies (DB, Redis, object storage,
// search index, token manager, logger).
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Storage    storage.ObjectStore
	Search     *search.Index
	Tokens     *auth.TokenManager
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(
	db *gorm.DB,
	rdb *cache.RedisCache,
	store storage.ObjectStore,
	idx *search.Index,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Storage:    store,
		Search:     idx,
		Tokens:     tokens,
		Logger:     logger,
	}
}
