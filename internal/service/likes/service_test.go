package likes_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/cache"
	"github.com/romch007/youtube/internal/db"
	"github.com/romch007/youtube/internal/service/likes"
)

func setupService(t *testing.T) (*likes.Service, *app.AppContext, *miniredis.Miniredis) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(&db.User{}, &db.Video{}, &db.Like{}))

	mr := miniredis.RunT(t)
	rdb := &cache.RedisCache{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	appCtx := app.New(
		database,
		rdb,
		nil,
		nil,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return likes.NewService(appCtx), appCtx, mr
}

func countRows(t *testing.T, appCtx *app.AppContext, videoID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, appCtx.DB.Model(&db.Like{}).
		Where("video_id = ?", videoID).Count(&count).Error)
	return count
}

func boolPtr(b bool) *bool { return &b }

func TestSetReactionLike(t *testing.T) {
	svc, appCtx, _ := setupService(t)

	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))

	var like db.Like
	require.NoError(t, appCtx.DB.First(&like, "user_id = ? AND video_id = ?", 1, 10).Error)
	require.True(t, like.IsLiking)
}

func TestSetReactionFlipKeepsSingleRow(t *testing.T) {
	svc, appCtx, _ := setupService(t)

	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))
	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(false)))

	require.Equal(t, int64(1), countRows(t, appCtx, 10))

	var like db.Like
	require.NoError(t, appCtx.DB.First(&like, "user_id = ? AND video_id = ?", 1, 10).Error)
	require.False(t, like.IsLiking)
}

func TestSetReactionRepeatIsIdempotent(t *testing.T) {
	svc, appCtx, _ := setupService(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))
	}
	require.Equal(t, int64(1), countRows(t, appCtx, 10))
}

func TestSetReactionNilClears(t *testing.T) {
	svc, appCtx, _ := setupService(t)

	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))
	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, nil))
	require.Equal(t, int64(0), countRows(t, appCtx, 10))

	// clearing an absent reaction is not an error
	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, nil))
}

func TestCountOnlyLikes(t *testing.T) {
	svc, _, _ := setupService(t)

	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))
	require.NoError(t, svc.SetReaction(context.Background(), 2, 10, boolPtr(true)))
	require.NoError(t, svc.SetReaction(context.Background(), 3, 10, boolPtr(false)))
	require.NoError(t, svc.SetReaction(context.Background(), 4, 99, boolPtr(true)))

	count, err := svc.Count(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestCountPopulatesCache(t *testing.T) {
	svc, appCtx, mr := setupService(t)

	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))

	count, err := svc.Count(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	key := appCtx.RedisCache.KeyForLikeCount(10)
	cached, err := mr.Get(key)
	require.NoError(t, err)
	require.Equal(t, "1", cached)
	require.Equal(t, cache.LikeCountTTL, mr.TTL(key))
}

func TestCountServesFromCache(t *testing.T) {
	svc, appCtx, mr := setupService(t)

	// stale value on purpose: a cache hit must short-circuit the DB
	require.NoError(t, mr.Set(appCtx.RedisCache.KeyForLikeCount(10), "7"))

	count, err := svc.Count(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(7), count)
}

func TestSetReactionInvalidatesCache(t *testing.T) {
	svc, appCtx, mr := setupService(t)

	require.NoError(t, mr.Set(appCtx.RedisCache.KeyForLikeCount(10), "7"))
	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))
	require.False(t, mr.Exists(appCtx.RedisCache.KeyForLikeCount(10)))

	count, err := svc.Count(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestSetReactionSurvivesRedisOutage(t *testing.T) {
	svc, appCtx, mr := setupService(t)
	mr.Close()

	// the write path treats cache invalidation as best effort
	require.NoError(t, svc.SetReaction(context.Background(), 1, 10, boolPtr(true)))
	require.Equal(t, int64(1), countRows(t, appCtx, 10))

	count, err := svc.Count(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
