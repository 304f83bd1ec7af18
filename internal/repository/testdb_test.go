package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/db"
	"github.com/romch007/youtube/internal/search"
)

// setupTestDB spins up an isolated in-memory SQLite database with the
// full schema. The pool is capped at one connection so concurrent
// writers queue on the pool instead of hitting SQLITE_BUSY.
func setupTestDB(t *testing.T) *gorm.DB {
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
	return database
}

func setupSearchIndex(t *testing.T) *search.Index {
	t.Helper()
	idx, err := search.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}
