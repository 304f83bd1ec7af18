package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/db"
	"github.com/romch007/youtube/internal/repository"
)

func seedAuthor(t *testing.T, dbase *gorm.DB, username string) *db.User {
	t.Helper()
	user := &db.User{Username: username, Password: "hash"}
	require.NoError(t, dbase.Create(user).Error)
	return user
}

func insertVideo(t *testing.T, repo *repository.VideoRepository, authorID uint64, title, description string) *db.Video {
	t.Helper()
	video := &db.Video{
		Title:           title,
		Description:     description,
		DurationSeconds: 42,
		Bucket:          uuid.NewString(),
		AuthorID:        authorID,
	}
	require.NoError(t, repo.Insert(context.Background(), video))
	return video
}

func TestVideoInsertAssignsIDAndTimestamp(t *testing.T) {
	dbase := setupTestDB(t)
	repo := repository.NewVideoRepository(dbase, setupSearchIndex(t))
	author := seedAuthor(t, dbase, "alice")

	video := insertVideo(t, repo, author.ID, "Cats playing piano", "jazz duet")
	assert.NotZero(t, video.ID)
	assert.False(t, video.PublishedAt.IsZero())

	got, err := repo.FindByID(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cats playing piano", got.Title)
	assert.Equal(t, int64(42), got.DurationSeconds)
}

func TestVideoInsertRollsBackWhenIndexingFails(t *testing.T) {
	dbase := setupTestDB(t)
	idx := setupSearchIndex(t)
	repo := repository.NewVideoRepository(dbase, idx)
	author := seedAuthor(t, dbase, "alice")

	require.NoError(t, idx.Close())

	video := &db.Video{
		Title:    "Unindexable",
		Bucket:   uuid.NewString(),
		AuthorID: author.ID,
	}
	require.Error(t, repo.Insert(context.Background(), video))

	// the row must not outlive the failed index write
	var count int64
	require.NoError(t, dbase.Model(&db.Video{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVideoFindMissing(t *testing.T) {
	repo := repository.NewVideoRepository(setupTestDB(t), setupSearchIndex(t))

	_, err := repo.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVideoListAllJoinsAuthors(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewVideoRepository(dbase, setupSearchIndex(t))

	alice := seedAuthor(t, dbase, "alice")
	bob := seedAuthor(t, dbase, "bob")
	first := insertVideo(t, repo, alice.ID, "Sunset timelapse", "rooftop golden hour")
	second := insertVideo(t, repo, bob.ID, "Aquarium tour", "every tank in the aquarium")

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// insertion order, each with the right author
	assert.Equal(t, first.ID, list[0].Video.ID)
	assert.Equal(t, "alice", list[0].Author.Username)
	assert.Equal(t, second.ID, list[1].Video.ID)
	assert.Equal(t, "bob", list[1].Author.Username)
}

func TestVideoSearchRanksAndFilters(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewVideoRepository(dbase, setupSearchIndex(t))
	alice := seedAuthor(t, dbase, "alice")

	once := insertVideo(t, repo, alice.ID, "Piano lessons with guitar", "learning chords")
	twice := insertVideo(t, repo, alice.ID, "Piano lessons with piano", "learning chords")
	insertVideo(t, repo, alice.ID, "Sunset timelapse", "rooftop golden hour")

	results, err := repo.Search(ctx, "piano")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, twice.ID, results[0].Video.ID)
	assert.Equal(t, once.ID, results[1].Video.ID)
	assert.Equal(t, "alice", results[0].Author.Username)

	// no relevance, no result
	results, err = repo.Search(ctx, "xyz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestVideoListByAuthor(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewVideoRepository(dbase, setupSearchIndex(t))

	alice := seedAuthor(t, dbase, "alice")
	bob := seedAuthor(t, dbase, "bob")
	mine := insertVideo(t, repo, alice.ID, "Marathon diary", "week six")
	insertVideo(t, repo, bob.ID, "Street food", "night market")

	videos, err := repo.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, mine.ID, videos[0].ID)

	none, err := repo.ListByAuthor(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
