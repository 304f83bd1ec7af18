package videos

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/db"
	apperrors "github.com/romch007/youtube/internal/errors"
	"github.com/romch007/youtube/internal/media"
	"github.com/romch007/youtube/internal/repository"
)

// Service implements the video catalogue: listing and ranked search,
// single lookup and the upload ingestion pipeline.
type Service struct {
	appCtx *app.AppContext
	videos *repository.VideoRepository
}

// NewService creates the videos service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		videos: repository.NewVideoRepository(appCtx.DB, appCtx.Search),
	}
}

// List returns all videos with their authors. A non-empty search term
// narrows the result to full-text matches ordered by descending
// relevance; an empty or absent term returns everything unfiltered.
func (s *Service) List(ctx context.Context, searchTerm string) ([]db.VideoWithAuthor, error) {
	if searchTerm == "" {
		return s.videos.ListAll(ctx)
	}
	return s.videos.Search(ctx, searchTerm)
}

// Get returns one video by id, or NotFound.
func (s *Service) Get(ctx context.Context, id uint64) (*db.Video, error) {
	video, err := s.videos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindNotFound, "Not Found")
	} else if err != nil {
		return nil, err
	}
	return video, nil
}

// Upload runs the ingestion pipeline, strictly in order:
//
//  1. probe the container for its duration (InvalidMedia on garbage)
//  2. generate a fresh bucket key
//  3. stream the payload to object storage (StorageUnavailable on failure)
//  4. insert the metadata row and its search document
//
// When the insert fails after the object was stored, the object is left
// behind; there is no compensation step.
func (s *Service) Upload(
	ctx context.Context,
	author *db.User,
	title, description string,
	file io.ReadSeeker,
	size int64,
	contentType string,
) (*db.Video, error) {
	duration, err := media.ProbeDuration(file)
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "cannot rewind upload", err)
	}

	bucketID := uuid.NewString()

	if err := s.appCtx.Storage.Put(ctx, bucketID, file, size, contentType); err != nil {
		return nil, err
	}

	video := &db.Video{
		Title:           title,
		Description:     description,
		DurationSeconds: duration,
		Bucket:          bucketID,
		AuthorID:        author.ID,
	}
	if err := s.videos.Insert(ctx, video); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "cannot persist video", err)
	}

	s.appCtx.Logger.Info("video uploaded",
		"video_id", video.ID,
		"author_id", author.ID,
		"duration_seconds", duration,
		"bucket", bucketID,
	)
	return video, nil
}
