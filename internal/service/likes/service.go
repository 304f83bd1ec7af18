package likes

import (
	"context"

	"github.com/romch007/youtube/internal/app"
	"github.com/romch007/youtube/internal/repository"
)

// Service implements the like/dislike state machine and the cached
// like counter.
type Service struct {
	appCtx *app.AppContext
	likes  *repository.LikeRepository
}

// NewService creates the likes service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		likes:  repository.NewLikeRepository(appCtx.DB),
	}
}

// SetReaction applies a user's reaction to a video. A non-nil value
// upserts the (user, video) row with the given polarity; nil removes
// the row. Both directions are idempotent, and re-sending the current
// state is not an error. The cached like count for the video is
// invalidated on every call.
func (s *Service) SetReaction(ctx context.Context, userID, videoID uint64, liking *bool) error {
	if liking == nil {
		if err := s.likes.Delete(ctx, userID, videoID); err != nil {
			return err
		}
	} else {
		if err := s.likes.Upsert(ctx, userID, videoID, *liking); err != nil {
			return err
		}
	}

	if err := s.appCtx.RedisCache.InvalidateLikeCount(ctx, videoID); err != nil {
		s.appCtx.Logger.Warn("cannot invalidate like count", "video_id", videoID, "error", err)
	}
	return nil
}

// Count returns how many users currently like the video, serving from
// the cache when possible and falling back to the database on a miss.
func (s *Service) Count(ctx context.Context, videoID uint64) (int64, error) {
	count, found, err := s.appCtx.RedisCache.GetLikeCount(ctx, videoID)
	if err != nil {
		s.appCtx.Logger.Warn("cannot read like count cache", "video_id", videoID, "error", err)
	} else if found {
		return count, nil
	}

	count, err = s.likes.CountForVideo(ctx, videoID)
	if err != nil {
		return 0, err
	}

	if err := s.appCtx.RedisCache.SetLikeCount(ctx, videoID, count); err != nil {
		s.appCtx.Logger.Warn("cannot write like count cache", "video_id", videoID, "error", err)
	}
	return count, nil
}
