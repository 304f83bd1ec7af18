package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/romch007/youtube/internal/db"
)

// LikeRepository provides data access methods for the Like model.
// It encapsulates the per-(user, video) reaction state machine.
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// Upsert inserts or updates the reaction of user -> video.
//
// Behavior:
//   - If the (user_id, video_id) pair exists, the row is updated with the
//     new is_liking value.
//   - If it doesn't exist, a new row is inserted.
//   - The composite PK plus the ON CONFLICT clause make this atomic, so
//     concurrent calls for the same pair never produce a second row.
func (r *LikeRepository) Upsert(ctx context.Context, userID, videoID uint64, isLiking bool) error {
	like := db.Like{
		UserID:   userID,
		VideoID:  videoID,
		IsLiking: isLiking,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_liking", "updated_at"}),
		}).
		Create(&like).Error
}

// Delete clears the reaction of user -> video. Deleting an absent row
// is a silent no-op, so the operation is idempotent.
func (r *LikeRepository) Delete(ctx context.Context, userID, videoID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&db.Like{}).Error
}

// Find returns the reaction row for the pair, or gorm.ErrRecordNotFound.
func (r *LikeRepository) Find(ctx context.Context, userID, videoID uint64) (*db.Like, error) {
	var like db.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// CountForVideo returns how many users currently like the given video.
func (r *LikeRepository) CountForVideo(ctx context.Context, videoID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("video_id = ? AND is_liking = ?", videoID, true).
		Count(&count).Error
	return count, err
}
