package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/romch007/youtube/internal/db"
	"github.com/romch007/youtube/internal/search"
)

// VideoRepository provides data access for videos and their derived
// search documents. The relational row and the search document are
// written together in Insert, so ranking never depends on lazily
// recomputed text.
type VideoRepository struct {
	db  *gorm.DB
	idx *search.Index
}

// NewVideoRepository creates a new repository bound to the given DB
// connection and search index.
func NewVideoRepository(database *gorm.DB, idx *search.Index) *VideoRepository {
	return &VideoRepository{db: database, idx: idx}
}

// Insert persists a new video and indexes its search document inside
// one transaction. The id and published_at are assigned by the
// database. An indexing failure rolls the row back, so a committed
// video is always searchable. The reverse gap (index entry committed,
// row rolled back on a late commit failure) leaves a dangling entry
// that Search filters out.
func (r *VideoRepository) Insert(ctx context.Context, video *db.Video) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(video).Error; err != nil {
			return err
		}
		if err := r.idx.Index(video.ID, video.Title, video.Description); err != nil {
			return fmt.Errorf("cannot index video %d: %w", video.ID, err)
		}
		return nil
	})
}

// FindByID returns the video with the given id, or gorm.ErrRecordNotFound.
func (r *VideoRepository) FindByID(ctx context.Context, id uint64) (*db.Video, error) {
	var video db.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// ListAll returns every video joined with its author, in insertion
// order (ascending id).
func (r *VideoRepository) ListAll(ctx context.Context) ([]db.VideoWithAuthor, error) {
	var videos []db.Video
	if err := r.db.WithContext(ctx).Order("id").Find(&videos).Error; err != nil {
		return nil, err
	}
	return r.attachAuthors(ctx, videos)
}

// Search returns the videos matching term joined with their authors,
// ordered by descending relevance (ties by ascending id).
func (r *VideoRepository) Search(ctx context.Context, term string) ([]db.VideoWithAuthor, error) {
	hits, err := r.idx.Search(term)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []db.VideoWithAuthor{}, nil
	}

	ids := make([]uint64, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.VideoID)
	}

	var videos []db.Video
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, err
	}

	// restore the ranked order; drop hits whose row vanished
	byID := make(map[uint64]db.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ranked := make([]db.Video, 0, len(hits))
	for _, h := range hits {
		if v, ok := byID[h.VideoID]; ok {
			ranked = append(ranked, v)
		}
	}

	return r.attachAuthors(ctx, ranked)
}

// ListByAuthor returns the videos uploaded by one user, in insertion order.
func (r *VideoRepository) ListByAuthor(ctx context.Context, authorID uint64) ([]db.Video, error) {
	videos := []db.Video{}
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id").
		Find(&videos).Error
	return videos, err
}

// attachAuthors joins authors onto videos with a single IN query.
func (r *VideoRepository) attachAuthors(ctx context.Context, videos []db.Video) ([]db.VideoWithAuthor, error) {
	result := make([]db.VideoWithAuthor, 0, len(videos))
	if len(videos) == 0 {
		return result, nil
	}

	authorIDs := make([]uint64, 0, len(videos))
	seen := make(map[uint64]bool, len(videos))
	for _, v := range videos {
		if !seen[v.AuthorID] {
			seen[v.AuthorID] = true
			authorIDs = append(authorIDs, v.AuthorID)
		}
	}

	var authors []db.User
	if err := r.db.WithContext(ctx).Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]db.User, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	for _, v := range videos {
		result = append(result, db.VideoWithAuthor{Video: v, Author: byID[v.AuthorID]})
	}
	return result, nil
}
