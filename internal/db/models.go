package db

import (
	"time"
)

// User table. Rows are immutable after registration.
type User struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
}

// Video metadata. The binary payload lives in object storage under
// Bucket; the derived search document lives in the bleve index keyed
// by ID and is never read back as a column.
type Video struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	DurationSeconds int64     `gorm:"not null" json:"duration_seconds"`
	Bucket          string    `gorm:"type:char(36);not null" json:"bucket"`
	PublishedAt     time.Time `gorm:"autoCreateTime" json:"published_at"`
	AuthorID        uint64    `gorm:"not null;index" json:"author_id"`
}

// Like represents a user's reaction to a video.
//
// Composite PK: (UserID, VideoID)
//   - Ensures a single row per pair (overwrite guarantee).
//
// Fields:
//   - IsLiking: true for a like, false for a dislike. The absence of a
//     row means no reaction at all.
type Like struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	VideoID   uint64    `gorm:"primaryKey" json:"video_id"`
	IsLiking  bool      `gorm:"not null" json:"is_liking"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// VideoWithAuthor is the list/search DTO: the video flattened with its
// author attached. The author's password never serializes.
type VideoWithAuthor struct {
	Video
	Author User `json:"author"`
}

// UserWithVideos is the /me DTO.
type UserWithVideos struct {
	User
	Videos []Video `json:"videos"`
}
