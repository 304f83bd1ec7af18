package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoIndexer receives the derived search document for each seeded
// video. Satisfied by internal/search.Index.
type VideoIndexer interface {
	Index(videoID uint64, title, description string) error
}

var seedTitles = []struct {
	title       string
	description string
}{
	{"Cats playing piano", "Two cats improvising a jazz duet on a grand piano"},
	{"Sunset timelapse", "Golden hour over the city skyline, shot from a rooftop"},
	{"Homemade pasta tutorial", "Rolling and cutting fresh tagliatelle from scratch"},
	{"Marathon training diary", "Week six of preparing for a first marathon"},
	{"Piano lessons for beginners", "Learning scales and simple chords on the piano"},
	{"Mountain bike trail run", "Helmet cam footage of a rocky alpine descent"},
	{"Aquarium tour", "A walk past every tank in the city aquarium"},
	{"Street food in Bangkok", "Night market stalls and what to order at each"},
}

// SeedDemoData resets the database and populates it with demo users,
// videos and reactions for local development.
//
// Behavior:
//  1. Clears existing data in `likes`, `videos` and `users`.
//  2. Creates 5 users (password "password") with hashed credentials.
//  3. Creates one video per seed title with a fresh bucket key, indexing
//     each search document through idx.
//  4. Generates random like/dislike reactions via the composite-PK upsert.
//
// Compatible with both MySQL and SQLite (AUTO_INCREMENT reset skipped for SQLite).
func SeedDemoData(db *gorm.DB, idx VideoIndexer, hashPassword func(string) (string, error)) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"likes", "videos", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE videos AUTO_INCREMENT = 1")
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'videos'")
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Println("Cleared existing data")

	// --- Seed users ---
	var users []User
	for i := 1; i <= 5; i++ {
		hash, err := hashPassword("password")
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user := User{
			Username: fmt.Sprintf("user%d", i),
			Password: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users.", len(users))

	// --- Seed videos ---
	var videos []Video
	for i, s := range seedTitles {
		video := Video{
			Title:           s.title,
			Description:     s.description,
			DurationSeconds: int64(30 + r.Intn(600)),
			Bucket:          uuid.NewString(),
			AuthorID:        users[i%len(users)].ID,
		}
		if err := db.Create(&video).Error; err != nil {
			return fmt.Errorf("failed to seed video: %w", err)
		}
		if err := idx.Index(video.ID, video.Title, video.Description); err != nil {
			return fmt.Errorf("failed to index video: %w", err)
		}
		videos = append(videos, video)
	}
	log.Printf("Seeded %d videos.", len(videos))

	// --- Seed reactions (~60% likes) ---
	for _, user := range users {
		for _, video := range videos {
			if r.Intn(100) < 50 {
				continue
			}
			like := Like{
				UserID:   user.ID,
				VideoID:  video.ID,
				IsLiking: r.Intn(100) < 60,
			}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"is_liking", "updated_at"}),
			}).Create(&like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}
		}
	}

	return nil
}
