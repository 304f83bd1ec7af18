package main

import (
	"log"

	"github.com/romch007/youtube/internal/auth"
	"github.com/romch007/youtube/internal/config"
	"github.com/romch007/youtube/internal/db"
	"github.com/romch007/youtube/internal/search"
)

func main() {
	// Load configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	idx, err := search.Open(cfg.Search.IndexPath)
	if err != nil {
		log.Fatalf("failed to open search index: %v", err)
	}
	defer idx.Close()

	if err := db.SeedDemoData(database, idx, auth.HashPassword); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
