package main

import (
	"context"
	"log"

	"ai-tools-api/config"
	"ai-tools-api/pkg/database"
)

// Seeds the aitools collection and ensures indexes. Safe to run repeatedly:
// inserts happen only when the collection is empty.
func main() {
	cfg := config.LoadConfig()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		_ = database.Disconnect(ctx, db)
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	inserted, err := database.SeedTools(ctx, db)
	if err != nil {
		log.Fatalf("Failed to seed tools: %v", err)
	}

	if inserted == 0 {
		log.Println("Tools collection already seeded, nothing to do")
		return
	}
	log.Printf("Seeded %d tools", inserted)
}
