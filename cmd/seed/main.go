// Command seed populates the database with the demo users and posts.
// Running it repeatedly is safe.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/user/postboard-go/config"
	"github.com/user/postboard-go/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Seed(ctx, pool); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("database seeded")
}
