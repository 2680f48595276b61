// Command migrate applies the SQL migrations under ./migrations to the
// database named by DATABASE_URL.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/user/postboard-go/config"
	"github.com/user/postboard-go/db"
)

func main() {
	path := flag.String("path", "./migrations", "directory containing migration files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := db.RunMigrations(cfg.DatabaseURL, *path); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")
}
