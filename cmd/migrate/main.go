package main

import (
	"log"
	"os"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/platform/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg := config.Load()

	if len(os.Args) < 2 {
		log.Fatal("Usage: ./migrate [up|down]")
	}
	command := os.Args[1]

	dbURL := "postgres://" + cfg.DBUser + ":" + cfg.DBPassword +
		"@" + cfg.DBHost + ":" + cfg.DBPort + "/" + cfg.DBName +
		"?sslmode=" + cfg.DBSslMode

	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		log.Fatalf("Cannot create migrate instance: %v", err)
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Fatalf("Unknown command: %s", command)
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration %s failed: %v", command, err)
	}
	log.Printf("Migration %s completed.", command)
}
