package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/castline/internal/bootstrap"
	"github.com/osse101/castline/internal/config"
	"github.com/osse101/castline/internal/validation"
)

// setup creates the database if needed, applies migrations and imports the JSON catalogs
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	ctx := context.Background()

	// 1. Connect to the default 'postgres' database to create the target database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Create it if missing
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		conn.Close(ctx)
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			conn.Close(ctx)
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Migrate the target database
	pool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println("Migrations applied.")

	// 4. Import catalogs from the configured files
	cat, err := bootstrap.SyncCatalog(ctx, cfg, pool, validation.NewSchemaValidator())
	pool.Close()
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("Imported %d species and %d locations.\n", cat.Species.Count(), cat.Locations.Count())
}
