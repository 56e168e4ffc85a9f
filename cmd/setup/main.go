// Command setup creates the shelf database if it is missing and applies the
// schema. With -reset the database is dropped and recreated first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SmartShelf_Go/internal/config"
	"github.com/osse101/SmartShelf_Go/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database before applying the schema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Database management happens from the server's default database
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	ident := pgx.Identifier{cfg.DBName}.Sanitize()

	if *reset {
		log.Printf("Terminating existing connections to database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			log.Printf("Warning: Failed to terminate connections: %v", err)
		}

		log.Printf("Dropping database %s if it exists...", cfg.DBName)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		log.Printf("Creating database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	} else {
		log.Printf("Database %s already exists.", cfg.DBName)
	}
	conn.Close(ctx)

	pool, err := database.NewPool(cfg.GetDBConnString(), 2, time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("Database setup complete.")
}
