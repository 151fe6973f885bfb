// Command seed imports the flat-file keyword/response record into the
// keyword_responses table so that server instances sharing a database
// answer from the same table.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"chatjpt/internal/config"
	"chatjpt/internal/db"
	"chatjpt/internal/responder"
	"chatjpt/internal/seed"
	"chatjpt/internal/validation"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pairs, err := seed.FileSource{Path: cfg.SeedFile}.Pairs(ctx)
	if err != nil {
		if errors.Is(err, seed.ErrNotFound) {
			log.Fatalf("Seed file %s does not exist", cfg.SeedFile)
		}
		log.Fatalf("Failed to read seed file: %v", err)
	}
	if err := check(pairs); err != nil {
		log.Fatalf("Refusing to import %s: %v", cfg.SeedFile, err)
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.ReplaceKeywordResponses(ctx, pairs); err != nil {
		log.Fatalf("Failed to import keyword responses: %v", err)
	}
	log.Printf("Imported %d keyword responses from %s", len(pairs)/2, cfg.SeedFile)
}

// check rejects sequences the engine would refuse and logs keywords that
// will never match a prompt token as written.
func check(pairs []string) error {
	if _, err := responder.New(pairs); err != nil {
		return err
	}
	for i := 0; i < len(pairs); i += 2 {
		if ok, msg := validation.ValidateKeyword(pairs[i]); !ok {
			log.Printf("Warning: keyword %q at position %d: %s", pairs[i], i/2, msg)
		}
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no keyword responses in record")
	}
	return nil
}
