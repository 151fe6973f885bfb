package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"chatjpt/internal/chat"
	"chatjpt/internal/config"
	"chatjpt/internal/db"
	"chatjpt/internal/handlers"
	"chatjpt/internal/history"
	"chatjpt/internal/jobs"
	"chatjpt/internal/metrics"
	"chatjpt/internal/responder"
	"chatjpt/internal/seed"
	"chatjpt/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load YAML config: %v", err)
	}

	// Optional database
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
	}

	// Seed data: flat file, then database table, then config.yaml
	sources := []seed.Source{seed.FileSource{Path: cfg.SeedFile}}
	if database != nil {
		sources = append(sources, database)
	}
	sources = append(sources, seed.Static(yamlCfg.Pairs()))

	engine, err := seed.Load(ctx, seed.Chain(sources...),
		responder.WithVocabulary(yamlCfg.FallbackVocabulary()),
		responder.WithMaxWords(yamlCfg.FallbackMaxWords()),
	)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	for _, k := range engine.Skipped() {
		log.Printf("Warning: keyword %q has no letters or digits and was skipped", k)
	}
	if engine.Len() == 0 {
		log.Printf("Warning: no keywords loaded from %s; every prompt gets a filler response", cfg.SeedFile)
	} else {
		log.Printf("Loaded %d keywords", engine.Len())
	}

	// Conversation history
	var store history.Store = history.FileStore{Path: cfg.HistoryFile}
	if cfg.UsePostgresHistory() {
		store = database
	}
	messages, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load conversation history: %v", err)
	}
	conversation := history.NewConversation(messages)
	log.Printf("Loaded %d history messages", conversation.Len())

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	var lookups metrics.LookupStore
	var pinger handlers.Pinger
	if database != nil {
		lookups = database
		pinger = database
	}
	chatMetrics := metrics.New(registry, lookups)

	service := chat.NewService(engine, conversation, chatMetrics)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, server.Deps{
		Chat:     service,
		DB:       pinger,
		Gatherer: registry,
	}); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	saver := jobs.NewHistorySaver(conversation, store, cfg.SaveInterval)
	saverDone := make(chan struct{})
	go func() {
		saver.Start(ctx)
		close(saverDone)
	}()

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Stopping the saver writes the history one last time.
	cancel()
	select {
	case <-saverDone:
	case <-time.After(15 * time.Second):
		log.Println("Timed out waiting for history save")
	}
	chatMetrics.Wait()
	log.Println("Server exited")
}
