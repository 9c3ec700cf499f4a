// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the SwapStation site server.
// It loads configuration, connects to optional backing services, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"swapstation/internal/cache"
	"swapstation/internal/config"
	"swapstation/internal/database"
	"swapstation/internal/handlers"
	"swapstation/internal/news"
	"swapstation/internal/newsfeed"
	"swapstation/internal/render"
	"swapstation/internal/router"
	"swapstation/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"news_api", cfg.NewsAPIBaseURL,
	)

	// PostgreSQL backs the contact enquiry store. The site runs without it;
	// submissions are then logged instead of persisted.
	var enquiryStore *store.EnquiryStore
	if cfg.HasDatabase() {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		enquiryStore = store.NewEnquiryStore(db)
	} else {
		slog.Warn("postgres not configured — enquiries will not be persisted")
	}

	// Valkey backs the page and feed caches. Both caches are nil-safe, so
	// the site also runs without it, just uncached.
	var valkeyClient *redis.Client
	if cfg.HasValkey() {
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured — running without page and feed caches")
	}
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)
	feedCache := cache.NewFeedCache(valkeyClient, cfg.NewsCacheTTL)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	feed := newsfeed.New(cfg.NewsAPIBaseURL, cfg.NewsTimeout)

	// The featured slider's auto-advance runs server-side so every visitor
	// sees the same slide.
	rotation := news.NewRotation(news.FeaturedCount)
	rotationCtx, stopRotation := context.WithCancel(context.Background())
	defer stopRotation()
	go rotation.Run(rotationCtx, cfg.FeaturedInterval)

	publicHandlers := handlers.NewPublic(renderer, feed, pageCache, feedCache,
		rotation, int(cfg.FeaturedInterval.Milliseconds()))
	apiHandlers := handlers.NewAPI(publicHandlers)
	contactHandlers := handlers.NewContact(renderer, enquiryStore)

	r := router.New(publicHandlers, apiHandlers, contactHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	stopRotation()

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
