// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"swapstation/internal/models"
)

// testValkeyClient returns a Valkey client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		keys = append(keys, feedKey)
		client.Del(ctx, keys...)
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestPageCache_RoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	key := PageKey("/locator", "dark")

	if _, ok := pc.Get(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}

	pc.Set(ctx, key, []byte("<html>locator</html>"))
	got, ok := pc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != "<html>locator</html>" {
		t.Errorf("got %q", got)
	}

	// The light-theme variant is a distinct key.
	if _, ok := pc.Get(ctx, PageKey("/locator", "")); ok {
		t.Error("theme variants must not share a cache entry")
	}

	pc.Invalidate(ctx, key)
	if _, ok := pc.Get(ctx, key); ok {
		t.Error("expected miss after Invalidate")
	}
}

func TestPageCache_InvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, time.Minute)
	ctx := context.Background()

	pc.Set(ctx, PageKey("/", ""), []byte("home"))
	pc.Set(ctx, PageKey("/news", ""), []byte("news"))

	pc.InvalidateAll(ctx)

	if _, ok := pc.Get(ctx, PageKey("/", "")); ok {
		t.Error("homepage survived InvalidateAll")
	}
	if _, ok := pc.Get(ctx, PageKey("/news", "")); ok {
		t.Error("news page survived InvalidateAll")
	}
}

func TestFeedCache_RoundTrip(t *testing.T) {
	client := testValkeyClient(t)
	fc := NewFeedCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := fc.Get(ctx); ok {
		t.Fatal("expected miss on empty cache")
	}

	articles := []models.Article{
		{ID: 1, Title: "Cached Story", Slug: "cached-story", Category: "Milestones"},
	}
	fc.Set(ctx, articles)

	got, ok := fc.Get(ctx)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 1 || got[0].Slug != "cached-story" {
		t.Errorf("got %+v", got)
	}

	fc.Invalidate(ctx)
	if _, ok := fc.Get(ctx); ok {
		t.Error("expected miss after Invalidate")
	}
}

// Nil caches must be inert: handlers are wired with nil when Valkey is
// not configured.
func TestNilCachesAreSafe(t *testing.T) {
	ctx := context.Background()

	var pc *PageCache
	if _, ok := pc.Get(ctx, "x"); ok {
		t.Error("nil PageCache returned a hit")
	}
	pc.Set(ctx, "x", []byte("y"))
	pc.Invalidate(ctx, "x")
	pc.InvalidateAll(ctx)

	var fc *FeedCache
	if _, ok := fc.Get(ctx); ok {
		t.Error("nil FeedCache returned a hit")
	}
	fc.Set(ctx, []models.Article{{ID: 1, Title: "t"}})
	fc.Invalidate(ctx)
}

// Caches constructed without a Valkey client must be inert too: main wires
// them unconditionally and leaves the client nil when VALKEY_HOST is unset.
func TestClientlessCachesAreSafe(t *testing.T) {
	ctx := context.Background()

	pc := NewPageCache(nil, time.Minute)
	if _, ok := pc.Get(ctx, "x"); ok {
		t.Error("clientless PageCache returned a hit")
	}
	pc.Set(ctx, "x", []byte("y"))
	pc.Invalidate(ctx, "x")
	pc.InvalidateAll(ctx)

	fc := NewFeedCache(nil, time.Minute)
	if _, ok := fc.Get(ctx); ok {
		t.Error("clientless FeedCache returned a hit")
	}
	fc.Set(ctx, []models.Article{{ID: 1, Title: "t"}})
	fc.Invalidate(ctx)
}
