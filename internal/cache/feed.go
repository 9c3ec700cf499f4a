// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// feed.go caches the normalized article list in Valkey so a burst of page
// views doesn't hammer the upstream news API. Caching is an optimization
// only: the fallback catalog, not the cache, is the failure path, and
// fallback responses are never cached.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"swapstation/internal/models"
)

// feedKey is the single Valkey key holding the normalized article list.
const feedKey = "newsfeed:articles"

// DefaultFeedTTL is how long a fetched feed stays cached.
const DefaultFeedTTL = 5 * time.Minute

// FeedCache stores the normalized news feed in Valkey. Like PageCache,
// methods are no-ops on a nil receiver or a nil client.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a feed cache with the given TTL.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl == 0 {
		ttl = DefaultFeedTTL
	}
	return &FeedCache{client: client, ttl: ttl}
}

// Get returns the cached article list, or ok=false on miss or any error.
func (fc *FeedCache) Get(ctx context.Context) ([]models.Article, bool) {
	if fc == nil || fc.client == nil {
		return nil, false
	}
	raw, err := fc.client.Get(ctx, feedKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("feed cache get error", "error", err)
		return nil, false
	}

	var articles []models.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		slog.Warn("feed cache decode error", "error", err)
		return nil, false
	}
	if len(articles) == 0 {
		return nil, false
	}
	slog.Debug("feed cache hit", "articles", len(articles))
	return articles, true
}

// Set stores the article list with the configured TTL.
func (fc *FeedCache) Set(ctx context.Context, articles []models.Article) {
	if fc == nil || fc.client == nil || len(articles) == 0 {
		return
	}
	raw, err := json.Marshal(articles)
	if err != nil {
		slog.Warn("feed cache encode error", "error", err)
		return
	}
	if err := fc.client.Set(ctx, feedKey, raw, fc.ttl).Err(); err != nil {
		slog.Warn("feed cache set error", "error", err)
	}
}

// Invalidate drops the cached feed.
func (fc *FeedCache) Invalidate(ctx context.Context) {
	if fc == nil || fc.client == nil {
		return
	}
	if err := fc.client.Del(ctx, feedKey).Err(); err != nil {
		slog.Warn("feed cache invalidate error", "error", err)
	}
}
