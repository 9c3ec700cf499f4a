// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package newsfeed fetches the company news feed from the headless
// WordPress API and normalizes its records into the canonical
// models.Article shape. Any fetch or decode failure degrades to the
// bundled fallback catalog — the news pages never hard-fail on the
// remote feed.
package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"swapstation/internal/models"
)

// feedPath is the listing endpoint relative to the API base URL.
const feedPath = "/db?datatype=post&taxonomy=category"

// apiTerm is one taxonomy term attached to a feed record. Only the name is
// used; the first term becomes the article's display category.
type apiTerm struct {
	TermID   int    `json:"term_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

// apiNewsItem is the raw feed record shape. Terms and custom fields are
// optional and must be tolerated when absent.
type apiNewsItem struct {
	ID            int                 `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Excerpt       string              `json:"excerpt"`
	FeaturedImage string              `json:"featured_image"`
	Terms         []apiTerm           `json:"terms"`
	CustomFields  map[string][]string `json:"custom_fields"`
}

// apiResponse is the feed envelope.
type apiResponse struct {
	Data        []apiNewsItem `json:"data"`
	TotalPosts  int           `json:"total_posts"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
}

// postBody holds the candidate body fields of one post. The API is not
// consistent about which field carries the HTML body, so all known variants
// are decoded and probed in priority order.
type postBody struct {
	Content     string `json:"content"`
	PostContent string `json:"post_content"`
	FullContent string `json:"full_content"`
}

// postResponse is the per-article endpoint shape. Some deployments return
// the post at the top level, others wrap it in a data envelope; the
// envelope wins when present.
type postResponse struct {
	postBody
	Data postBody `json:"data"`
}

// body returns the first non-empty candidate, envelope first.
func (p postResponse) body() string {
	for _, candidate := range []string{
		p.Data.Content, p.Data.PostContent, p.Data.FullContent,
		p.Content, p.PostContent, p.FullContent,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Client talks to the headless news API.
type Client struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// New creates a news feed client for the given API base URL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// FetchArticles retrieves and normalizes the news feed. On any failure —
// network error, non-2xx status, malformed body — it logs the error and
// returns the full bundled fallback catalog. The second return value is
// true when live data was served.
func (c *Client) FetchArticles(ctx context.Context) ([]models.Article, bool) {
	articles, err := c.fetchLive(ctx)
	if err != nil {
		slog.Error("news feed fetch failed, serving fallback catalog", "error", err)
		return FallbackArticles(), false
	}
	return articles, true
}

// fetchLive performs the actual feed request and normalization.
func (c *Client) fetchLive(ctx context.Context) ([]models.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+feedPath, nil)
	if err != nil {
		return nil, fmt.Errorf("newsfeed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsfeed http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("newsfeed API error (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsfeed read body: %w", err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("newsfeed decode: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("newsfeed returned no records")
	}

	date := c.now().Format("January 2, 2006")
	articles := make([]models.Article, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		// Records without a title cannot be rendered in any grid.
		if strings.TrimSpace(item.Title) == "" {
			slog.Warn("newsfeed record missing title, skipped", "id", item.ID)
			continue
		}
		articles = append(articles, normalize(item, date))
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("newsfeed returned no usable records")
	}

	slog.Debug("news feed fetched", "articles", len(articles), "total_posts", envelope.TotalPosts)
	return articles, nil
}

// FetchArticleBody retrieves the full HTML body of one article by slug.
// The response may carry the body under content, post_content, or
// full_content, at the top level or inside a data envelope; candidates are
// probed in that order, envelope first. Returns an empty string and an
// error on failure so callers can substitute placeholder copy.
func (c *Client) FetchArticleBody(ctx context.Context, slug string) (string, error) {
	if slug == "" {
		return "", fmt.Errorf("newsfeed: empty slug")
	}

	endpoint := c.baseURL + "/post/" + url.PathEscape(slug)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("newsfeed post request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("newsfeed post http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("newsfeed post API error (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("newsfeed post read body: %w", err)
	}

	var post postResponse
	if err := json.Unmarshal(body, &post); err != nil {
		return "", fmt.Errorf("newsfeed post decode: %w", err)
	}

	if b := post.body(); b != "" {
		return b, nil
	}
	return "", fmt.Errorf("newsfeed post %q has no body content", slug)
}

// hellip matches the WordPress excerpt-truncation marker.
var hellip = regexp.MustCompile(`\[&hellip;\]`)

// htmlEntity matches residual named HTML entities in excerpts.
var htmlEntity = regexp.MustCompile(`(?i)&[a-z]+;`)

// normalize maps one raw feed record onto the canonical Article shape.
// The feed carries no publish dates, so every live article is stamped with
// the fetch day — a known limitation of the upstream API.
func normalize(item apiNewsItem, date string) models.Article {
	category := "News"
	if len(item.Terms) > 0 && item.Terms[0].Name != "" {
		category = item.Terms[0].Name
	}

	excerpt := hellip.ReplaceAllString(item.Excerpt, "...")
	excerpt = strings.TrimSpace(htmlEntity.ReplaceAllString(excerpt, ""))

	style := CategoryStyle(category)
	return models.Article{
		ID:          item.ID,
		Category:    category,
		Date:        date,
		Title:       item.Title,
		Excerpt:     excerpt,
		Image:       item.FeaturedImage,
		Slug:        item.Slug,
		Color:       style.Color,
		BgColor:     style.BgColor,
		BorderColor: style.BorderColor,
	}
}
