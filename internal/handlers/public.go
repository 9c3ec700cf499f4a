// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"swapstation/internal/cache"
	"swapstation/internal/models"
	"swapstation/internal/nav"
	"swapstation/internal/news"
	"swapstation/internal/newsfeed"
	"swapstation/internal/render"
	"swapstation/internal/stations"
)

// Public groups handlers for the public-facing site. Page handlers check
// the Valkey page cache before rendering and store results on miss; news
// handlers go through the feed cache so a flaky upstream never blocks a
// page load.
type Public struct {
	renderer  *render.Renderer
	feed      *newsfeed.Client
	pageCache *cache.PageCache
	feedCache *cache.FeedCache
	rotation  *news.Rotation
	interval  int // featured auto-advance interval in milliseconds
}

// NewPublic creates the public handler group. pageCache and feedCache may
// be backed by a nil client when Valkey is not configured.
func NewPublic(renderer *render.Renderer, feed *newsfeed.Client, pageCache *cache.PageCache, feedCache *cache.FeedCache, rotation *news.Rotation, intervalMS int) *Public {
	return &Public{
		renderer:  renderer,
		feed:      feed,
		pageCache: pageCache,
		feedCache: feedCache,
		rotation:  rotation,
		interval:  intervalMS,
	}
}

// theme reads the visitor's theme preference, from a ?theme= query
// parameter or a cookie. Unknown values fall back to light so the tile
// URL and cache key stay well-formed.
func theme(r *http.Request) string {
	if r.URL.Query().Get("theme") == "dark" {
		return "dark"
	}
	if c, err := r.Cookie("theme"); err == nil && c.Value == "dark" {
		return "dark"
	}
	return "light"
}

// articles returns the site's article list, preferring the feed cache,
// then the live feed. The bool reports whether the data came from the
// live feed (fallback data is never cached).
func (p *Public) articles(ctx context.Context) ([]models.Article, bool) {
	if cached, ok := p.feedCache.Get(ctx); ok {
		return cached, true
	}
	fetched, live := p.feed.FetchArticles(ctx)
	if live {
		p.feedCache.Set(ctx, fetched)
	}
	return fetched, live
}

// servePage renders a page through the page cache. Only pages whose data
// is stable between requests go through it; cacheable=false skips both
// lookup and store.
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, name string, data render.PageData, cacheable bool) {
	ctx := r.Context()
	key := cache.PageKey(r.URL.RequestURI(), data.Theme)

	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	html, err := p.renderer.Render(name, data)
	if err != nil {
		slog.Error("render page failed", "template", name, "error", err)
		p.serverError(w, r)
		return
	}

	if cacheable {
		p.pageCache.Set(ctx, key, html)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Homepage renders the landing page with the three most recent articles.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	all, live := p.articles(r.Context())
	latest := all
	if len(latest) > 3 {
		latest = latest[:3]
	}
	p.servePage(w, r, "home", render.PageData{
		Title: "Home",
		Page:  nav.PageHome,
		Theme: theme(r),
		Data:  map[string]any{"Articles": latest},
	}, live)
}

// StaticPage returns a handler for a context-free page rendered from a
// fixed template with no dynamic data.
func (p *Public) StaticPage(page nav.Page, template, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.servePage(w, r, template, render.PageData{
			Title: title,
			Page:  page,
			Theme: theme(r),
		}, true)
	}
}

// LegalPage returns a handler for the privacy and terms pages, which share
// one template.
func (p *Public) LegalPage(page nav.Page, heading, intro string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.servePage(w, r, "legal", render.PageData{
			Title: heading,
			Page:  page,
			Theme: theme(r),
			Data:  map[string]any{"Heading": heading, "Intro": intro},
		}, true)
	}
}

// News renders the news listing: the first four articles as the featured
// slider, the remainder as a filterable grid. Category multi-select comes
// from repeated ?cat= query values; ?show= carries the load-more cursor.
func (p *Public) News(w http.ResponseWriter, r *http.Request) {
	all, live := p.articles(r.Context())
	p.renderListing(w, r, all, live, r.URL.Query()["cat"])
}

// NewsCategory renders one category's articles from the full catalog,
// matched case-insensitively. Unlike the grid filter it includes featured
// articles and has no slider.
func (p *Public) NewsCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if err := nav.Validate(nav.PageNewsCategory, nav.ForCategory(category)); err != nil {
		p.NotFound(w, r)
		return
	}
	all, live := p.articles(r.Context())
	matched := news.InCategory(all, category)

	visible := news.PageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("show")); err == nil && v > news.PageSize {
		visible = v
	}
	shown := news.Paginate(matched, visible)

	loadMoreURL := ""
	if len(shown) < len(matched) {
		q := r.URL.Query()
		q.Set("show", strconv.Itoa(len(shown)+news.PageSize))
		loadMoreURL = r.URL.Path + "?" + q.Encode()
	}

	p.servePage(w, r, "news", render.PageData{
		Title: category,
		Page:  nav.PageNewsCategory,
		Theme: theme(r),
		Data: map[string]any{
			"Featured":         []models.Article{},
			"Slide":            0,
			"IntervalMS":       p.interval,
			"Categories":       news.Categories(news.GridItems(all)),
			"Selected":         map[string]bool{category: true},
			"ActiveCategories": []string{category},
			"Articles":         shown,
			"HasMore":          loadMoreURL != "",
			"LoadMoreURL":      loadMoreURL,
		},
	}, live)
}

func (p *Public) renderListing(w http.ResponseWriter, r *http.Request, all []models.Article, live bool, selected []string) {
	featured := news.Featured(all)
	grid := news.GridItems(all)
	filtered := news.Filter(grid, selected)

	visible := news.PageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("show")); err == nil && v > news.PageSize {
		visible = v
	}
	shown := news.Paginate(filtered, visible)

	selectedSet := make(map[string]bool, len(selected))
	for _, c := range selected {
		selectedSet[c] = true
	}

	p.rotation.Resize(len(featured))
	loadMoreURL := ""
	if len(shown) < len(filtered) {
		q := r.URL.Query()
		q.Set("show", strconv.Itoa(len(shown)+news.PageSize))
		loadMoreURL = r.URL.Path + "?" + q.Encode()
	}

	// Listing pages are cached only on live data; fallback content would
	// otherwise outlive the upstream outage.
	p.servePage(w, r, "news", render.PageData{
		Title: "News",
		Page:  nav.PageNews,
		Theme: theme(r),
		Data: map[string]any{
			"Featured":         featured,
			"Slide":            p.rotation.Index(),
			"IntervalMS":       p.interval,
			"Categories":       news.Categories(grid),
			"Selected":         selectedSet,
			"ActiveCategories": selected,
			"Articles":         shown,
			"HasMore":          loadMoreURL != "",
			"LoadMoreURL":      loadMoreURL,
		},
	}, live && len(selected) == 0)
}

// Article renders a single article resolved by slug. The body comes from
// the feed's per-article endpoint; when that fails the article still
// renders with placeholder copy rather than an error page.
func (p *Public) Article(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	if err := nav.Validate(nav.PageSingleNews, nav.ForArticle(slugParam)); err != nil {
		p.NotFound(w, r)
		return
	}

	all, live := p.articles(r.Context())
	var current *models.Article
	for i := range all {
		if all[i].Slug == slugParam {
			current = &all[i]
			break
		}
	}
	if current == nil {
		p.NotFound(w, r)
		return
	}

	body, err := p.feed.FetchArticleBody(r.Context(), slugParam)
	if err != nil || body == "" {
		slog.Warn("article body unavailable, using placeholder", "slug", slugParam, "error", err)
		body = newsfeed.PlaceholderBody
		live = false
	}

	p.servePage(w, r, "news_article", render.PageData{
		Title: current.Title,
		Page:  nav.PageSingleNews,
		Theme: theme(r),
		Data: map[string]any{
			"Article": *current,
			"Body":    body,
			"Related": news.Related(all, *current),
		},
	}, live)
}

// Locator renders the station locator page. Filters arrive as query
// parameters and flow through the view's state machine, so an LGA that
// does not belong to the chosen state is dropped rather than producing an
// impossible empty intersection.
func (p *Public) Locator(w http.ResponseWriter, r *http.Request) {
	v := stations.NewView()
	v.SetQuery(r.URL.Query().Get("q"))
	v.SetState(r.URL.Query().Get("state"))
	v.SetLGA(r.URL.Query().Get("lga"))

	query, state, lga := v.Filters()
	th := theme(r)

	p.servePage(w, r, "locator", render.PageData{
		Title: "Find a Station",
		Page:  nav.PageLocator,
		Theme: th,
		Data: map[string]any{
			"Query":    query,
			"State":    state,
			"LGA":      lga,
			"States":   stations.States(),
			"LGAs":     stations.LGAs(state),
			"Stations": v.Results(),
			"Viewport": v.Viewport(),
			"Focused":  v.Focused(),
			"TileURL":  stations.TileURL(th),
		},
	}, true)
}

// NotFound renders the 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	if err := p.renderer.Write(w, http.StatusNotFound, "notfound", render.PageData{
		Title: "Not Found",
		Theme: theme(r),
	}); err != nil {
		slog.Error("render 404 failed", "error", err)
		http.NotFound(w, r)
	}
}

func (p *Public) serverError(w http.ResponseWriter, r *http.Request) {
	html, err := p.renderer.Render("error", render.PageData{Title: "Error", Theme: theme(r)})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write(html)
}
