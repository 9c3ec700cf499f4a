// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// site. It organizes routes into page and JSON API groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"swapstation/internal/handlers"
	"swapstation/internal/middleware"
	"swapstation/internal/nav"
	"swapstation/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, api *handlers.API, contact *handlers.Contact) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", handlers.Health)

	// Embedded static assets.
	staticRoot, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))

	// JSON API consumed by the locator map and news page enhancements.
	// CORS is open for GET-only data endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/stations", api.Stations)
		r.Get("/geography", api.Geography)
		r.Get("/locator/view", api.LocatorView)
		r.Get("/news", api.News)
		r.Get("/news/slide", api.FeaturedSlide)
	})

	// Contact form. Submissions are rate limited per client IP.
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)
	r.Get("/contact", contact.Show)
	r.With(contactLimiter.Middleware).Post("/contact", contact.Submit)

	// Pages.
	r.Get("/", public.Homepage)
	r.Get("/about", public.StaticPage(nav.PageAbout, "about", "About Us"))
	r.Get("/services", public.StaticPage(nav.PageServices, "services", "Our Services"))
	r.Get("/products", public.StaticPage(nav.PageProducts, "products", "Products"))
	r.Get("/team", public.StaticPage(nav.PageTeam, "team", "Our Team"))
	r.Get("/lease-to-own", public.StaticPage(nav.PageLeaseToOwn, "lease_to_own", "Lease to Own"))
	r.Get("/careers", public.StaticPage(nav.PageCareers, "careers", "Careers"))
	r.Get("/privacy", public.LegalPage(nav.PagePrivacy, "Privacy Policy",
		"We collect only the information needed to operate the swap network and respond to your enquiries."))
	r.Get("/terms", public.LegalPage(nav.PageTerms, "Terms of Service",
		"These terms govern your use of the SwapStation network, website and lease-to-own programme."))
	r.Get("/locator", public.Locator)

	r.Get("/news", public.News)
	r.Get("/news/category/{category}", public.NewsCategory)
	r.Get("/news/{slug}", public.Article)

	r.NotFound(public.NotFound)

	return r
}
