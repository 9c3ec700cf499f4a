// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package nav defines the site's page enumeration, the typed navigation
// payload carried by context-dependent pages, and the page ↔ URL mapping.
// Pages are addressed by real URLs so every view is linkable and browser
// history works; scroll position resets naturally with each full page load.
package nav

import (
	"fmt"
	"net/url"
)

// Page identifies one site page.
type Page string

// The full page enumeration. Exactly one page is rendered per request.
const (
	PageHome         Page = "home"
	PageAbout        Page = "about"
	PageServices     Page = "services"
	PageContact      Page = "contact"
	PageLocator      Page = "locator"
	PageTeam         Page = "team"
	PageProducts     Page = "products"
	PageNews         Page = "news"
	PageSingleNews   Page = "single-news"
	PageNewsCategory Page = "news-category"
	PagePrivacy      Page = "privacy"
	PageTerms        Page = "terms"
	PageLeaseToOwn   Page = "lease-to-own"
	PageCareers      Page = "careers"
)

// PayloadKind tags the navigation payload union.
type PayloadKind string

const (
	KindNone     PayloadKind = "none"
	KindArticle  PayloadKind = "article"
	KindCategory PayloadKind = "category"
)

// Payload is the closed tagged union carried by pages that need context:
// the single-article page needs an article slug, the category page needs a
// category label, every other page carries none.
type Payload struct {
	Kind     PayloadKind
	Slug     string // set when Kind == KindArticle
	Category string // set when Kind == KindCategory
}

// None returns the empty payload.
func None() Payload { return Payload{Kind: KindNone} }

// ForArticle returns an article payload for the given slug.
func ForArticle(slug string) Payload { return Payload{Kind: KindArticle, Slug: slug} }

// ForCategory returns a category payload.
func ForCategory(category string) Payload { return Payload{Kind: KindCategory, Category: category} }

// requiredKind maps each page to the payload kind it demands.
var requiredKind = map[Page]PayloadKind{
	PageHome: KindNone, PageAbout: KindNone, PageServices: KindNone,
	PageContact: KindNone, PageLocator: KindNone, PageTeam: KindNone,
	PageProducts: KindNone, PageNews: KindNone, PagePrivacy: KindNone,
	PageTerms: KindNone, PageLeaseToOwn: KindNone, PageCareers: KindNone,
	PageSingleNews:   KindArticle,
	PageNewsCategory: KindCategory,
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	_, ok := requiredKind[p]
	return ok
}

// Validate checks a page/payload pair. Mismatched kinds fail fast instead
// of silently rendering a blank page: a single-article page without an
// article slug is a caller error surfaced as a not-found state upstream.
func Validate(page Page, payload Payload) error {
	want, ok := requiredKind[page]
	if !ok {
		return fmt.Errorf("nav: unknown page %q", page)
	}
	if payload.Kind != want {
		return fmt.Errorf("nav: page %q requires %s payload, got %s", page, want, payload.Kind)
	}
	switch payload.Kind {
	case KindArticle:
		if payload.Slug == "" {
			return fmt.Errorf("nav: article payload missing slug")
		}
	case KindCategory:
		if payload.Category == "" {
			return fmt.Errorf("nav: category payload missing category")
		}
	}
	return nil
}

// pagePaths maps context-free pages to their canonical URL.
var pagePaths = map[Page]string{
	PageHome:       "/",
	PageAbout:      "/about",
	PageServices:   "/services",
	PageContact:    "/contact",
	PageLocator:    "/locator",
	PageTeam:       "/team",
	PageProducts:   "/products",
	PageNews:       "/news",
	PagePrivacy:    "/privacy",
	PageTerms:      "/terms",
	PageLeaseToOwn: "/lease-to-own",
	PageCareers:    "/careers",
}

// Path returns the canonical URL for a page/payload pair, or an error when
// the pair fails validation.
func Path(page Page, payload Payload) (string, error) {
	if err := Validate(page, payload); err != nil {
		return "", err
	}
	switch page {
	case PageSingleNews:
		return "/news/" + url.PathEscape(payload.Slug), nil
	case PageNewsCategory:
		return "/news/category/" + url.PathEscape(payload.Category), nil
	default:
		return pagePaths[page], nil
	}
}
