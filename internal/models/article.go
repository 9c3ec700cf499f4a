// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared across the SwapStation
// website server: news articles and their presentational tokens, swap
// stations, and contact enquiries.
package models

// Article is the canonical news article shape used by the listing grid,
// the featured slider, the single-article view, and the homepage preview.
// Articles are constructed once by the newsfeed adapter and never mutated.
type Article struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Image    string `json:"image"`
	Slug     string `json:"slug,omitempty"`

	// Presentational tokens derived from Category via newsfeed.CategoryStyle.
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
	BorderColor string `json:"borderColor"`
}

// StyleTokens groups the CSS utility classes associated with an article
// category. Unknown categories receive a neutral slate token set.
type StyleTokens struct {
	Color       string `json:"color"`
	BgColor     string `json:"bgColor"`
	BorderColor string `json:"borderColor"`
}
