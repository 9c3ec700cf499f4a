// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package news implements the listing, filtering, pagination, and featured
// rotation logic of the newsroom. All functions are pure over the article
// slice handed to them; mutable view state lives in FilterState and Rotation.
package news

import (
	"sort"
	"strings"
	"sync"

	"swapstation/internal/models"
)

const (
	// FeaturedCount is the number of leading feed articles shown in the
	// rotating spotlight and structurally excluded from the grid.
	FeaturedCount = 4

	// PageSize is the grid pagination step ("load more" increment).
	PageSize = 9
)

// Featured returns the leading spotlight subset: the first FeaturedCount
// articles in feed order (fewer if the feed is short).
func Featured(articles []models.Article) []models.Article {
	if len(articles) <= FeaturedCount {
		return articles
	}
	return articles[:FeaturedCount]
}

// GridItems returns the paginated-grid subset: everything after the
// featured articles.
func GridItems(articles []models.Article) []models.Article {
	if len(articles) <= FeaturedCount {
		return nil
	}
	return articles[FeaturedCount:]
}

// Categories returns the sorted set of distinct category labels present in
// the given (grid) articles.
func Categories(articles []models.Article) []string {
	seen := make(map[string]struct{}, len(articles))
	var out []string
	for _, a := range articles {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	sort.Strings(out)
	return out
}

// Filter returns the articles whose category is in selected. Selection is
// inclusive OR; an empty selection means no filter (all articles).
func Filter(articles []models.Article, selected []string) []models.Article {
	if len(selected) == 0 {
		return articles
	}
	want := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		want[c] = struct{}{}
	}
	var out []models.Article
	for _, a := range articles {
		if _, ok := want[a.Category]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Paginate returns the first visible items of the filtered set.
func Paginate(filtered []models.Article, visible int) []models.Article {
	if visible < 0 {
		visible = 0
	}
	if visible > len(filtered) {
		visible = len(filtered)
	}
	return filtered[:visible]
}

// InCategory returns the articles matching a single category,
// case-insensitively, over the full catalog. Used by the category page.
func InCategory(articles []models.Article, category string) []models.Article {
	if category == "" {
		return nil
	}
	var out []models.Article
	for _, a := range articles {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// FilterState holds the newsroom grid view state: the multi-select category
// filter and the pagination cursor. Safe for concurrent handler access.
type FilterState struct {
	mu       sync.Mutex
	selected []string
	visible  int
}

// NewFilterState returns a FilterState with no categories selected and the
// cursor at the first page.
func NewFilterState() *FilterState {
	return &FilterState{visible: PageSize}
}

// Selected returns a copy of the currently selected categories.
func (f *FilterState) Selected() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.selected))
	copy(out, f.selected)
	return out
}

// Visible returns the current pagination cursor.
func (f *FilterState) Visible() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

// Toggle adds the category to the selection if absent, removes it if
// present, and resets the pagination cursor to the first page.
func (f *FilterState) Toggle(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.selected {
		if c == category {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			f.visible = PageSize
			return
		}
	}
	f.selected = append(f.selected, category)
	f.visible = PageSize
}

// SelectOnly replaces the whole selection with the single given category
// and resets pagination. This is the card-chip behavior: clicking a
// category on an article card narrows to exactly that category rather
// than toggling it into the existing selection.
func (f *FilterState) SelectOnly(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = []string{category}
	f.visible = PageSize
}

// Clear empties the selection and resets pagination. Backs the one-click
// "clear filters" affordance of the empty state.
func (f *FilterState) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = nil
	f.visible = PageSize
}

// LoadMore advances the pagination cursor by one page, clamped to the
// size of the filtered set it will be applied to.
func (f *FilterState) LoadMore(filteredLen int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible += PageSize
	if f.visible > filteredLen {
		f.visible = filteredLen
	}
	if f.visible < PageSize {
		f.visible = PageSize
	}
}
