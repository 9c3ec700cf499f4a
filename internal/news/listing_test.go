// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package news

import (
	"reflect"
	"testing"

	"swapstation/internal/models"
	"swapstation/internal/newsfeed"
)

// catalog builds a deterministic article list. The first FeaturedCount
// entries play the featured role; the rest form the grid.
func catalog(n int) []models.Article {
	cats := []string{"Milestones", "Technology", "Expansion", "Community"}
	out := make([]models.Article, n)
	for i := range out {
		out[i] = models.Article{
			ID:       i + 1,
			Title:    "Story " + string(rune('A'+i)),
			Slug:     "story-" + string(rune('a'+i)),
			Category: cats[i%len(cats)],
		}
	}
	return out
}

func TestFeaturedSplit(t *testing.T) {
	articles := catalog(10)

	featured := Featured(articles)
	if len(featured) != FeaturedCount {
		t.Fatalf("featured: got %d, want %d", len(featured), FeaturedCount)
	}
	if featured[0].ID != 1 || featured[3].ID != 4 {
		t.Errorf("featured must be the first %d in feed order, got ids %d..%d",
			FeaturedCount, featured[0].ID, featured[3].ID)
	}

	grid := GridItems(articles)
	if len(grid) != 6 {
		t.Fatalf("grid: got %d, want 6", len(grid))
	}
	for _, g := range grid {
		for _, f := range featured {
			if g.ID == f.ID {
				t.Errorf("article %d appears in both featured and grid", g.ID)
			}
		}
	}
}

func TestFeaturedSplit_ShortFeed(t *testing.T) {
	articles := catalog(3)
	if got := len(Featured(articles)); got != 3 {
		t.Errorf("featured on short feed: got %d, want 3", got)
	}
	if grid := GridItems(articles); grid != nil {
		t.Errorf("grid on short feed: got %v, want nil", grid)
	}
}

func TestCategories_SortedDistinct(t *testing.T) {
	grid := GridItems(catalog(12))
	got := Categories(grid)
	want := []string{"Community", "Expansion", "Milestones", "Technology"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories: got %v, want %v", got, want)
	}
}

func TestFilter_EmptySelectionIsAll(t *testing.T) {
	grid := GridItems(catalog(12))
	if got := Filter(grid, nil); len(got) != len(grid) {
		t.Errorf("empty selection: got %d, want all %d", len(got), len(grid))
	}
}

// TestFilter_UnionMonotonic checks the chip-filter contract: inclusive OR,
// and selecting more categories never shrinks the result set.
func TestFilter_UnionMonotonic(t *testing.T) {
	grid := GridItems(catalog(12))

	one := Filter(grid, []string{"Milestones"})
	two := Filter(grid, []string{"Milestones", "Technology"})
	if len(two) < len(one) {
		t.Errorf("union shrank the result: %d -> %d", len(one), len(two))
	}
	for _, a := range two {
		if a.Category != "Milestones" && a.Category != "Technology" {
			t.Errorf("article %d has category %q outside the selection", a.ID, a.Category)
		}
	}
	// Every Milestones match must survive the wider selection.
	for _, m := range one {
		found := false
		for _, a := range two {
			if a.ID == m.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("article %d lost when widening the selection", m.ID)
		}
	}
}

// TestFilter_ExcludesFeatured checks that filtering Milestones and
// Technology over the grid never resurfaces the four featured articles.
func TestFilter_ExcludesFeatured(t *testing.T) {
	articles := catalog(12)
	featured := Featured(articles)
	got := Filter(GridItems(articles), []string{"Milestones", "Technology"})
	for _, a := range got {
		for _, f := range featured {
			if a.ID == f.ID {
				t.Errorf("featured article %d leaked into the filtered grid", a.ID)
			}
		}
	}
}

func TestPaginate_Clamps(t *testing.T) {
	grid := GridItems(catalog(16)) // 12 grid items

	if got := Paginate(grid, PageSize); len(got) != 9 {
		t.Errorf("first page: got %d, want 9", len(got))
	}
	if got := Paginate(grid, 100); len(got) != 12 {
		t.Errorf("overshoot: got %d, want 12", len(got))
	}
	if got := Paginate(grid, -1); len(got) != 0 {
		t.Errorf("negative cursor: got %d, want 0", len(got))
	}
}

func TestInCategory_CaseInsensitive(t *testing.T) {
	articles := catalog(8)
	got := InCategory(articles, "mileSTONES")
	if len(got) == 0 {
		t.Fatal("expected case-insensitive category matches")
	}
	for _, a := range got {
		if a.Category != "Milestones" {
			t.Errorf("got category %q", a.Category)
		}
	}
	if got := InCategory(articles, ""); got != nil {
		t.Errorf("empty category: got %v, want nil", got)
	}
}

func TestFilterState_ToggleResetsCursor(t *testing.T) {
	fs := NewFilterState()
	fs.LoadMore(30)
	if fs.Visible() != 18 {
		t.Fatalf("after LoadMore: visible %d, want 18", fs.Visible())
	}

	fs.Toggle("Technology")
	if fs.Visible() != PageSize {
		t.Errorf("toggle must reset cursor: got %d, want %d", fs.Visible(), PageSize)
	}
	if got := fs.Selected(); len(got) != 1 || got[0] != "Technology" {
		t.Errorf("selected: got %v", got)
	}

	fs.Toggle("Technology")
	if got := fs.Selected(); len(got) != 0 {
		t.Errorf("second toggle must remove: got %v", got)
	}
}

// TestFilterState_SelectOnly pins the card-chip behavior: replacement of
// the whole selection, not a toggle, plus a cursor reset.
func TestFilterState_SelectOnly(t *testing.T) {
	fs := NewFilterState()
	fs.Toggle("Milestones")
	fs.Toggle("Expansion")
	fs.LoadMore(40)

	fs.SelectOnly("Technology")
	got := fs.Selected()
	if len(got) != 1 || got[0] != "Technology" {
		t.Errorf("SelectOnly: got %v, want exactly [Technology]", got)
	}
	if fs.Visible() != PageSize {
		t.Errorf("SelectOnly must reset cursor: got %d, want %d", fs.Visible(), PageSize)
	}
}

func TestFilterState_ClearAndLoadMoreClamp(t *testing.T) {
	fs := NewFilterState()
	fs.Toggle("Community")
	fs.Clear()
	if len(fs.Selected()) != 0 || fs.Visible() != PageSize {
		t.Errorf("Clear: selected=%v visible=%d", fs.Selected(), fs.Visible())
	}

	fs.LoadMore(11) // 9 + 9 clamps to 11
	if fs.Visible() != 11 {
		t.Errorf("LoadMore clamp: got %d, want 11", fs.Visible())
	}
	fs.LoadMore(11)
	if fs.Visible() != 11 {
		t.Errorf("LoadMore at end: got %d, want 11", fs.Visible())
	}
}

// TestFallbackGridFillsFirstPage ties the bundled catalog to the grid
// contract: after the featured split it must still fill a nine-card page.
func TestFallbackGridFillsFirstPage(t *testing.T) {
	articles := newsfeed.FallbackArticles()
	grid := GridItems(articles)
	if len(grid) < PageSize {
		t.Fatalf("fallback grid has %d items, want at least %d", len(grid), PageSize)
	}
	page := Paginate(grid, PageSize)
	if len(page) != PageSize {
		t.Fatalf("fallback first page: got %d, want %d", len(page), PageSize)
	}
}
