// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package news

import "swapstation/internal/models"

// RelatedCount is the fixed number of related-article slots under a story.
const RelatedCount = 3

// Related computes the related-articles set for a story: the first
// RelatedCount catalog articles that are not the current one, matched by
// slug when both sides have one, otherwise by id. When fewer than
// RelatedCount other articles exist, the current article itself is
// appended as a filler card so the section keeps its shape — an
// intentional presentation rule, not an accident.
func Related(articles []models.Article, current models.Article) []models.Article {
	var out []models.Article
	for _, a := range articles {
		if sameArticle(a, current) {
			continue
		}
		out = append(out, a)
		if len(out) == RelatedCount {
			return out
		}
	}
	if len(out) < RelatedCount && len(articles) > 0 {
		out = append(out, current)
	}
	return out
}

// sameArticle reports whether two articles identify the same story. Slugs
// are the durable key across refetches; ids are only unique within one
// fetch batch, so they are the fallback comparison.
func sameArticle(a, b models.Article) bool {
	if a.Slug != "" && b.Slug != "" {
		return a.Slug == b.Slug
	}
	return a.ID == b.ID
}
