// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package newsfeed

import (
	"swapstation/internal/models"
	"swapstation/internal/slug"
)

// fallbackCatalog is the bundled article list served whenever the live feed
// is unreachable or malformed. IDs are only unique within this list and
// must not be assumed stable against live feed IDs; slugs are the durable
// key (generated from titles at init).
var fallbackCatalog = []models.Article{
	{
		ID:       1,
		Category: "Transactions",
		Date:     "October 24, 2024",
		Title:    "Swap Station Closes $10M Series A Funding Round",
		Excerpt:  "Securing capital to expand our infrastructure footprint across 5 new states in Nigeria, led by Blackaion Capital.",
		Image:    "https://images.unsplash.com/photo-1553729459-efe14ef6055d?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       2,
		Category: "Milestones",
		Date:     "September 12, 2024",
		Title:    "250th Swap Hub Deployed in Lagos Mainland",
		Excerpt:  "Marking a significant milestone in our mission to densify the urban energy network for last-mile logistics.",
		Image:    "https://images.unsplash.com/photo-1581094794329-c8112a89af12?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       3,
		Category: "Press Release",
		Date:     "August 05, 2024",
		Title:    "Strategic Partnership with Glovo Announced",
		Excerpt:  "Powering the next generation of green delivery fleets with zero-downtime swaps and integrated telemetry.",
		Image:    "https://images.unsplash.com/photo-1758519289022-5f9dea0d8cdc?q=80&w=2531&auto=format&fit=crop",
	},
	{
		ID:       4,
		Category: "Sustainability",
		Date:     "July 22, 2024",
		Title:    "Carbon Offset Report: Q2 2024",
		Excerpt:  "Our network has now offset over 5,000 tons of CO2 compared to traditional ICE fleet operations.",
		Image:    "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       5,
		Category: "Product",
		Date:     "June 15, 2024",
		Title:    "Introducing the TANKVOLT T22-Pro",
		Excerpt:  "The next evolution in heavy-duty electric logistics bikes, capable of 150km range on a single swap.",
		Image:    "https://images.unsplash.com/photo-1558444479-c848261286a2?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       6,
		Category: "Expansion",
		Date:     "May 30, 2024",
		Title:    "Kenya Expansion Plans Finalized",
		Excerpt:  "SwapStation is bringing its market-leading technology to Nairobi in Q1 2025.",
		Image:    "https://images.unsplash.com/photo-1489440543286-a69330151c0b?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       7,
		Category: "Technology",
		Date:     "May 12, 2024",
		Title:    "AI-Driven Battery Health Monitoring",
		Excerpt:  "New BMS firmware update allows predictive maintenance alerts for fleet managers.",
		Image:    "https://images.unsplash.com/photo-1555664424-778a1e5e1b48?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       8,
		Category: "Community",
		Date:     "April 20, 2024",
		Title:    "Rider Safety Initiative Launched",
		Excerpt:  "Training over 1,000 riders in defensive driving and electric vehicle handling safety.",
		Image:    "https://images.unsplash.com/photo-1573497620053-ea5300f94f21?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       9,
		Category: "Transactions",
		Date:     "March 15, 2024",
		Title:    "SwapStation Acquires Voltex Charging",
		Excerpt:  "Consolidating the market to provide a unified charging standard for the continent.",
		Image:    "https://images.unsplash.com/photo-1565514020176-db7020fb3377?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       10,
		Category: "Milestones",
		Date:     "February 28, 2024",
		Title:    "1 Million Swaps Completed",
		Excerpt:  "A historic day for SwapStation as we cross the 1 million swap threshold network-wide.",
		Image:    "https://images.unsplash.com/photo-1617788138017-80ad40651399?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       11,
		Category: "Press Release",
		Date:     "January 10, 2024",
		Title:    "2024 Roadmap Announcement",
		Excerpt:  "CEO Obiora Okoye outlines the strategic vision for the upcoming fiscal year.",
		Image:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       12,
		Category: "Sustainability",
		Date:     "December 05, 2023",
		Title:    "Solar Integration Hits 90%",
		Excerpt:  "Nine out of ten hubs are now fully powered by off-grid solar solutions.",
		Image:    "https://images.unsplash.com/photo-1509391366360-2e959784a276?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:       13,
		Category: "Expansion",
		Date:     "November 20, 2023",
		Title:    "North-Central Logistics Corridor Open",
		Excerpt:  "Connecting Abuja to Kaduna with a seamless corridor of swap stations.",
		Image:    "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?auto=format&fit=crop&q=80&w=800",
	},
}

func init() {
	// Fallback articles need slugs so the single-article route can resolve
	// them when the live feed is down, and style tokens so rendering never
	// branches on the data source.
	for i := range fallbackCatalog {
		a := &fallbackCatalog[i]
		a.Slug = slug.Generate(a.Title)
		style := CategoryStyle(a.Category)
		a.Color = style.Color
		a.BgColor = style.BgColor
		a.BorderColor = style.BorderColor
	}
}

// FallbackArticles returns a copy of the bundled article catalog. Callers
// may re-slice the result freely without affecting the package data.
func FallbackArticles() []models.Article {
	out := make([]models.Article, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}

// PlaceholderBody is the locally authored long-form narrative shown when an
// article's full body cannot be fetched, so the reader sees representative
// copy instead of an error page.
const PlaceholderBody = `<p>SwapStation continues to execute on its mission to make electric mobility viable for commercial fleets across Nigeria. By replacing hours of depot charging with a ninety-second battery exchange, our hub network keeps riders on the road and earnings uninterrupted.</p>
<p>Each hub in the network pairs charged battery inventory with live telemetry, so fleet operators can see state-of-charge, swap history, and route coverage in one place. Solar-hybrid sites push surplus energy back into local microgrids, and every swap displaces tailpipe emissions from petrol-engine deliveries.</p>
<p>This article's full text is temporarily unavailable. Our newsroom team publishes detailed coverage of funding rounds, network milestones, product launches, and partnerships — check back shortly or browse related stories below.</p>`
