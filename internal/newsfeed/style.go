// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package newsfeed

import "swapstation/internal/models"

// categoryStyles maps a display category to its utility-class tokens.
// The table is fixed at build time; unknown categories fall through to
// the neutral slate set.
var categoryStyles = map[string]models.StyleTokens{
	"Transactions":       {Color: "text-emerald-600", BgColor: "bg-emerald-50", BorderColor: "border-emerald-100"},
	"Milestones":         {Color: "text-amber-600", BgColor: "bg-amber-50", BorderColor: "border-amber-100"},
	"Press Release":      {Color: "text-blue-600", BgColor: "bg-blue-50", BorderColor: "border-blue-100"},
	"Partnership":        {Color: "text-blue-600", BgColor: "bg-blue-50", BorderColor: "border-blue-100"},
	"Sustainability":     {Color: "text-teal-600", BgColor: "bg-teal-50", BorderColor: "border-teal-100"},
	"Product":            {Color: "text-purple-600", BgColor: "bg-purple-50", BorderColor: "border-purple-100"},
	"Expansion":          {Color: "text-orange-600", BgColor: "bg-orange-50", BorderColor: "border-orange-100"},
	"Technology":         {Color: "text-cyan-600", BgColor: "bg-cyan-50", BorderColor: "border-cyan-100"},
	"Community":          {Color: "text-indigo-600", BgColor: "bg-indigo-50", BorderColor: "border-indigo-100"},
	"Roadshow":           {Color: "text-purple-600", BgColor: "bg-purple-50", BorderColor: "border-purple-100"},
	"Executive motoring": {Color: "text-emerald-600", BgColor: "bg-emerald-50", BorderColor: "border-emerald-100"},
	"Glovo":              {Color: "text-blue-600", BgColor: "bg-blue-50", BorderColor: "border-blue-100"},
}

// neutralStyle is the fallback token set for categories not in the table.
var neutralStyle = models.StyleTokens{
	Color:       "text-slate-600",
	BgColor:     "bg-slate-50",
	BorderColor: "border-slate-100",
}

// CategoryStyle returns the presentational tokens for a category. It is
// total: every input yields a usable token set.
func CategoryStyle(category string) models.StyleTokens {
	if tokens, ok := categoryStyles[category]; ok {
		return tokens
	}
	return neutralStyle
}
