// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package stations

import (
	"strings"

	"swapstation/internal/models"
)

// Filter returns the stations matching the conjunction of three independent
// predicates: state equality (unset state matches all), LGA equality (unset
// LGA matches all), and a case-insensitive substring match of the query
// against the station name or address (empty query matches all). The
// function is pure and idempotent over the fixed catalog.
func Filter(query, state, lga string) []models.Station {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []models.Station
	for _, s := range catalog {
		if state != "" && s.State != state {
			continue
		}
		if lga != "" && s.LGA != lga {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Address), q) {
			continue
		}
		out = append(out, s)
	}
	return out
}
