// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Station is one physical battery-swap site. The catalog is fixed at build
// time and read-only for the process lifetime, so Station values are safe to
// share across goroutines.
type Station struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	State     string  `json:"state"`
	LGA       string  `json:"lga"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Address   string  `json:"address"`
	Available int     `json:"available"`
	Total     int     `json:"total"`
	Type      string  `json:"type"`
}
