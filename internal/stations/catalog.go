// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package stations implements the swap-station locator: the fixed station
// catalog, the Nigerian geography tree used by the state/LGA filters, the
// filter predicate, and the map view state machine. All catalog data is
// immutable for the process lifetime.
package stations

import "swapstation/internal/models"

// geography maps each covered state to its local government areas.
// LGA filter choices are always constrained to the selected state's list.
var geography = map[string][]string{
	"Lagos":       {"Ikeja", "Victoria Island", "Lekki Phase 1", "Surulere", "Ikorodu", "Yaba", "Apapa", "Epe"},
	"Abuja (FCT)": {"Garki", "Wuse", "Maitama", "Gwarinpa", "Asokoro", "Jabi"},
	"Rivers":      {"Port Harcourt City", "Obio-Akpor", "Eleme", "Oyigbo"},
	"Kano":        {"Kano Municipal", "Tarauni", "Nassarawa"},
	"Oyo":         {"Ibadan North", "Ibadan South West", "Oluyole"},
	"Delta":       {"Warri South", "Asaba", "Uvwie"},
}

// catalog is the deployed hub network. Fixed at build time.
var catalog = []models.Station{
	{ID: 1, Name: "Ikeja Tech Hub Station", State: "Lagos", LGA: "Ikeja", Lat: 6.5965, Lng: 3.3366, Address: "Innovation Way, Ikeja", Available: 12, Total: 16, Type: "Solar-Hybrid"},
	{ID: 2, Name: "VI Waterfront Depot", State: "Lagos", LGA: "Victoria Island", Lat: 6.4281, Lng: 3.4219, Address: "Adetokunbo Ademola St, VI", Available: 8, Total: 24, Type: "Grid-Primary"},
	{ID: 3, Name: "Lekki Circle Hub", State: "Lagos", LGA: "Lekki Phase 1", Lat: 6.4478, Lng: 3.4737, Address: "Lekki Expressway, Phase 1", Available: 15, Total: 15, Type: "Solar-Hybrid"},
	{ID: 4, Name: "Garki Power Station", State: "Abuja (FCT)", LGA: "Garki", Lat: 9.0350, Lng: 7.4833, Address: "Area 11, Garki", Available: 6, Total: 12, Type: "Smart-Grid"},
	{ID: 5, Name: "Maitama Premium Swap", State: "Abuja (FCT)", LGA: "Maitama", Lat: 9.0833, Lng: 7.5000, Address: "Mississippi St, Maitama", Available: 18, Total: 20, Type: "Solar-Hybrid"},
	{ID: 6, Name: "PH City Center Depot", State: "Rivers", LGA: "Port Harcourt City", Lat: 4.7774, Lng: 7.0134, Address: "Aba Road, PH", Available: 4, Total: 12, Type: "Grid-Primary"},
}

// Catalog returns a copy of the full station list in declaration order.
func Catalog() []models.Station {
	out := make([]models.Station, len(catalog))
	copy(out, catalog)
	return out
}

// States returns the covered states in a stable sorted order.
func States() []string {
	return []string{"Abuja (FCT)", "Delta", "Kano", "Lagos", "Oyo", "Rivers"}
}

// LGAs returns the local government areas of a state, or nil for an
// unknown state.
func LGAs(state string) []string {
	lgas, ok := geography[state]
	if !ok {
		return nil
	}
	out := make([]string, len(lgas))
	copy(out, lgas)
	return out
}

// Geography returns the full state → LGA tree as a copy.
func Geography() map[string][]string {
	out := make(map[string][]string, len(geography))
	for state := range geography {
		out[state] = LGAs(state)
	}
	return out
}

// ByID returns the station with the given id, or nil if none exists.
func ByID(id int) *models.Station {
	for i := range catalog {
		if catalog[i].ID == id {
			s := catalog[i]
			return &s
		}
	}
	return nil
}

// validLGA reports whether lga belongs to state's LGA set. The empty LGA
// is always valid (it means "no area filter").
func validLGA(state, lga string) bool {
	if lga == "" {
		return true
	}
	for _, l := range geography[state] {
		if l == lga {
			return true
		}
	}
	return false
}
