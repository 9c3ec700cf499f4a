// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package stations

import (
	"log/slog"
	"sync"

	"swapstation/internal/models"
)

// Map viewport presets and bounds. The viewport never leaves the Nigeria
// bounding box and the zoom never leaves [MinZoom, MaxZoom].
const (
	DefaultLat  = 9.0820
	DefaultLng  = 8.6753
	DefaultZoom = 6

	// StationZoom is the close-up preset used when a station is selected.
	StationZoom = 14
	// LocateZoom is the preset used after a successful geolocation fix.
	LocateZoom = 13

	MinZoom = 6
	MaxZoom = 16

	BoundSouth = 4.0
	BoundWest  = 2.5
	BoundNorth = 14.0
	BoundEast  = 15.0
)

// Tile set URLs for the two map themes. Swapping themes requires a full
// tile-layer remount on the client since tile sets are not cross-faded.
const (
	TileURLLight = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"
	TileURLDark  = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png"
)

// TileURL returns the tile set for the given theme. Anything other than
// "dark" gets the light set.
func TileURL(theme string) string {
	if theme == "dark" {
		return TileURLDark
	}
	return TileURLLight
}

// Viewport is a map camera position.
type Viewport struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// View is the locator page state machine: filter fields, map viewport, and
// the focused marker. Invariants: the selected LGA always belongs to the
// selected state's LGA set (or is empty), the viewport stays inside the
// Nigeria bounds, and the zoom stays inside [MinZoom, MaxZoom].
// Safe for concurrent handler access.
type View struct {
	mu sync.Mutex

	query string
	state string
	lga   string

	viewport Viewport
	// focused is the id of the station whose marker popup is open; 0 means none.
	focused int
}

// NewView returns a View at the default national viewport with no filters.
func NewView() *View {
	return &View{viewport: Viewport{Lat: DefaultLat, Lng: DefaultLng, Zoom: DefaultZoom}}
}

// SetQuery updates the free-text filter.
func (v *View) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
}

// SetState selects a state filter and clears any LGA selection, since LGA
// choices are dependent on the state. An unknown state clears the state
// filter entirely.
func (v *View) SetState(state string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if state != "" {
		if _, ok := geography[state]; !ok {
			slog.Warn("locator: unknown state ignored", "state", state)
			state = ""
		}
	}
	v.state = state
	v.lga = ""
}

// SetLGA selects an area filter. A choice outside the selected state's LGA
// set is ignored, so an invalid state/LGA pair degrades to the state-only
// filter instead of producing an impossible empty intersection.
func (v *View) SetLGA(lga string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == "" && lga != "" {
		slog.Warn("locator: LGA selected without a state, ignored", "lga", lga)
		return
	}
	if !validLGA(v.state, lga) {
		slog.Warn("locator: LGA outside selected state, ignored", "state", v.state, "lga", lga)
		return
	}
	v.lga = lga
}

// SelectStation centers the viewport on the station at the close-up zoom
// preset and focuses its marker popup. Unknown ids leave the view unchanged.
func (v *View) SelectStation(id int) bool {
	s := ByID(id)
	if s == nil {
		slog.Warn("locator: unknown station selected", "id", id)
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewport = clamp(Viewport{Lat: s.Lat, Lng: s.Lng, Zoom: StationZoom})
	v.focused = id
	return true
}

// Locate recenters the viewport on a device geolocation fix at the locate
// preset zoom. Coordinates are clamped into the Nigeria bounds. A failed or
// denied geolocation never reaches this method; the view stays unchanged
// on the failure path by construction.
func (v *View) Locate(lat, lng float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewport = clamp(Viewport{Lat: lat, Lng: lng, Zoom: LocateZoom})
	v.focused = 0
}

// Reset restores the default national viewport and clears the query, state,
// LGA, and marker focus, regardless of prior state.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = ""
	v.state = ""
	v.lga = ""
	v.focused = 0
	v.viewport = Viewport{Lat: DefaultLat, Lng: DefaultLng, Zoom: DefaultZoom}
}

// Filters returns the current query, state, and LGA.
func (v *View) Filters() (query, state, lga string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query, v.state, v.lga
}

// Viewport returns the current map camera position.
func (v *View) Viewport() Viewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewport
}

// Focused returns the id of the focused station marker, or 0.
func (v *View) Focused() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.focused
}

// Results returns the stations matching the current filters.
func (v *View) Results() []models.Station {
	query, state, lga := v.Filters()
	return Filter(query, state, lga)
}

// clamp confines a viewport to the Nigeria bounds and the zoom range.
func clamp(vp Viewport) Viewport {
	if vp.Lat < BoundSouth {
		vp.Lat = BoundSouth
	}
	if vp.Lat > BoundNorth {
		vp.Lat = BoundNorth
	}
	if vp.Lng < BoundWest {
		vp.Lng = BoundWest
	}
	if vp.Lng > BoundEast {
		vp.Lng = BoundEast
	}
	if vp.Zoom < MinZoom {
		vp.Zoom = MinZoom
	}
	if vp.Zoom > MaxZoom {
		vp.Zoom = MaxZoom
	}
	return vp
}
