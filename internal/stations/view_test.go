// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package stations

import "testing"

func TestView_Defaults(t *testing.T) {
	v := NewView()
	vp := v.Viewport()
	if vp.Lat != DefaultLat || vp.Lng != DefaultLng || vp.Zoom != DefaultZoom {
		t.Errorf("default viewport: got %+v", vp)
	}
	q, s, l := v.Filters()
	if q != "" || s != "" || l != "" {
		t.Errorf("default filters: got %q/%q/%q", q, s, l)
	}
	if v.Focused() != 0 {
		t.Errorf("default focus: got %d", v.Focused())
	}
}

// TestView_SetStateClearsLGA pins the dependent-filter invariant:
// selecting a new state drops any previously chosen area.
func TestView_SetStateClearsLGA(t *testing.T) {
	v := NewView()
	v.SetState("Lagos")
	v.SetLGA("Ikeja")
	if _, _, lga := v.Filters(); lga != "Ikeja" {
		t.Fatalf("setup: lga %q", lga)
	}

	v.SetState("Rivers")
	if _, state, lga := v.Filters(); state != "Rivers" || lga != "" {
		t.Errorf("after state change: state %q lga %q, want Rivers with empty lga", state, lga)
	}
}

// TestView_InvalidLGAIgnored pins the cross-state scenario: with Lagos
// selected, choosing "Port Harcourt City" (a Rivers LGA) must be ignored,
// so the filtered list stays the Lagos-only result, not empty.
func TestView_InvalidLGAIgnored(t *testing.T) {
	v := NewView()
	v.SetState("Lagos")
	v.SetLGA("Port Harcourt City")

	_, state, lga := v.Filters()
	if state != "Lagos" || lga != "" {
		t.Fatalf("state %q lga %q, want Lagos with empty lga", state, lga)
	}

	got := v.Results()
	want := Filter("", "Lagos", "")
	if len(got) != len(want) {
		t.Errorf("results: got %d stations, want Lagos-only %d", len(got), len(want))
	}
	if len(got) == 0 {
		t.Error("invalid LGA must not empty the result set")
	}
}

func TestView_LGAWithoutStateIgnored(t *testing.T) {
	v := NewView()
	v.SetLGA("Ikeja")
	if _, _, lga := v.Filters(); lga != "" {
		t.Errorf("lga without state: got %q, want empty", lga)
	}
}

func TestView_UnknownStateClearsFilter(t *testing.T) {
	v := NewView()
	v.SetState("Lagos")
	v.SetState("Atlantis")
	if _, state, _ := v.Filters(); state != "" {
		t.Errorf("unknown state: got %q, want cleared", state)
	}
}

func TestView_SelectStation(t *testing.T) {
	v := NewView()
	if !v.SelectStation(3) {
		t.Fatal("SelectStation(3) returned false")
	}

	vp := v.Viewport()
	station := ByID(3)
	if vp.Lat != station.Lat || vp.Lng != station.Lng {
		t.Errorf("viewport: got %+v, want station coords %v/%v", vp, station.Lat, station.Lng)
	}
	if vp.Zoom != StationZoom {
		t.Errorf("zoom: got %d, want close preset %d", vp.Zoom, StationZoom)
	}
	if v.Focused() != 3 {
		t.Errorf("focused marker: got %d, want 3", v.Focused())
	}
}

func TestView_SelectUnknownStationUnchanged(t *testing.T) {
	v := NewView()
	before := v.Viewport()
	if v.SelectStation(99) {
		t.Fatal("SelectStation(99) returned true")
	}
	if v.Viewport() != before || v.Focused() != 0 {
		t.Error("unknown station must leave the view unchanged")
	}
}

func TestView_Locate(t *testing.T) {
	v := NewView()
	v.SelectStation(1)

	v.Locate(6.45, 3.40)
	vp := v.Viewport()
	if vp.Lat != 6.45 || vp.Lng != 3.40 || vp.Zoom != LocateZoom {
		t.Errorf("after locate: got %+v", vp)
	}
	if v.Focused() != 0 {
		t.Errorf("locate must drop marker focus, got %d", v.Focused())
	}
}

// TestView_LocateClampsToBounds verifies a geolocation fix outside Nigeria
// cannot pan the viewport past the bounding box.
func TestView_LocateClampsToBounds(t *testing.T) {
	v := NewView()
	v.Locate(51.5, -0.12) // London
	vp := v.Viewport()
	if vp.Lat != BoundNorth || vp.Lng != BoundWest {
		t.Errorf("clamped viewport: got %+v, want lat %v lng %v", vp, BoundNorth, BoundWest)
	}

	v.Locate(-33.9, 151.2) // Sydney
	vp = v.Viewport()
	if vp.Lat != BoundSouth || vp.Lng != BoundEast {
		t.Errorf("clamped viewport: got %+v, want lat %v lng %v", vp, BoundSouth, BoundEast)
	}
}

func TestClampZoomRange(t *testing.T) {
	if got := clamp(Viewport{Lat: DefaultLat, Lng: DefaultLng, Zoom: 2}); got.Zoom != MinZoom {
		t.Errorf("zoom below range: got %d, want %d", got.Zoom, MinZoom)
	}
	if got := clamp(Viewport{Lat: DefaultLat, Lng: DefaultLng, Zoom: 22}); got.Zoom != MaxZoom {
		t.Errorf("zoom above range: got %d, want %d", got.Zoom, MaxZoom)
	}
}

// TestView_ResetContract: reset always restores the exact default
// viewport and empties every filter field, regardless of prior state.
func TestView_ResetContract(t *testing.T) {
	v := NewView()
	v.SetQuery("hub")
	v.SetState("Lagos")
	v.SetLGA("Yaba")
	v.SelectStation(2)

	v.Reset()

	vp := v.Viewport()
	if vp.Lat != DefaultLat || vp.Lng != DefaultLng || vp.Zoom != DefaultZoom {
		t.Errorf("viewport after reset: got %+v", vp)
	}
	q, s, l := v.Filters()
	if q != "" || s != "" || l != "" {
		t.Errorf("filters after reset: %q/%q/%q", q, s, l)
	}
	if v.Focused() != 0 {
		t.Errorf("focus after reset: %d", v.Focused())
	}
	if len(v.Results()) != len(Catalog()) {
		t.Error("reset view must match the full catalog")
	}
}

func TestGeographyAccessorsCopy(t *testing.T) {
	lgas := LGAs("Lagos")
	if len(lgas) == 0 {
		t.Fatal("expected Lagos LGAs")
	}
	lgas[0] = "mutated"
	if LGAs("Lagos")[0] == "mutated" {
		t.Error("LGAs must return an independent copy")
	}

	if LGAs("Atlantis") != nil {
		t.Error("unknown state must return nil")
	}

	tree := Geography()
	if len(tree) != len(States()) {
		t.Errorf("geography tree has %d states, want %d", len(tree), len(States()))
	}

	stationsCopy := Catalog()
	stationsCopy[0].Name = "mutated"
	if Catalog()[0].Name == "mutated" {
		t.Error("Catalog must return an independent copy")
	}
}
