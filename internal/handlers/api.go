// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"swapstation/internal/news"
	"swapstation/internal/stations"
)

// API groups the JSON endpoints consumed by the locator map and the news
// page's client-side enhancements.
type API struct {
	public *Public
}

// NewAPI creates the API handler group. It shares the feed and caches with
// the page handlers through the Public group.
func NewAPI(public *Public) *API {
	return &API{public: public}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode json response failed", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// Stations filters the station catalog by the q, state and lga query
// parameters. All three predicates are conjunctive; an unknown state or an
// LGA outside the selected state is dropped, so bad filter values degrade
// to a broader result set rather than an empty one. The echoed filter
// fields report what was actually applied.
func (a *API) Stations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := stations.NewView()
	v.SetQuery(q.Get("q"))
	v.SetState(q.Get("state"))
	v.SetLGA(q.Get("lga"))

	query, state, lga := v.Filters()
	respondJSON(w, http.StatusOK, map[string]any{
		"query":    query,
		"state":    state,
		"lga":      lga,
		"stations": v.Results(),
	})
}

// Geography returns the state → LGA tree used to populate the locator's
// dependent dropdowns.
func (a *API) Geography(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"states":    stations.States(),
		"geography": stations.Geography(),
	})
}

// LocatorView computes a map viewport. With ?station=ID it centers on that
// station; with ?lat=&lng= it centers on the visitor's location, clamped
// to Nigeria's bounds; with neither it returns the default national view.
func (a *API) LocatorView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := stations.NewView()

	switch {
	case q.Get("station") != "":
		id, err := strconv.Atoi(q.Get("station"))
		if err != nil || !v.SelectStation(id) {
			respondError(w, http.StatusNotFound, "unknown station")
			return
		}
	case q.Get("lat") != "" && q.Get("lng") != "":
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil {
			respondError(w, http.StatusBadRequest, "invalid coordinates")
			return
		}
		v.Locate(lat, lng)
	}

	vp := v.Viewport()
	respondJSON(w, http.StatusOK, map[string]any{
		"lat":     vp.Lat,
		"lng":     vp.Lng,
		"zoom":    vp.Zoom,
		"focused": v.Focused(),
	})
}

// News returns the article list as JSON, filtered by repeated ?cat=
// parameters. The fallback flag tells clients the data is the built-in
// catalog rather than the live feed.
func (a *API) News(w http.ResponseWriter, r *http.Request) {
	all, live := a.public.articles(r.Context())
	selected := r.URL.Query()["cat"]
	respondJSON(w, http.StatusOK, map[string]any{
		"featured": news.Featured(all),
		"articles": news.Filter(news.GridItems(all), selected),
		"fallback": !live,
	})
}

// FeaturedSlide reports and optionally moves the featured slider index.
// ?dir=next or ?dir=prev advances the shared rotation; ?go=N jumps to a
// slide.
func (a *API) FeaturedSlide(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	idx := a.public.rotation.Index()
	switch q.Get("dir") {
	case "next":
		idx = a.public.rotation.Advance()
	case "prev":
		idx = a.public.rotation.Retreat()
	}
	if g := q.Get("go"); g != "" {
		if n, err := strconv.Atoi(g); err == nil {
			idx = a.public.rotation.GoTo(n)
		}
	}
	respondJSON(w, http.StatusOK, map[string]int{"index": idx})
}

// Health reports process liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
